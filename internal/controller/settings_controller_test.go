package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestSettingsUpdateOmitsBlankSecrets(t *testing.T) {
	var putBody []byte

	backend := http.NewServeMux()
	backend.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) { serveMe(w) })
	backend.HandleFunc("/api/auth/settings", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPut {
			putBody, _ = io.ReadAll(r.Body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"notification_method":"telegram","telegram_chat_id":"12345"}`))
	})

	app, closeBackend := newTestApp(backend)
	defer closeBackend()

	// Only chat id filled in; every secret left blank.
	form := url.Values{}
	form.Set("gemini_api_key", "")
	form.Set("gmail_address", "")
	form.Set("gmail_app_password", "")
	form.Set("telegram_bot_token", "")
	form.Set("telegram_chat_id", "12345")
	form.Set("notification_method", "telegram")

	w := httptest.NewRecorder()
	app.ServeHTTP(w, authedForm("/settings", form))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", w.Code)
	}

	var sent map[string]any
	if err := json.Unmarshal(putBody, &sent); err != nil {
		t.Fatalf("failed to decode PUT body: %v", err)
	}

	if len(sent) != 2 {
		t.Errorf("expected exactly 2 fields on the wire, got %v", sent)
	}
	if sent["telegram_chat_id"] != "12345" {
		t.Errorf("expected telegram_chat_id, got %v", sent)
	}
	if sent["notification_method"] != "telegram" {
		t.Errorf("expected notification_method, got %v", sent)
	}
	for _, secret := range []string{"gemini_api_key", "gmail_app_password", "telegram_bot_token"} {
		if _, present := sent[secret]; present {
			t.Errorf("blank secret %q must not be sent", secret)
		}
	}
}

func TestSettingsPageRendersWithoutSecrets(t *testing.T) {
	backend := http.NewServeMux()
	backend.HandleFunc("/api/auth/me", func(w http.ResponseWriter, r *http.Request) { serveMe(w) })
	backend.HandleFunc("/api/auth/settings", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"gmail_address":"me@gmail.com","telegram_chat_id":"777","notification_method":"email","has_gemini_api_key":true,"has_gmail_app_password":true,"has_telegram_bot_token":false}`))
	})

	app, closeBackend := newTestApp(backend)
	defer closeBackend()

	w := httptest.NewRecorder()
	app.ServeHTTP(w, authedGet("/settings"))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !contains(body, "me@gmail.com") || !contains(body, "777") {
		t.Error("expected non-secret values rendered")
	}
	if !contains(body, "already set") {
		t.Error("expected stored-secret markers, not values")
	}
}
