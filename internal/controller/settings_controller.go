// internal/controller/settings_controller.go
package controller

import (
	"net/http"

	"github.com/unclebandit/leadreach-webclient/internal/api"
	"github.com/unclebandit/leadreach-webclient/internal/flash"
	"github.com/unclebandit/leadreach-webclient/internal/model"
	"github.com/unclebandit/leadreach-webclient/internal/web"
)

type SettingsController struct {
	Auth  api.AuthAPIInterface
	Flash *flash.Store
	Views *web.Templates
}

type settingsData struct {
	Settings *model.Settings
}

func (c *SettingsController) Page(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)

	settings, err := c.Auth.GetSettings(r.Context(), session.AccessToken)
	notices := c.Flash.Pop(session.ID)
	if err != nil {
		notices = append(notices, flash.Notice{Level: flash.LevelError, Message: "Failed to load settings"})
		settings = &model.Settings{NotificationMethod: "email"}
	}

	c.Views.Render(w, "settings", web.Page{
		Title:   "Settings",
		User:    CurrentUser(r),
		Notices: notices,
		Data:    settingsData{Settings: settings},
	})
}

// Submit sends only the fields the user filled in. Blank secret fields stay
// off the wire so the backend keeps whatever it already has.
func (c *SettingsController) Submit(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	update := model.SettingsUpdate{
		GeminiAPIKey:       r.FormValue("gemini_api_key"),
		GmailAddress:       r.FormValue("gmail_address"),
		GmailAppPassword:   r.FormValue("gmail_app_password"),
		TelegramBotToken:   r.FormValue("telegram_bot_token"),
		TelegramChatID:     r.FormValue("telegram_chat_id"),
		NotificationMethod: r.FormValue("notification_method"),
	}

	if _, err := c.Auth.UpdateSettings(r.Context(), session.AccessToken, update); err != nil {
		c.Flash.Error(session.ID, api.Detail(err, "Failed to save settings"))
	} else {
		c.Flash.Success(session.ID, "Settings saved successfully!")
	}

	// Redirecting re-renders the page with secret inputs blank again.
	http.Redirect(w, r, "/settings", http.StatusSeeOther)
}
