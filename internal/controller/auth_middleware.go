// internal/controller/auth_middleware.go
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/unclebandit/leadreach-webclient/internal/model"
	"github.com/unclebandit/leadreach-webclient/internal/service"
)

const sessionCookie = "leadreach_session"

type ctxKey int

const (
	ctxUserKey ctxKey = iota
	ctxSessionKey
)

func sessionID(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

// AuthMiddleware is the route guard: every guarded request re-hydrates the
// session against the backend; anything unauthenticated bounces to /login.
type AuthMiddleware struct {
	Auth *service.AuthService
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, session, err := m.Auth.Hydrate(r.Context(), sessionID(r))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if user == nil {
			clearSessionCookie(w)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		ctx := context.WithValue(r.Context(), ctxUserKey, user)
		ctx = context.WithValue(ctx, ctxSessionKey, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUser returns the hydrated user; only valid behind RequireAuth.
func CurrentUser(r *http.Request) *model.User {
	user, _ := r.Context().Value(ctxUserKey).(*model.User)
	return user
}

// CurrentSession returns the hydrated session; only valid behind RequireAuth.
func CurrentSession(r *http.Request) *model.Session {
	session, _ := r.Context().Value(ctxSessionKey).(*model.Session)
	return session
}
