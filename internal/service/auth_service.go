// internal/service/auth_service.go
package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/unclebandit/leadreach-webclient/internal/api"
	appErrors "github.com/unclebandit/leadreach-webclient/internal/errors"
	"github.com/unclebandit/leadreach-webclient/internal/model"
	"github.com/unclebandit/leadreach-webclient/internal/repository"
)

// AuthService is the session store: it owns the token pair lifecycle and is
// the only component allowed to create or destroy sessions.
type AuthService struct {
	Auth     api.AuthAPIInterface
	Sessions repository.SessionRepositoryInterface
}

// Hydrate resolves the current user for a session id. A failed current-user
// call means the tokens are dead, so the session row is dropped and the
// caller sees an unauthenticated state. (nil, nil, nil) = not logged in.
func (s *AuthService) Hydrate(ctx context.Context, sessionID string) (*model.User, *model.Session, error) {
	if sessionID == "" {
		return nil, nil, nil
	}

	session, err := s.Sessions.GetByID(sessionID)
	if err != nil {
		if _, notFound := err.(*appErrors.ErrSessionNotFound); notFound {
			return nil, nil, nil
		}
		return nil, nil, err
	}

	user, err := s.Auth.Me(ctx, session.AccessToken)
	if err != nil {
		log.Println("⚠️ current-user fetch failed, clearing session:", err)
		if delErr := s.Sessions.Delete(sessionID); delErr != nil {
			return nil, nil, delErr
		}
		return nil, nil, nil
	}

	return user, session, nil
}

// Login exchanges credentials for a token pair and persists them under a new
// session id. Failures never propagate as errors; the caller gets a flag and
// a message to show.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, bool, string) {
	tokens, err := s.Auth.Login(ctx, email, password)
	if err != nil {
		return "", false, api.Detail(err, "Login failed")
	}

	session := &model.Session{
		ID:           uuid.NewString(),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	}
	if err := s.Sessions.Create(session); err != nil {
		log.Println("⚠️ failed to persist session:", err)
		return "", false, "Login failed"
	}

	// Re-run the current-user fetch so a dead token never yields a live session.
	if _, err := s.Auth.Me(ctx, tokens.AccessToken); err != nil {
		log.Println("⚠️ current-user fetch failed right after login:", err)
		_ = s.Sessions.Delete(session.ID)
		return "", false, api.Detail(err, "Login failed")
	}

	return session.ID, true, ""
}

// Register creates the account and then logs in with the same credentials.
func (s *AuthService) Register(ctx context.Context, req api.RegisterRequest) (string, bool, string) {
	if _, err := s.Auth.Register(ctx, req); err != nil {
		return "", false, api.Detail(err, "Registration failed")
	}
	return s.Login(ctx, req.Email, req.Password)
}

// Logout tells the backend best-effort, then drops the session no matter what.
func (s *AuthService) Logout(ctx context.Context, sessionID string) {
	session, err := s.Sessions.GetByID(sessionID)
	if err == nil {
		if err := s.Auth.Logout(ctx, session.AccessToken); err != nil {
			log.Println("⚠️ backend logout failed:", err)
		}
	}
	if err := s.Sessions.Delete(sessionID); err != nil {
		log.Println("⚠️ failed to delete session:", err)
	}
}
