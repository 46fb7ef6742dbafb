// internal/api/auth.go
package api

import (
	"context"

	"github.com/unclebandit/leadreach-webclient/internal/model"
)

type AuthAPIInterface interface {
	Register(ctx context.Context, req RegisterRequest) (*model.User, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	Logout(ctx context.Context, token string) error
	Me(ctx context.Context, token string) (*model.User, error)
	GetSettings(ctx context.Context, token string) (*model.Settings, error)
	UpdateSettings(ctx context.Context, token string, update model.SettingsUpdate) (*model.Settings, error)
}

type AuthAPI struct {
	Client *Client
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

func (a *AuthAPI) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	var user model.User
	if err := a.Client.post(ctx, "/api/auth/register", nil, "", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AuthAPI) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var tokens TokenPair
	if err := a.Client.post(ctx, "/api/auth/login", nil, "", body, &tokens); err != nil {
		return nil, err
	}
	return &tokens, nil
}

func (a *AuthAPI) Logout(ctx context.Context, token string) error {
	return a.Client.post(ctx, "/api/auth/logout", nil, token, nil, nil)
}

func (a *AuthAPI) Me(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	if err := a.Client.get(ctx, "/api/auth/me", nil, token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (a *AuthAPI) GetSettings(ctx context.Context, token string) (*model.Settings, error) {
	var settings model.Settings
	if err := a.Client.get(ctx, "/api/auth/settings", nil, token, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (a *AuthAPI) UpdateSettings(ctx context.Context, token string, update model.SettingsUpdate) (*model.Settings, error) {
	var settings model.Settings
	if err := a.Client.put(ctx, "/api/auth/settings", token, update, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

var _ AuthAPIInterface = (*AuthAPI)(nil)
