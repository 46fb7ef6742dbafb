// internal/controller/auth_controller.go
package controller

import (
	"net/http"

	"github.com/unclebandit/leadreach-webclient/internal/api"
	"github.com/unclebandit/leadreach-webclient/internal/flash"
	"github.com/unclebandit/leadreach-webclient/internal/service"
	"github.com/unclebandit/leadreach-webclient/internal/web"
)

type AuthController struct {
	Auth  *service.AuthService
	Flash *flash.Store
	Views *web.Templates
}

type loginForm struct {
	Email    string
	FullName string
}

func (c *AuthController) LoginPage(w http.ResponseWriter, r *http.Request) {
	c.Views.Render(w, "login", web.Page{Title: "Log in", Data: loginForm{}})
}

func (c *AuthController) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := r.FormValue("email")
	password := r.FormValue("password")

	id, ok, errMsg := c.Auth.Login(r.Context(), email, password)
	if !ok {
		c.Views.Render(w, "login", web.Page{
			Title:   "Log in",
			Notices: []flash.Notice{{Level: flash.LevelError, Message: errMsg}},
			Data:    loginForm{Email: email},
		})
		return
	}

	setSessionCookie(w, id)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (c *AuthController) RegisterPage(w http.ResponseWriter, r *http.Request) {
	c.Views.Render(w, "register", web.Page{Title: "Register", Data: loginForm{}})
}

func (c *AuthController) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	req := api.RegisterRequest{
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
		FullName: r.FormValue("full_name"),
	}

	// Auto-login after signup
	id, ok, errMsg := c.Auth.Register(r.Context(), req)
	if !ok {
		c.Views.Render(w, "register", web.Page{
			Title:   "Register",
			Notices: []flash.Notice{{Level: flash.LevelError, Message: errMsg}},
			Data:    loginForm{Email: req.Email, FullName: req.FullName},
		})
		return
	}

	setSessionCookie(w, id)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	session := CurrentSession(r)
	c.Auth.Logout(r.Context(), session.ID)
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
