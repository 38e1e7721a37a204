// Package http contains the gin handlers binding the services to the
// request/response cycle and view rendering.
package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Mythos223/Blog-Website-Project/internal/middleware"
	"github.com/Mythos223/Blog-Website-Project/internal/service"
)

// AuthHandler serves the login, registration and logout routes.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.tmpl", gin.H{"errorMessage": nil, "username": ""})
}

// Login handles the login form submission. Any credential failure re-renders
// the form with a generic message; only the entered identifier is echoed back.
func (h *AuthHandler) Login(c *gin.Context) {
	usernameOrEmail := c.PostForm("usernameOrEmail")
	password := c.PostForm("password")

	user, err := h.authService.Login(c.Request.Context(), usernameOrEmail, password)
	if err != nil {
		if !errors.Is(err, service.ErrInvalidCredentials) {
			logrus.WithError(err).Error("Handler.Login: internal error during login")
			c.String(http.StatusInternalServerError, "Login failed due to server error")
			return
		}
		render(c, http.StatusOK, "login.tmpl", gin.H{
			"errorMessage": "Invalid username/email or password",
			"username":     usernameOrEmail,
		})
		return
	}

	h.startSession(c, user.Username, fmt.Sprintf("Welcome back, %s!", user.FirstName))
	c.Redirect(http.StatusFound, "/")
}

// ShowRegister renders the registration form.
func (h *AuthHandler) ShowRegister(c *gin.Context) {
	render(c, http.StatusOK, "register.tmpl", gin.H{"errorMessage": nil})
}

// Register handles the registration form submission.
func (h *AuthHandler) Register(c *gin.Context) {
	in := service.RegisterInput{
		FirstName:       c.PostForm("firstName"),
		LastName:        c.PostForm("lastName"),
		Username:        c.PostForm("username"),
		Email:           c.PostForm("email"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirmPassword"),
	}

	user, err := h.authService.Register(c.Request.Context(), in)
	if err != nil {
		var message string
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			message = "Username already taken"
		case errors.Is(err, service.ErrEmailTaken):
			message = "Email already in use"
		case errors.Is(err, service.ErrPasswordMismatch):
			message = "Passwords do not match"
		default:
			logrus.WithError(err).Error("Handler.Register: internal error during registration")
			c.String(http.StatusInternalServerError, "Registration failed due to server error")
			return
		}
		render(c, http.StatusOK, "register.tmpl", gin.H{"errorMessage": message})
		return
	}

	h.startSession(c, user.Username, fmt.Sprintf("Welcome, %s!", user.FirstName))
	c.Redirect(http.StatusFound, "/")
}

// Logout destroys the session. A failed destroy is logged and swallowed;
// the redirect proceeds regardless.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		logrus.WithError(err).Warn("Handler.Logout: failed to destroy session")
	}
	c.Redirect(http.StatusFound, "/")
}

// startSession transitions the session to Authenticated and schedules the
// one-shot welcome flash, cleared by the next home render.
func (h *AuthHandler) startSession(c *gin.Context, username, welcome string) {
	session := sessions.Default(c)
	session.Set(middleware.SessionUsername, username)
	session.Set(middleware.SessionWelcomeMessage, welcome)
	session.Set(middleware.SessionShowWelcome, true)
	if err := session.Save(); err != nil {
		logrus.WithError(err).WithField("username", username).
			Error("Failed to save session after authentication")
	}
}
