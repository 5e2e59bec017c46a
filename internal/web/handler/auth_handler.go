package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/RAFA-RIKI/first-site-i-made/internal/core/service"
	"github.com/RAFA-RIKI/first-site-i-made/internal/web/flash"
	"github.com/RAFA-RIKI/first-site-i-made/internal/web/middleware"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// RegisterForm handles GET /register
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Title":   "Register",
		"Flashes": flash.Pop(c),
	})
}

// Register handles POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := c.PostForm("email")
	password := c.PostForm("password")

	if name == "" || strings.TrimSpace(email) == "" || password == "" {
		flash.Add(c, flash.CategoryError, "Name, email and password are required.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	_, err := h.authService.Register(c.Request.Context(), name, email, password)
	if errors.Is(err, service.ErrEmailTaken) {
		flash.Add(c, flash.CategoryError, "This email is already registered.")
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if err != nil {
		flash.Add(c, flash.CategoryError, "Registration failed, please try again.")
		c.Redirect(http.StatusFound, "/register")
		return
	}

	flash.Add(c, flash.CategorySuccess, "Registration successful! Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

// LoginForm handles GET /login
func (h *AuthHandler) LoginForm(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title":   "Log in",
		"Flashes": flash.Pop(c),
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.authService.Login(c.Request.Context(), email, password)
	if err != nil {
		// One generic message for unknown email and wrong password alike.
		flash.Add(c, flash.CategoryError, "Invalid email or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionKeyLoggedIn, true)
	session.Set(middleware.SessionKeyUserID, user.ID)
	session.Set(middleware.SessionKeyName, user.Name)
	session.Set(middleware.SessionKeyEmail, user.Email)

	// flash.Add saves the session, persisting the keys set above.
	flash.Add(c, flash.CategorySuccess, fmt.Sprintf("Welcome back, %s!", user.Name))
	c.Redirect(http.StatusFound, "/")
}

// Logout handles GET /logout. It clears the session unconditionally,
// regardless of prior authentication state.
func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()

	flash.Add(c, flash.CategoryInfo, "You are now logged out.")
	c.Redirect(http.StatusFound, "/")
}
