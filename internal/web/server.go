package web

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/RAFA-RIKI/first-site-i-made/internal/core/service"
	"github.com/RAFA-RIKI/first-site-i-made/internal/web/handler"
	"github.com/RAFA-RIKI/first-site-i-made/internal/web/middleware"
	"github.com/RAFA-RIKI/first-site-i-made/internal/web/templates"
	"github.com/RAFA-RIKI/first-site-i-made/pkg/config"
)

const SessionCookieName = "firstsite_session"

type Server struct {
	router *gin.Engine
	srv    *http.Server
	config *config.Config
}

// NewServer creates the HTTP server and wires up all routes.
func NewServer(
	cfg *config.Config,
	authService *service.AuthService,
	submissionService *service.SubmissionService,
) *Server {
	// Set Gin mode
	if !cfg.IsDevMode() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())

	// Signed cookie sessions; state lives client-side, the secret only on
	// the server.
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(SessionCookieName, store))

	router.SetHTMLTemplate(templates.Load())

	// Initialize handlers
	homeHandler := handler.NewHomeHandler(submissionService)
	authHandler := handler.NewAuthHandler(authService)
	submissionHandler := handler.NewSubmissionHandler(submissionService)

	// Public routes
	router.GET("/", homeHandler.Home)
	router.GET("/about", homeHandler.About)
	router.GET("/register", authHandler.RegisterForm)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	// Protected routes (login required)
	protected := router.Group("/")
	protected.Use(middleware.RequireLogin())
	{
		protected.GET("/submit", submissionHandler.Form)
		protected.POST("/submit", submissionHandler.Create)
		protected.POST("/delete/:id", submissionHandler.Delete)
	}

	// Health check
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return &Server{
		router: router,
		config: cfg,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.HTTPHost, s.config.HTTPPort)

	s.srv = &http.Server{
		Addr:           addr,
		Handler:        s.router,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	fmt.Printf("Starting HTTP server on %s\n", addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.srv != nil {
		return s.srv.Shutdown(ctx)
	}
	return nil
}
