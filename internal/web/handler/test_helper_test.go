package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/RAFA-RIKI/first-site-i-made/internal/core/service"
	"github.com/RAFA-RIKI/first-site-i-made/internal/infrastructure/sqlite"
	"github.com/RAFA-RIKI/first-site-i-made/internal/web/middleware"
	"github.com/RAFA-RIKI/first-site-i-made/internal/web/templates"
)

// testEnv holds all test dependencies
type testEnv struct {
	db     *sqlite.DB
	router *gin.Engine
}

// setupTestEnv creates a test environment with an in-memory SQLite database
// and the same route layout the server uses.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	if err := db.ApplyMigrations(); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	userRepo := sqlite.NewUserRepository(db)
	submissionRepo := sqlite.NewSubmissionRepository(db)

	authService := service.NewAuthService(userRepo)
	submissionService := service.NewSubmissionService(submissionRepo)

	homeHandler := NewHomeHandler(submissionService)
	authHandler := NewAuthHandler(authService)
	submissionHandler := NewSubmissionHandler(submissionService)

	// Setup gin router in test mode
	gin.SetMode(gin.TestMode)
	router := gin.New()

	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("firstsite_session", store))
	router.SetHTMLTemplate(templates.Load())

	router.GET("/", homeHandler.Home)
	router.GET("/about", homeHandler.About)
	router.GET("/register", authHandler.RegisterForm)
	router.POST("/register", authHandler.Register)
	router.GET("/login", authHandler.LoginForm)
	router.POST("/login", authHandler.Login)
	router.GET("/logout", authHandler.Logout)

	protected := router.Group("/")
	protected.Use(middleware.RequireLogin())
	{
		protected.GET("/submit", submissionHandler.Form)
		protected.POST("/submit", submissionHandler.Create)
		protected.POST("/delete/:id", submissionHandler.Delete)
	}

	return &testEnv{
		db:     db,
		router: router,
	}
}

// cleanup closes the test database
func (env *testEnv) cleanup() {
	if env.db != nil {
		env.db.Close()
	}
}

// count returns the number of rows in a table
func (env *testEnv) count(t *testing.T, table string) int {
	t.Helper()

	var n int
	if err := env.db.Get(&n, "SELECT COUNT(*) FROM "+table); err != nil {
		t.Fatalf("failed to count rows in %s: %v", table, err)
	}
	return n
}

// browser simulates a cookie-holding client so session state survives
// across requests within a test.
type browser struct {
	t       *testing.T
	env     *testEnv
	cookies map[string]*http.Cookie
}

func (env *testEnv) newBrowser(t *testing.T) *browser {
	t.Helper()
	return &browser{
		t:       t,
		env:     env,
		cookies: make(map[string]*http.Cookie),
	}
}

func (b *browser) do(method, path string, form url.Values) *httptest.ResponseRecorder {
	b.t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, ck := range b.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	b.env.router.ServeHTTP(w, req)

	for _, ck := range w.Result().Cookies() {
		b.cookies[ck.Name] = ck
	}

	return w
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(http.MethodGet, path, nil)
}

func (b *browser) postForm(path string, form url.Values) *httptest.ResponseRecorder {
	return b.do(http.MethodPost, path, form)
}

func (b *browser) register(name, email, password string) *httptest.ResponseRecorder {
	return b.postForm("/register", url.Values{
		"name":     {name},
		"email":    {email},
		"password": {password},
	})
}

func (b *browser) login(email, password string) *httptest.ResponseRecorder {
	return b.postForm("/login", url.Values{
		"email":    {email},
		"password": {password},
	})
}

// registerAndLogin runs the full register + login flow for a fresh user.
func (b *browser) registerAndLogin(name, email, password string) {
	b.t.Helper()

	if w := b.register(name, email, password); w.Code != http.StatusFound {
		b.t.Fatalf("register returned status %d", w.Code)
	}
	if w := b.login(email, password); w.Code != http.StatusFound {
		b.t.Fatalf("login returned status %d", w.Code)
	}
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()

	if w.Code != http.StatusFound {
		t.Fatalf("expected status %d, got %d", http.StatusFound, w.Code)
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %q, got %q", location, got)
	}
}
