package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RAFA-RIKI/first-site-i-made/internal/core/service"
	"github.com/RAFA-RIKI/first-site-i-made/internal/web/flash"
	"github.com/RAFA-RIKI/first-site-i-made/internal/web/middleware"
)

type HomeHandler struct {
	submissionService *service.SubmissionService
}

func NewHomeHandler(submissionService *service.SubmissionService) *HomeHandler {
	return &HomeHandler{
		submissionService: submissionService,
	}
}

// LanguageStat is a decorative breakdown shown on the home page. Only the
// Python count is real (it mirrors the total number of submissions); the
// rest are placeholders.
type LanguageStat struct {
	Language string
	Count    int
}

// Home handles GET /
func (h *HomeHandler) Home(c *gin.Context) {
	submissions, err := h.submissionService.List(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load submissions")
		return
	}

	stats := []LanguageStat{
		{Language: "Python", Count: len(submissions)},
		{Language: "JavaScript", Count: 0},
		{Language: "HTML/CSS", Count: 0},
		{Language: "SQL", Count: 0},
	}

	username, _ := middleware.CurrentUserName(c)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title":       "Home",
		"Username":    username,
		"Submissions": submissions,
		"Stats":       stats,
		"Flashes":     flash.Pop(c),
	})
}

// About handles GET /about
func (h *HomeHandler) About(c *gin.Context) {
	username, _ := middleware.CurrentUserName(c)

	c.HTML(http.StatusOK, "about.html", gin.H{
		"Title":    "About us",
		"Username": username,
		"Flashes":  flash.Pop(c),
	})
}
