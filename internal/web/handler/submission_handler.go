package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/RAFA-RIKI/first-site-i-made/internal/core/service"
	"github.com/RAFA-RIKI/first-site-i-made/internal/web/flash"
	"github.com/RAFA-RIKI/first-site-i-made/internal/web/middleware"
)

type SubmissionHandler struct {
	submissionService *service.SubmissionService
}

func NewSubmissionHandler(submissionService *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
	}
}

// Form handles GET /submit
func (h *SubmissionHandler) Form(c *gin.Context) {
	username, _ := middleware.CurrentUserName(c)

	c.HTML(http.StatusOK, "submit.html", gin.H{
		"Title":    "Submit Your Name",
		"Username": username,
		"Flashes":  flash.Pop(c),
	})
}

// Create handles POST /submit
func (h *SubmissionHandler) Create(c *gin.Context) {
	// The guard already ran, but a session without a user id cannot own a
	// submission; send the caller back through login.
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		flash.Add(c, flash.CategoryError, "Authentication error: please log in again.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	ageRaw := strings.TrimSpace(c.PostForm("age"))

	if name == "" || ageRaw == "" {
		flash.Add(c, flash.CategoryError, "Name and age are required.")
		c.Redirect(http.StatusFound, "/submit")
		return
	}

	age, err := strconv.Atoi(ageRaw)
	if err != nil {
		flash.Add(c, flash.CategoryError, "Age must be a valid number.")
		c.Redirect(http.StatusFound, "/submit")
		return
	}
	if age <= 0 {
		flash.Add(c, flash.CategoryError, "Age must be a positive number.")
		c.Redirect(http.StatusFound, "/submit")
		return
	}

	submittedBy, ok := middleware.CurrentUserName(c)
	if !ok {
		submittedBy = "Anonymous"
	}

	if _, err := h.submissionService.Create(c.Request.Context(), userID, name, age, submittedBy); err != nil {
		flash.Add(c, flash.CategoryError, "Could not save your submission.")
		c.Redirect(http.StatusFound, "/submit")
		return
	}

	flash.Add(c, flash.CategorySuccess, "Data submitted successfully.")
	c.Redirect(http.StatusFound, "/")
}

// Delete handles POST /delete/:id
func (h *SubmissionHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.String(http.StatusNotFound, "submission not found")
		return
	}

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		flash.Add(c, flash.CategoryError, "Authentication error: please log in again.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	submission, err := h.submissionService.Delete(c.Request.Context(), id, userID)
	switch {
	case errors.Is(err, service.ErrSubmissionNotFound):
		c.String(http.StatusNotFound, "submission not found")
		return
	case errors.Is(err, service.ErrNotOwner):
		flash.Add(c, flash.CategoryError, "You do not have permission to delete this submission.")
		c.Redirect(http.StatusFound, "/")
		return
	case err != nil:
		flash.Add(c, flash.CategoryError, "An error occurred while deleting the submission.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	flash.Add(c, flash.CategorySuccess, fmt.Sprintf("Submission %d for '%s' deleted.", submission.ID, submission.Name))
	c.Redirect(http.StatusFound, "/")
}
