package handlers

import (
	"net/http"

	response "discord_clerk/internal/adapter/http/dto/response"
	"discord_clerk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	usecase usecase.IApplicationUseCase
}

func NewApplicationHandler(u usecase.IApplicationUseCase) *ApplicationHandler {
	return &ApplicationHandler{usecase: u}
}

// RetrySubmission handles POST /v1/applications/:user_id/retry. It re-runs
// the completion step for a session whose submission failed to persist.
func (h *ApplicationHandler) RetrySubmission(c *gin.Context) {
	submission, err := h.usecase.RetryCompletion(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmission(submission))
}

// ListUserSubmissions handles GET /v1/applications/user/:user_id.
func (h *ApplicationHandler) ListUserSubmissions(c *gin.Context) {
	submissions, err := h.usecase.ListUserSubmissions(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSubmissions(submissions))
}

// ActiveApplications handles GET /v1/applications/active. It reports how
// many application sessions are currently in flight.
func (h *ApplicationHandler) ActiveApplications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"active": h.usecase.ActiveCount()})
}

// CancelApplication handles DELETE /v1/applications/:user_id. It abandons
// the user's in-flight application session, if any.
func (h *ApplicationHandler) CancelApplication(c *gin.Context) {
	if err := h.usecase.CancelApplication(c.Request.Context(), c.Param("user_id")); err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}
