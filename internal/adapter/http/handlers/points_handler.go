package handlers

import (
	"net/http"

	response "discord_clerk/internal/adapter/http/dto/response"
	"discord_clerk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PointsHandler struct {
	usecase usecase.IPointsUseCase
}

func NewPointsHandler(u usecase.IPointsUseCase) *PointsHandler {
	return &PointsHandler{usecase: u}
}

// GetUserPoints handles GET /v1/points/:user_id.
func (h *PointsHandler) GetUserPoints(c *gin.Context) {
	summary, err := h.usecase.Check(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapPointsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPointsSummary(summary.UserID, summary.Total, summary.History))
}

// Leaderboard handles GET /v1/points.
func (h *PointsHandler) Leaderboard(c *gin.Context) {
	totals, err := h.usecase.Leaderboard(c.Request.Context())
	if err != nil {
		appErr := mapPointsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromLeaderboard(totals))
}
