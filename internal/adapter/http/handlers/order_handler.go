package handlers

import (
	"net/http"

	response "discord_clerk/internal/adapter/http/dto/response"
	"discord_clerk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(u usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: u}
}

// GetOrder handles GET /v1/orders/:id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListUserOrders handles GET /v1/orders/user/:user_id.
func (h *OrderHandler) ListUserOrders(c *gin.Context) {
	orders, err := h.usecase.ListByUserID(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetIntakeStatus handles GET /v1/orders/intake/status.
func (h *OrderHandler) GetIntakeStatus(c *gin.Context) {
	state, err := h.usecase.IntakeStatus(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromIntakeState(state))
}
