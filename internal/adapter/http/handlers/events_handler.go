package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	request "discord_clerk/internal/adapter/http/dto/request"
	response "discord_clerk/internal/adapter/http/dto/response"
	"discord_clerk/internal/domain/entities"
	"discord_clerk/internal/usecase"
	"discord_clerk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEventPayload = pkg.NewDomainErrorSimple("INVALID_EVENT_INPUT", "Invalid event payload", http.StatusBadRequest)
	errUnknownComponent    = pkg.NewDomainErrorSimple("UNKNOWN_COMPONENT", "Unknown component interaction", http.StatusNotFound)
)

// EventsHandler receives gateway events relayed by the platform shim:
// direct messages feeding active application sessions and component
// selections (buttons, select menus).

type EventsHandler struct {
	applications usecase.IApplicationUseCase
	orders       usecase.IOrderUseCase
	points       usecase.IPointsUseCase
	positions    []string
}

func NewEventsHandler(applications usecase.IApplicationUseCase, orders usecase.IOrderUseCase, points usecase.IPointsUseCase, positions []string) *EventsHandler {
	return &EventsHandler{applications: applications, orders: orders, points: points, positions: positions}
}

// OnDirectMessage handles POST /v1/events/dm. Messages from users with no
// active session are acknowledged and ignored.
func (h *EventsHandler) OnDirectMessage(c *gin.Context) {
	var payload request.DirectMessageEvent
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	if err := h.applications.HandleDirectMessage(c.Request.Context(), payload.UserID, payload.Content); err != nil {
		appErr := mapApplicationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// OnSelection handles POST /v1/events/selection.
func (h *EventsHandler) OnSelection(c *gin.Context) {
	var payload request.SelectionEvent
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	var (
		result response.RenderableResult
		appErr *pkg.AppError
	)
	switch {
	case payload.CustomID == "position_select":
		result, appErr = h.startApplication(c, payload)
	case payload.CustomID == "apply_now":
		result = response.RenderableResult{
			Content:   "Which position are you applying for?",
			Ephemeral: true,
			Data: map[string]interface{}{
				"component": "position_select",
				"positions": h.positions,
			},
		}
	case payload.CustomID == "order_type_select":
		result, appErr = h.placeOrder(c, payload)
	case payload.CustomID == "place_order":
		result, appErr = h.orderTypePrompt(c)
	case payload.CustomID == "view_points":
		result, appErr = h.viewOwnPoints(c, payload)
	case strings.HasPrefix(payload.CustomID, usecase.AcceptTermsCustomIDPrefix):
		result, appErr = h.acceptTerms(c, payload)
	default:
		c.JSON(errUnknownComponent.HTTPStatus, errUnknownComponent.ToHTTPError())
		return
	}

	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *EventsHandler) startApplication(c *gin.Context, payload request.SelectionEvent) (response.RenderableResult, *pkg.AppError) {
	if _, err := h.applications.StartApplication(c.Request.Context(), payload.UserID, payload.Value); err != nil {
		return response.RenderableResult{}, mapApplicationError(err)
	}
	return response.RenderableResult{
		Content:   fmt.Sprintf("Starting your application for **%s**! Check your DMs for the first question.", payload.Value),
		Ephemeral: true,
	}, nil
}

func (h *EventsHandler) placeOrder(c *gin.Context, payload request.SelectionEvent) (response.RenderableResult, *pkg.AppError) {
	details := map[string]interface{}{
		"requested_at": time.Now().UTC().Format(time.RFC3339),
	}
	placed, err := h.orders.PlaceOrder(c.Request.Context(), payload.UserID, entities.OrderType(payload.Value), details, payload.GuildID)
	if err != nil {
		return response.RenderableResult{}, mapOrderError(err)
	}

	result := response.RenderableResult{
		Content:   fmt.Sprintf("Order placed! Head over to <#%s> to review and accept the service terms.", placed.Order.ChannelID),
		Ephemeral: true,
		Warnings:  placed.Warnings,
		Data: map[string]interface{}{
			"order_id": placed.Order.ID,
		},
	}
	return result, nil
}

func (h *EventsHandler) orderTypePrompt(c *gin.Context) (response.RenderableResult, *pkg.AppError) {
	state, err := h.orders.IntakeStatus(c.Request.Context())
	if err != nil {
		return response.RenderableResult{}, mapOrderError(err)
	}
	if state.Status == entities.IntakeStatusClosed {
		return response.RenderableResult{
			Content:   "Orders are currently closed. Please check back later.",
			Ephemeral: true,
		}, nil
	}

	content := "What type of order would you like to place?"
	if state.Status == entities.IntakeStatusDelayed {
		content = "Heads up: orders are currently delayed. " + content
	}
	return response.RenderableResult{
		Content:   content,
		Ephemeral: true,
		Data: map[string]interface{}{
			"component":   "order_type_select",
			"order_types": orderTypeValues(),
		},
	}, nil
}

func (h *EventsHandler) viewOwnPoints(c *gin.Context, payload request.SelectionEvent) (response.RenderableResult, *pkg.AppError) {
	summary, err := h.points.Check(c.Request.Context(), payload.UserID)
	if err != nil {
		return response.RenderableResult{}, mapPointsError(err)
	}
	return response.RenderableResult{
		Content:   formatPointsSummary(summary),
		Ephemeral: true,
	}, nil
}

func (h *EventsHandler) acceptTerms(c *gin.Context, payload request.SelectionEvent) (response.RenderableResult, *pkg.AppError) {
	orderID := strings.TrimPrefix(payload.CustomID, usecase.AcceptTermsCustomIDPrefix)
	order, err := h.orders.AcceptTerms(c.Request.Context(), orderID, payload.UserID)
	if err != nil {
		return response.RenderableResult{}, mapOrderError(err)
	}
	return response.RenderableResult{
		Content: fmt.Sprintf("Terms accepted. Order `%s` is now **%s** and work can begin.", order.ID, order.Status),
	}, nil
}

func mapApplicationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidApplicantID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownPosition):
		return pkg.NewDomainErrorSimple("UNKNOWN_POSITION", "Unknown position", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNoActiveApplication):
		return pkg.NewDomainErrorSimple("NO_ACTIVE_APPLICATION", "No active application for this user", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApplicationNotComplete):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_COMPLETE", "The application still has unanswered questions", http.StatusConflict)
	case errors.Is(err, usecase.ErrApplicantUnreachable):
		return pkg.NewDomainError("APPLICANT_UNREACHABLE", "Could not deliver a direct message to the applicant. Make sure DMs are open.", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSubmissionPersist):
		return pkg.NewDomainError("SUBMISSION_SAVE_FAILED", "Your application could not be saved. Your answers are kept; please retry shortly.", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
