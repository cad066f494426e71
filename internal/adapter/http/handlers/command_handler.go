package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	request "discord_clerk/internal/adapter/http/dto/request"
	response "discord_clerk/internal/adapter/http/dto/response"
	"discord_clerk/internal/domain/entities"
	"discord_clerk/internal/usecase"
	"discord_clerk/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCommandPayload = pkg.NewDomainErrorSimple("INVALID_COMMAND_INPUT", "Invalid command payload", http.StatusBadRequest)
	errCommandNotFound       = pkg.NewDomainErrorSimple("COMMAND_NOT_FOUND", "Unknown command", http.StatusNotFound)
	errPermissionDenied      = pkg.NewDomainErrorSimple("PERMISSION_DENIED", "You do not have permission to run this command", http.StatusForbidden)
)

// CommandHandler executes slash-command invocations relayed by the platform
// shim. Permission resolution happens on the caller's side; privileged
// commands only verify the attested permission name is present.

type CommandHandler struct {
	points    usecase.IPointsUseCase
	orders    usecase.IOrderUseCase
	positions []string
}

func NewCommandHandler(points usecase.IPointsUseCase, orders usecase.IOrderUseCase, positions []string) *CommandHandler {
	return &CommandHandler{points: points, orders: orders, positions: positions}
}

// Execute dispatches POST /v1/commands/:command.
func (h *CommandHandler) Execute(c *gin.Context) {
	var payload request.CommandRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCommandPayload.HTTPStatus, errInvalidCommandPayload.ToHTTPError())
		return
	}

	var (
		result response.RenderableResult
		appErr *pkg.AppError
	)
	switch strings.ToLower(c.Param("command")) {
	case "addpoints":
		result, appErr = h.addPoints(c, payload)
	case "removepoints":
		result, appErr = h.removePoints(c, payload)
	case "resetpoints":
		result, appErr = h.resetPoints(c, payload)
	case "checkpoints":
		result, appErr = h.checkPoints(c, payload)
	case "setorderstatus":
		result, appErr = h.setOrderStatus(c, payload)
	case "careers":
		result = h.careers()
	case "orders":
		result, appErr = h.ordersPanel(c)
	case "rules":
		result = h.rules()
	default:
		c.JSON(errCommandNotFound.HTTPStatus, errCommandNotFound.ToHTTPError())
		return
	}

	if appErr != nil {
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *CommandHandler) addPoints(c *gin.Context, payload request.CommandRequest) (response.RenderableResult, *pkg.AppError) {
	if !payload.HasPermission(request.PermissionModerateMembers) {
		return response.RenderableResult{}, errPermissionDenied
	}

	userID := payload.OptionString("user")
	amount, _ := payload.OptionInt("amount")
	reason := payload.OptionString("reason")

	mut, err := h.points.Add(c.Request.Context(), payload.GuildID, userID, amount, reason, payload.ActorID)
	if err != nil {
		return response.RenderableResult{}, mapPointsError(err)
	}

	content := fmt.Sprintf("Added **%d** point(s) to <@%s>. Reason: %s. Total: **%d** (was %d).",
		mut.Entry.Amount, userID, mut.Entry.Reason, mut.NewTotal, mut.PreviousTotal)
	if mut.BanTriggered && mut.Warning == "" {
		content += fmt.Sprintf("\n<@%s> reached the ban threshold and has been automatically banned.", userID)
	}
	result := response.RenderableResult{Content: content}
	if mut.Warning != "" {
		result.Warnings = append(result.Warnings, mut.Warning)
	}
	return result, nil
}

func (h *CommandHandler) removePoints(c *gin.Context, payload request.CommandRequest) (response.RenderableResult, *pkg.AppError) {
	if !payload.HasPermission(request.PermissionModerateMembers) {
		return response.RenderableResult{}, errPermissionDenied
	}

	userID := payload.OptionString("user")
	amount, _ := payload.OptionInt("amount")
	reason := payload.OptionString("reason")

	mut, err := h.points.Remove(c.Request.Context(), userID, amount, reason, payload.ActorID)
	if err != nil {
		return response.RenderableResult{}, mapPointsError(err)
	}

	return response.RenderableResult{
		Content: fmt.Sprintf("Removed **%d** point(s) from <@%s>. Reason: %s. Total: **%d** (was %d).",
			mut.Entry.Amount, userID, mut.Entry.Reason, mut.NewTotal, mut.PreviousTotal),
	}, nil
}

func (h *CommandHandler) resetPoints(c *gin.Context, payload request.CommandRequest) (response.RenderableResult, *pkg.AppError) {
	if !payload.HasPermission(request.PermissionModerateMembers) {
		return response.RenderableResult{}, errPermissionDenied
	}

	userID := payload.OptionString("user")
	reason := payload.OptionString("reason")

	mut, err := h.points.Reset(c.Request.Context(), userID, reason, payload.ActorID)
	if err != nil {
		return response.RenderableResult{}, mapPointsError(err)
	}

	return response.RenderableResult{
		Content: fmt.Sprintf("Reset points for <@%s>. Reason: %s. Total: **%d** (was %d).",
			userID, mut.Entry.Reason, mut.NewTotal, mut.PreviousTotal),
	}, nil
}

func (h *CommandHandler) checkPoints(c *gin.Context, payload request.CommandRequest) (response.RenderableResult, *pkg.AppError) {
	if !payload.HasPermission(request.PermissionModerateMembers) {
		return response.RenderableResult{}, errPermissionDenied
	}

	userID := payload.OptionString("user")
	summary, err := h.points.Check(c.Request.Context(), userID)
	if err != nil {
		return response.RenderableResult{}, mapPointsError(err)
	}

	return response.RenderableResult{
		Content:   formatPointsSummary(summary),
		Ephemeral: true,
	}, nil
}

func (h *CommandHandler) setOrderStatus(c *gin.Context, payload request.CommandRequest) (response.RenderableResult, *pkg.AppError) {
	if !payload.HasPermission(request.PermissionManageChannels) {
		return response.RenderableResult{}, errPermissionDenied
	}

	status := entities.IntakeStatus(payload.OptionString("status"))
	state, err := h.orders.SetIntakeStatus(c.Request.Context(), status, payload.ActorID)
	if err != nil {
		return response.RenderableResult{}, mapOrderError(err)
	}

	return response.RenderableResult{
		Content: fmt.Sprintf("Order intake status set to **%s** by <@%s>.", state.Status, state.UpdatedBy),
	}, nil
}

func (h *CommandHandler) careers() response.RenderableResult {
	return response.RenderableResult{
		Content: "**Career opportunities**\nWe're hiring! Press Apply Now to start an application. Questions arrive one at a time by direct message, so make sure your DMs are open.",
		Data: map[string]interface{}{
			"component": "apply_now",
			"positions": h.positions,
		},
	}
}

func (h *CommandHandler) ordersPanel(c *gin.Context) (response.RenderableResult, *pkg.AppError) {
	state, err := h.orders.IntakeStatus(c.Request.Context())
	if err != nil {
		return response.RenderableResult{}, mapOrderError(err)
	}

	return response.RenderableResult{
		Content: fmt.Sprintf("**Design orders**\nCurrent intake status: **%s**. Press Place Order to choose a service type.", state.Status),
		Data: map[string]interface{}{
			"component":     "place_order",
			"intake_status": string(state.Status),
			"disabled":      state.Status == entities.IntakeStatusClosed,
			"order_types":   orderTypeValues(),
		},
	}, nil
}

func (h *CommandHandler) rules() response.RenderableResult {
	return response.RenderableResult{
		Content: "**Server rules & infraction points**\nRule breaches earn infraction points; reaching the ban threshold results in an automatic ban. Moderators manage points with /addpoints, /removepoints and /checkpoints.",
		Data: map[string]interface{}{
			"components": []string{"view_points", "order_rules", "chain_of_command", "update_rules"},
		},
	}
}

func formatPointsSummary(s usecase.PointsSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<@%s> has **%d** infraction point(s).", s.UserID, s.Total)
	if len(s.History) > 0 {
		b.WriteString("\nRecent history:")
		for _, e := range s.History {
			fmt.Fprintf(&b, "\n- %s %d (%s) by <@%s> on %s", e.Action, e.Amount, e.Reason, e.ModeratorID, e.Timestamp.Format("2006-01-02 15:04"))
		}
	}
	return b.String()
}

func orderTypeValues() []string {
	return []string{
		string(entities.OrderTypeLiveries),
		string(entities.OrderTypeAvatars),
		string(entities.OrderTypeELS),
		string(entities.OrderTypeOthers),
	}
}

func mapPointsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPointsUserID),
		errors.Is(err, usecase.ErrInvalidPointsActor),
		errors.Is(err, usecase.ErrInvalidAddAmount),
		errors.Is(err, usecase.ErrInvalidRemoveAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidOrderUserID),
		errors.Is(err, usecase.ErrInvalidOrderGuildID),
		errors.Is(err, usecase.ErrInvalidOrderType),
		errors.Is(err, usecase.ErrInvalidIntakeStatus),
		errors.Is(err, usecase.ErrInvalidChannelID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrdersClosed):
		return pkg.NewDomainErrorSimple("ORDERS_CLOSED", "Orders are currently closed. Please check back later.", http.StatusConflict)
	case errors.Is(err, usecase.ErrTermsAlreadyAccepted):
		return pkg.NewDomainErrorSimple("TERMS_ALREADY_ACCEPTED", "Terms were already accepted for this order", http.StatusConflict)
	case errors.Is(err, usecase.ErrChannelAlreadyAttached):
		return pkg.NewDomainErrorSimple("CHANNEL_ALREADY_ATTACHED", "This order already has a discussion channel", http.StatusConflict)
	case errors.Is(err, usecase.ErrChannelProvisioning):
		return pkg.NewDomainError("CHANNEL_PROVISIONING_FAILED", "Your order was created but its channel could not be set up. Please contact staff.", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
