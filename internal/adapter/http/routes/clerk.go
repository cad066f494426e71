package routes

import (
	"discord_clerk/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCommands     = "/commands"
	PathEvents       = "/events"
	PathPoints       = "/points"
	PathOrders       = "/orders"
	PathApplications = "/applications"
)

func addClerkRoutes(
	rg *gin.RouterGroup,
	commandHandler *handlers.CommandHandler,
	eventsHandler *handlers.EventsHandler,
	pointsHandler *handlers.PointsHandler,
	orderHandler *handlers.OrderHandler,
	applicationHandler *handlers.ApplicationHandler,
) {
	commands := rg.Group(PathCommands)
	{
		commands.POST("/:command", commandHandler.Execute)
	}

	events := rg.Group(PathEvents)
	{
		events.POST("/dm", eventsHandler.OnDirectMessage)
		events.POST("/selection", eventsHandler.OnSelection)
	}

	points := rg.Group(PathPoints)
	{
		points.GET("", pointsHandler.Leaderboard)
		points.GET("/:user_id", pointsHandler.GetUserPoints)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("/intake/status", orderHandler.GetIntakeStatus)
		orders.GET("/user/:user_id", orderHandler.ListUserOrders)
		orders.GET("/:id", orderHandler.GetOrder)
	}

	applications := rg.Group(PathApplications)
	{
		applications.GET("/active", applicationHandler.ActiveApplications)
		applications.GET("/user/:user_id", applicationHandler.ListUserSubmissions)
		applications.POST("/:user_id/retry", applicationHandler.RetrySubmission)
		applications.DELETE("/:user_id", applicationHandler.CancelApplication)
	}
}
