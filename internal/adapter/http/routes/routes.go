package routes

import (
	"log"
	"os"
	"sort"
	"strconv"
	"time"

	_ "discord_clerk/docs" // This will be auto-generated
	"discord_clerk/internal/adapter/http/handlers"
	repository2 "discord_clerk/internal/adapter/persistence/repository"
	"discord_clerk/internal/adapter/state"
	"discord_clerk/internal/domain/entities"
	"discord_clerk/internal/infrastructure/catalog"
	"discord_clerk/internal/infrastructure/database"
	"discord_clerk/internal/infrastructure/platform"
	"discord_clerk/internal/usecase"
	"discord_clerk/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	pointsRepo := repository2.NewPointsDynamoRepository(ddb)
	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	submissionRepo := repository2.NewSubmissionDynamoRepository(ddb)

	sessions := state.NewSessionStore(
		envDuration("SESSION_INACTIVITY_TIMEOUT", state.DefaultInactivityTimeout),
		envDuration("SESSION_MAX_AGE", state.DefaultMaxAge),
		envDuration("SESSION_SWEEP_INTERVAL", state.DefaultSweepInterval),
	)

	questions, err := catalog.LoadQuestions()
	if err != nil {
		log.Fatalf("Failed to load the question catalog: %v", err)
	}

	var gateway interfaces.IPlatformGateway
	discordGateway, err := platform.NewDiscordGateway(os.Getenv("DISCORD_BOT_TOKEN"))
	if err != nil {
		log.Fatalf("Discord gateway not configured: %v", err)
	}
	gateway = discordGateway

	pointsUseCase := usecase.NewPointsUseCase(pointsRepo, gateway, envInt("BAN_THRESHOLD", usecase.DefaultBanThreshold))
	orderUseCase := usecase.NewOrderUseCase(orderRepo, gateway)
	applicationUseCase := usecase.NewApplicationUseCase(sessions, submissionRepo, gateway, questions, os.Getenv("STAFF_CHANNEL_ID"))

	positions := positionNames(questions)
	commandHandler := handlers.NewCommandHandler(pointsUseCase, orderUseCase, positions)
	eventsHandler := handlers.NewEventsHandler(applicationUseCase, orderUseCase, pointsUseCase, positions)
	pointsHandler := handlers.NewPointsHandler(pointsUseCase)
	orderHandler := handlers.NewOrderHandler(orderUseCase)
	applicationHandler := handlers.NewApplicationHandler(applicationUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addClerkRoutes(v1, commandHandler, eventsHandler, pointsHandler, orderHandler, applicationHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func positionNames(questions map[string][]entities.Question) []string {
	names := make([]string, 0, len(questions))
	for name := range questions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func envDuration(key string, def time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("[config][routes] invalid duration for %s: %v, using default", key, err)
		return def
	}
	return d
}

func envInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("[config][routes] invalid integer for %s: %v, using default", key, err)
		return def
	}
	return n
}
