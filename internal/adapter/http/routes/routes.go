package routes

import (
	"log"
	"os"
	"strconv"

	_ "electripro/docs" // This will be auto-generated
	"electripro/internal/adapter/http/handlers"
	"electripro/internal/adapter/persistence/repository"
	"electripro/internal/infrastructure/database"
	"electripro/internal/usecase"
	"electripro/internal/usecase/interfaces"

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
	estimateRepo := newEstimateRepository()
	sessionStore := repository.NewSessionMemoryStore()

	estimateUseCase := usecase.NewEstimateUseCase(estimateRepo)
	authUseCase := usecase.NewAuthUseCase(sessionStore)

	estimateHandler := handlers.NewEstimateHandler(estimateUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Everything past sign-in requires a session.
	session := v1.Group("")
	session.Use(handlers.SessionAuth(authUseCase))
	addEstimateRoutes(session, estimateHandler)
}

// newEstimateRepository selects the persistence backend. The in-memory store
// is the default; DynamoDB is opted into via ESTIMATES_BACKEND=dynamodb.
func newEstimateRepository() interfaces.IEstimateRepository {
	switch os.Getenv("ESTIMATES_BACKEND") {
	case "dynamodb":
		log.Printf("[estimates][routes] using dynamodb backend")
		return repository.NewEstimateDynamoRepository(database.ConnectDynamoDB())
	default:
		log.Printf("[estimates][routes] using in-memory backend")
		return repository.NewEstimateMemoryRepository()
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
