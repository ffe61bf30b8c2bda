package routes

import (
	"log"
	"os"
	"strconv"

	_ "atelier_backoffice/docs" // This will be auto-generated
	"atelier_backoffice/internal/adapter/http/handlers"
	repository2 "atelier_backoffice/internal/adapter/persistence/repository"
	"atelier_backoffice/internal/infrastructure/database"
	"atelier_backoffice/internal/infrastructure/notifications"
	"atelier_backoffice/internal/infrastructure/payments"
	"atelier_backoffice/internal/usecase"
	"atelier_backoffice/internal/usecase/interfaces"

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

	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	repairRepo := repository2.NewRepairDynamoRepository(ddb)
	depositRepo := repository2.NewDepositDynamoRepository(ddb)
	uowFactory := repository2.NewDynamoUnitOfWorkFactory(ddb)

	var verifier interfaces.IPaymentVerifier
	mpVerifier, err := payments.NewMercadoPagoVerifier(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago verifier not configured: %v", err)
	} else {
		verifier = mpVerifier
	}

	notifier := notifications.NewWebhookDispatcherFromEnv()

	bookingUseCase := usecase.NewBookingWorkflowUseCase(bookingRepo, quoteRepo, uowFactory, verifier, notifier)
	repairUseCase := usecase.NewRepairWorkflowUseCase(repairRepo, uowFactory, notifier)
	depositUseCase := usecase.NewDepositWorkflowUseCase(depositRepo, uowFactory, notifier)
	transitionUseCase := usecase.NewTransitionUseCase(bookingUseCase, repairUseCase, depositUseCase)

	transitionHandler := handlers.NewTransitionHandler(transitionUseCase)
	queryHandler := handlers.NewQueryHandler(bookingUseCase, repairUseCase, depositUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkflowRoutes(v1, transitionHandler, queryHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
