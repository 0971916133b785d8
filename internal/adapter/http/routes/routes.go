package routes

import (
	"context"
	"log"
	"strconv"

	_ "jelajahsabang/docs" // This will be auto-generated
	"jelajahsabang/internal/adapter/http/handlers"
	repository2 "jelajahsabang/internal/adapter/persistence/repository"
	"jelajahsabang/internal/infrastructure/database"
	"jelajahsabang/internal/infrastructure/notifications"
	"jelajahsabang/internal/infrastructure/payments"
	"jelajahsabang/internal/usecase"
	"jelajahsabang/internal/usecase/interfaces"
	"jelajahsabang/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.App) {
	ddb := database.ConnectDynamoDB(context.Background())

	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)

	var invoiceGateway interfaces.IInvoiceGateway
	xenditGateway, err := payments.NewXenditGateway(cfg.XenditSecretKey)
	if err != nil {
		log.Printf("Xendit gateway not configured: %v", err)
	} else {
		invoiceGateway = xenditGateway
	}

	var notifier interfaces.INotifier
	resendNotifier, err := notifications.NewResendNotifier(cfg.ResendAPIKey, cfg.EmailFrom)
	if err != nil {
		log.Printf("Resend notifier not configured: %v", err)
	} else {
		notifier = resendNotifier
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, bookingRepo, invoiceGateway, notifier, cfg.FrontendURL)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewWebhookHandler(paymentUseCase, cfg.XenditCallbackToken)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, paymentHandler, webhookHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
