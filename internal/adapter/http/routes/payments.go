package routes

import (
	"jelajahsabang/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathWebhooks = "/webhooks"
)

func addPaymentRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/:booking_id", paymentHandler.CreateIntent)
		payments.GET("/status", paymentHandler.GetStatus)
	}

	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/xendit", webhookHandler.HandleXenditCallback)
	}
}
