package handlers

import (
	"log"
	"net/http"

	request "jelajahsabang/internal/adapter/http/dto/request"
	response "jelajahsabang/internal/adapter/http/dto/response"
	"jelajahsabang/internal/usecase"
	"jelajahsabang/internal/usecase/interfaces"
	"jelajahsabang/pkg"

	"github.com/gin-gonic/gin"
)

const callbackTokenHeader = "X-Callback-Token"

// WebhookHandler receives invoice callbacks from Xendit.
//
// The callback credential is checked before anything else; a bad token is
// rejected with no reads or writes.

type WebhookHandler struct {
	usecase       usecase.IPaymentUseCase
	callbackToken string
}

func NewWebhookHandler(uc usecase.IPaymentUseCase, callbackToken string) *WebhookHandler {
	return &WebhookHandler{usecase: uc, callbackToken: callbackToken}
}

func (h *WebhookHandler) HandleXenditCallback(c *gin.Context) {
	token := c.GetHeader(callbackTokenHeader)
	if h.callbackToken == "" || token != h.callbackToken {
		log.Printf("[webhook][handler] invalid callback token")
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid callback token", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.XenditCallbackRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[webhook][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	event := usecase.CallbackEvent{
		EventType: payload.EventType,
		Invoice: interfaces.InvoiceView{
			InvoiceID:       payload.Data.ID,
			Status:          payload.Data.Status,
			PaymentMethod:   payload.Data.PaymentMethod,
			XenditPaymentID: payload.Data.PaymentID,
			PaidAt:          payload.Data.PaidAt,
		},
	}

	if err := h.usecase.HandleCallback(c.Request.Context(), event); err != nil {
		// Non-2xx makes the gateway redeliver, which the terminal-state
		// guard makes safe.
		log.Printf("[webhook][handler] callback processing failed event_type=%s invoice_id=%s err=%v", payload.EventType, payload.Data.ID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WebhookAckResponse{Success: true, Message: "event received"})
}
