package response

// WebhookAckResponse acknowledges a gateway callback. The gateway retries on
// anything but 2xx, so even no-action deliveries answer with success=true.
type WebhookAckResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
