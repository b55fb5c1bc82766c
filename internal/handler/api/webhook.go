package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const signatureHeader = "X-Webhook-Signature"

// Payment events that mean the charge went through. Anything else is
// acknowledged and ignored.
var confirmedPaymentEvents = map[string]bool{
	"payment.succeeded":          true,
	"checkout.session.completed": true,
}

// WebhookHandler receives payment provider notifications. The contract with
// the provider is acknowledge-or-retry: 401 and 400 reject the delivery, any
// accepted delivery returns 200 even when downstream processing fails, because
// the failure is recorded on the reservation and a retry would lose the
// idempotency claim anyway.
type WebhookHandler struct {
	bookingUseCase usecase.BookingUseCase
	secret         []byte
	logger         *slog.Logger
}

func NewWebhookHandler(bookingUseCase usecase.BookingUseCase, cfg config.WebhookConfig, logger *slog.Logger) *WebhookHandler {
	return &WebhookHandler{
		bookingUseCase: bookingUseCase,
		secret:         []byte(cfg.Secret),
		logger:         logger,
	}
}

type webhookPayload struct {
	Event string `json:"event"`
	Data  struct {
		ID        string `json:"id"`
		PaymentID string `json:"payment_id"`
		BookingID string `json:"booking_id"`
		Object    struct {
			ID string `json:"id"`
		} `json:"object"`
		Metadata struct {
			LocalBookingID string `json:"local_booking_id"`
		} `json:"metadata"`
	} `json:"data"`
}

// @Summary Payment webhook
// @Description Receive payment provider notifications
// @Tags payments
// @Accept json
// @Produce json
// @Param X-Webhook-Signature header string false "HMAC-SHA256 hex signature of the raw body"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /payments/webhook [post]
func (h *WebhookHandler) Receive(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return
	}

	if len(h.secret) > 0 {
		if !h.verifySignature(body, c.GetHeader(signatureHeader)) {
			h.logger.Warn("webhook signature verification failed", "client_ip", c.ClientIP())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid signature"})
			return
		}
	}

	var payload webhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed payload"})
		return
	}

	if !confirmedPaymentEvents[payload.Event] {
		h.logger.Info("ignoring webhook event", "event", payload.Event)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	rawID := payload.Data.Metadata.LocalBookingID
	if rawID == "" {
		rawID = payload.Data.BookingID
	}
	reservationID, err := uuid.Parse(rawID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid reservation id"})
		return
	}

	paymentRef := payload.Data.ID
	if paymentRef == "" {
		paymentRef = payload.Data.PaymentID
	}
	if paymentRef == "" {
		paymentRef = payload.Data.Object.ID
	}

	if err := h.bookingUseCase.HandlePaymentConfirmed(c.Request.Context(), reservationID, paymentRef); err != nil {
		// The delivery itself was valid; retrying it cannot help. Log and ack.
		if errors.Is(err, errs.ErrReservationNotFound) {
			h.logger.Warn("webhook for unknown reservation", "reservation_id", reservationID)
		} else {
			h.logger.Error("webhook processing failed",
				"reservation_id", reservationID,
				"error", err,
			)
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "accepted"})
}

func (h *WebhookHandler) verifySignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha256.New, h.secret)
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
