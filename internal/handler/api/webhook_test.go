//go:build unit

package api_test

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"staybook/internal/handler/api"
	"staybook/internal/pkg/config"
	"staybook/internal/pkg/errs"
	usecasemock "staybook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const webhookSecret = "testsecret"

type WebhookHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBooking *usecasemock.MockBookingUseCase
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = usecasemock.NewMockBookingUseCase(s.mockCtrl)

	handler := api.NewWebhookHandler(
		s.mockBooking,
		config.WebhookConfig{Secret: webhookSecret},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	s.router.POST("/payments/webhook", handler.Receive)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *WebhookHandlerTestSuite) deliver(body []byte, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if signature != "" {
		req.Header.Set("X-Webhook-Signature", signature)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func paymentEvent(event, bookingID, paymentID string) []byte {
	return []byte(fmt.Sprintf(
		`{"event": %q, "data": {"id": %q, "metadata": {"local_booking_id": %q}}}`,
		event, paymentID, bookingID,
	))
}

func (s *WebhookHandlerTestSuite) TestValidDeliveryTriggersBooking() {
	id := uuid.New()
	body := paymentEvent("payment.succeeded", id.String(), "pay_123")

	s.mockBooking.EXPECT().
		HandlePaymentConfirmed(gomock.Any(), id, "pay_123").
		Return(nil)

	w := s.deliver(body, sign(webhookSecret, body))
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "accepted")
}

func (s *WebhookHandlerTestSuite) TestCheckoutSessionEventIsAccepted() {
	id := uuid.New()
	body := paymentEvent("checkout.session.completed", id.String(), "cs_456")

	s.mockBooking.EXPECT().
		HandlePaymentConfirmed(gomock.Any(), id, "cs_456").
		Return(nil)

	w := s.deliver(body, sign(webhookSecret, body))
	s.Equal(http.StatusOK, w.Code)
}

func (s *WebhookHandlerTestSuite) TestInvalidSignatureRejected() {
	body := paymentEvent("payment.succeeded", uuid.New().String(), "pay_123")

	w := s.deliver(body, "deadbeef")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *WebhookHandlerTestSuite) TestMissingSignatureRejected() {
	body := paymentEvent("payment.succeeded", uuid.New().String(), "pay_123")

	w := s.deliver(body, "")
	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *WebhookHandlerTestSuite) TestMalformedPayloadRejected() {
	body := []byte(`{"event": "payment.succeeded", "data"`)

	w := s.deliver(body, sign(webhookSecret, body))
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *WebhookHandlerTestSuite) TestUnknownEventIgnored() {
	body := paymentEvent("payment.refunded", uuid.New().String(), "pay_123")

	w := s.deliver(body, sign(webhookSecret, body))
	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), "ignored")
}

func (s *WebhookHandlerTestSuite) TestMissingReservationIDRejected() {
	body := []byte(`{"event": "payment.succeeded", "data": {"id": "pay_123"}}`)

	w := s.deliver(body, sign(webhookSecret, body))
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *WebhookHandlerTestSuite) TestBookingIDFallback() {
	id := uuid.New()
	body := []byte(fmt.Sprintf(
		`{"event": "payment.succeeded", "data": {"payment_id": "pay_789", "booking_id": %q}}`,
		id.String(),
	))

	s.mockBooking.EXPECT().
		HandlePaymentConfirmed(gomock.Any(), id, "pay_789").
		Return(nil)

	w := s.deliver(body, sign(webhookSecret, body))
	s.Equal(http.StatusOK, w.Code)
}

func (s *WebhookHandlerTestSuite) TestDownstreamFailureStillAcked() {
	id := uuid.New()
	body := paymentEvent("payment.succeeded", id.String(), "pay_123")

	s.mockBooking.EXPECT().
		HandlePaymentConfirmed(gomock.Any(), id, "pay_123").
		Return(errors.New("database down"))

	w := s.deliver(body, sign(webhookSecret, body))
	s.Equal(http.StatusOK, w.Code)
}

func (s *WebhookHandlerTestSuite) TestUnknownReservationStillAcked() {
	id := uuid.New()
	body := paymentEvent("payment.succeeded", id.String(), "pay_123")

	s.mockBooking.EXPECT().
		HandlePaymentConfirmed(gomock.Any(), id, "pay_123").
		Return(errs.ErrReservationNotFound)

	w := s.deliver(body, sign(webhookSecret, body))
	s.Equal(http.StatusOK, w.Code)
}

func TestWebhookWithoutSecretSkipsVerification(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockBooking := usecasemock.NewMockBookingUseCase(ctrl)
	handler := api.NewWebhookHandler(
		mockBooking,
		config.WebhookConfig{},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	router := gin.New()
	router.POST("/payments/webhook", handler.Receive)

	id := uuid.New()
	body := paymentEvent("payment.succeeded", id.String(), "pay_123")
	mockBooking.EXPECT().HandlePaymentConfirmed(gomock.Any(), id, "pay_123").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/payments/webhook", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
