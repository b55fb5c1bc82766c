//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"staybook/internal/handler/api"
	"staybook/internal/pkg/errs"
	"staybook/tests/common/builder"
	usecasemock "staybook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBooking *usecasemock.MockBookingUseCase
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBooking = usecasemock.NewMockBookingUseCase(s.mockCtrl)
	handler := api.NewBookingHandler(s.mockBooking)

	s.router.POST("/bookings", handler.Create)
	s.router.GET("/bookings/:id", handler.Get)
	s.router.POST("/bookings/:id/reconcile", handler.Reconcile)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) postJSON(url string, payload any) *httptest.ResponseRecorder {
	body, err := json.Marshal(payload)
	s.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *BookingHandlerTestSuite) TestCreate() {
	b := builder.NewReservationBuilder()
	req := b.BuildCreateRequestDTO()
	res, err := b.BuildDomain()
	s.Require().NoError(err)
	quote := b.BuildQuote()

	s.mockBooking.EXPECT().
		CreateBooking(gomock.Any(), req).
		Return(res, quote, nil)

	w := s.postJSON("/bookings", req)
	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), res.ID().String())
	s.Contains(w.Body.String(), `"bookingStatus":"pending_payment"`)
	s.Contains(w.Body.String(), `"bookHash":"h-abc123"`)
}

func (s *BookingHandlerTestSuite) TestCreateInvalidBody() {
	req := builder.NewReservationBuilder().BuildCreateRequestDTO()
	req.GuestEmail = "not-an-email"

	w := s.postJSON("/bookings", req)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerTestSuite) TestCreateSupplierDown() {
	req := builder.NewReservationBuilder().BuildCreateRequestDTO()

	s.mockBooking.EXPECT().
		CreateBooking(gomock.Any(), req).
		Return(nil, nil, errs.Mark(errors.New("boom"), errs.ErrSupplierCallFailed))

	w := s.postJSON("/bookings", req)
	s.Equal(http.StatusBadGateway, w.Code)
}

func (s *BookingHandlerTestSuite) TestGet() {
	res, err := builder.NewReservationBuilder().BuildDomain()
	s.Require().NoError(err)

	s.mockBooking.EXPECT().
		GetReservation(gomock.Any(), res.ID()).
		Return(res, nil)

	req := httptest.NewRequest(http.MethodGet, "/bookings/"+res.ID().String(), nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), res.ID().String())
}

func (s *BookingHandlerTestSuite) TestGetNotFound() {
	id := uuid.New()

	s.mockBooking.EXPECT().
		GetReservation(gomock.Any(), id).
		Return(nil, errs.Mark(errors.New("no rows"), errs.ErrReservationNotFound))

	req := httptest.NewRequest(http.MethodGet, "/bookings/"+id.String(), nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusNotFound, w.Code)
}

func (s *BookingHandlerTestSuite) TestGetInvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/bookings/not-a-uuid", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *BookingHandlerTestSuite) TestReconcile() {
	res, err := builder.NewReservationBuilder().BuildDomain()
	s.Require().NoError(err)

	s.mockBooking.EXPECT().
		Reconcile(gomock.Any(), res.ID()).
		Return(res, nil)

	w := s.postJSON("/bookings/"+res.ID().String()+"/reconcile", nil)
	s.Equal(http.StatusOK, w.Code)
}

func (s *BookingHandlerTestSuite) TestReconcileWithoutReference() {
	id := uuid.New()

	s.mockBooking.EXPECT().
		Reconcile(gomock.Any(), id).
		Return(nil, errs.ErrNoSupplierReference)

	w := s.postJSON("/bookings/"+id.String()+"/reconcile", nil)
	s.Equal(http.StatusConflict, w.Code)
}
