package api

import (
	"errors"
	"net/http"

	reqdto "staybook/internal/handler/dto/request"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/pkg/errs"
	"staybook/internal/supplier"
	"staybook/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewBookingHandler(bookingUseCase usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Create booking
// @Description Re-quote a rate and create a reservation awaiting payment
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	res, quote, err := h.bookingUseCase.CreateBooking(c.Request.Context(), req)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}

	quoteResp, copyErr := resdto.FromQuote(quote)
	if copyErr != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, copyErr, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		Reservation: resdto.FromReservation(res),
		Quote:       quoteResp,
	})
}

// @Summary Get reservation
// @Tags bookings
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID", nil)
		return
	}

	res, err := h.bookingUseCase.GetReservation(c.Request.Context(), id)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Reconcile reservation
// @Description Poll the supplier for an in-flight booking and persist the outcome
// @Tags bookings
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /bookings/{id}/reconcile [post]
func (h *BookingHandler) Reconcile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation ID", nil)
		return
	}

	res, err := h.bookingUseCase.Reconcile(c.Request.Context(), id)
	if err != nil {
		abortWithBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func abortWithBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errors.Is(err, errs.ErrNoSupplierReference):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation has no supplier reference to poll", nil)
	case errors.Is(err, errs.ErrDomainValidation), supplier.IsKind(err, supplier.KindValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking request", nil)
	case errors.Is(err, errs.ErrSupplierCallFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, "Supplier is unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
