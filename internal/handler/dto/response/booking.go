package response

import (
	"encoding/json"
	"time"

	"staybook/internal/domain/reservation"
	"staybook/internal/supplier"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID                 uuid.UUID       `json:"id"`
	CheckIn            string          `json:"checkin"`
	CheckOut           string          `json:"checkout"`
	GuestsCount        int             `json:"guestsCount"`
	RoomType           string          `json:"roomType,omitempty"`
	GuestName          string          `json:"guestName,omitempty"`
	GuestEmail         string          `json:"guestEmail,omitempty"`
	GuestPhone         string          `json:"guestPhone,omitempty"`
	PricePerNight      float64         `json:"pricePerNight"`
	TotalPrice         float64         `json:"totalPrice"`
	Currency           string          `json:"currency"`
	SupplierOrderID    string          `json:"supplierOrderId,omitempty"`
	PaymentStatus      string          `json:"paymentStatus"`
	BookingStatus      string          `json:"bookingStatus"`
	CancellationPolicy json.RawMessage `json:"cancellationPolicy,omitempty"`
	BookingError       string          `json:"bookingError,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
	ConfirmedAt        *time.Time      `json:"confirmedAt,omitempty"`
}

func FromReservation(res *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:                 res.ID(),
		CheckIn:            res.CheckIn().Format("2006-01-02"),
		CheckOut:           res.CheckOut().Format("2006-01-02"),
		GuestsCount:        res.GuestsCount(),
		RoomType:           res.RoomType(),
		GuestName:          res.GuestName(),
		GuestEmail:         res.GuestEmail(),
		GuestPhone:         res.GuestPhone(),
		PricePerNight:      res.PricePerNight(),
		TotalPrice:         res.TotalPrice(),
		Currency:           res.Currency(),
		SupplierOrderID:    res.OrderID(),
		PaymentStatus:      string(res.PaymentStatus()),
		BookingStatus:      string(res.BookingStatus()),
		CancellationPolicy: res.CancellationPolicy(),
		BookingError:       res.BookingError(),
		CreatedAt:          res.CreatedAt(),
		ConfirmedAt:        res.ConfirmedAt(),
	}
}

type QuoteResponse struct {
	BookHash           string                `json:"bookHash"`
	Price              float64               `json:"price"`
	Currency           string                `json:"currency"`
	Daily              []supplier.DailyPrice `json:"daily,omitempty"`
	CancellationPolicy json.RawMessage       `json:"cancellationPolicy,omitempty"`
}

func FromQuote(quote *supplier.RateQuote) (*QuoteResponse, error) {
	var resp QuoteResponse
	if err := copier.Copy(&resp, quote); err != nil {
		return nil, err
	}
	return &resp, nil
}

type CreateBookingResponse struct {
	Reservation *ReservationResponse `json:"reservation"`
	Quote       *QuoteResponse       `json:"quote,omitempty"`
}
