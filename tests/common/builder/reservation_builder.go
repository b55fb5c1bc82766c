//go:build unit || integration

package builder

import (
	"encoding/json"
	"time"

	"staybook/internal/domain/reservation"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/supplier"
)

type ReservationBuilder struct {
	CheckIn            time.Time
	CheckOut           time.Time
	GuestsCount        int
	RoomType           string
	GuestName          string
	GuestEmail         string
	GuestPhone         string
	PricePerNight      float64
	TotalPrice         float64
	Currency           string
	BookHash           string
	CancellationPolicy json.RawMessage
	CreatedAt          time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		CheckIn:       time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		CheckOut:      time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
		GuestsCount:   2,
		RoomType:      "Standard Double",
		GuestName:     "Ivan Petrov",
		GuestEmail:    "ivan.petrov@example.com",
		GuestPhone:    "+375291234567",
		PricePerNight: 120,
		TotalPrice:    240,
		Currency:      "BYN",
		BookHash:      "h-abc123",
		CreatedAt:     time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

func (r *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	return reservation.NewReservation(reservation.NewReservationParams{
		CheckIn:            r.CheckIn,
		CheckOut:           r.CheckOut,
		GuestsCount:        r.GuestsCount,
		RoomType:           r.RoomType,
		GuestName:          r.GuestName,
		GuestEmail:         r.GuestEmail,
		GuestPhone:         r.GuestPhone,
		PricePerNight:      r.PricePerNight,
		TotalPrice:         r.TotalPrice,
		Currency:           r.Currency,
		BookHash:           r.BookHash,
		CancellationPolicy: r.CancellationPolicy,
	}, r.CreatedAt)
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		BookHash:    r.BookHash,
		CheckIn:     r.CheckIn.Format("2006-01-02"),
		CheckOut:    r.CheckOut.Format("2006-01-02"),
		GuestsCount: r.GuestsCount,
		RoomType:    r.RoomType,
		GuestName:   r.GuestName,
		GuestEmail:  r.GuestEmail,
		GuestPhone:  r.GuestPhone,
		Currency:    r.Currency,
	}
}

func (r *ReservationBuilder) BuildQuote() *supplier.RateQuote {
	return &supplier.RateQuote{
		BookHash: r.BookHash,
		Price:    r.TotalPrice,
		Currency: r.Currency,
		Daily: []supplier.DailyPrice{
			{Date: r.CheckIn.Format("2006-01-02"), Price: r.PricePerNight},
			{Date: r.CheckIn.AddDate(0, 0, 1).Format("2006-01-02"), Price: r.PricePerNight},
		},
		CancellationPolicy: r.CancellationPolicy,
	}
}
