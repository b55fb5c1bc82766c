package request

import (
	"time"

	"staybook/internal/domain/reservation"
)

const stayDateLayout = "2006-01-02"

type CreateBookingRequest struct {
	BookHash    string `json:"book_hash" binding:"required"`
	CheckIn     string `json:"checkin" binding:"required,datetime=2006-01-02"`
	CheckOut    string `json:"checkout" binding:"required,datetime=2006-01-02"`
	GuestsCount int    `json:"guests_count" binding:"required,min=1"`
	RoomType    string `json:"room_type,omitempty"`
	GuestName   string `json:"guest_name" binding:"required"`
	GuestEmail  string `json:"guest_email" binding:"required,email"`
	GuestPhone  string `json:"guest_phone,omitempty"`
	Currency    string `json:"currency,omitempty" binding:"omitempty,len=3"`
}

// StayDates parses the bound date strings. Binding already guarantees the
// layout, so errors here only occur for impossible calendar dates.
func (r CreateBookingRequest) StayDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(stayDateLayout, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = time.Parse(stayDateLayout, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

func (r CreateBookingRequest) ToDomain(checkIn, checkOut time.Time) reservation.NewReservationParams {
	return reservation.NewReservationParams{
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		GuestsCount: r.GuestsCount,
		RoomType:    r.RoomType,
		GuestName:   r.GuestName,
		GuestEmail:  r.GuestEmail,
		GuestPhone:  r.GuestPhone,
		Currency:    r.Currency,
		BookHash:    r.BookHash,
	}
}
