package reservation

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStay        = errors.New("check-out must be after check-in")
	ErrNoGuests           = errors.New("guest count must be at least 1")
	ErrMissingBookHash    = errors.New("book hash is required")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrInvalidTransition  = errors.New("invalid booking status transition")
	ErrMissingSupplierRef = errors.New("supplier order reference is required")
)

// Reservation tracks one guest's booking attempt through payment and
// supplier confirmation. Stay attributes and the book hash are immutable
// after creation; only the status pair, the supplier linkage and the audit
// fields change, and booking status never regresses.
type Reservation struct {
	id                 uuid.UUID
	checkIn            time.Time
	checkOut           time.Time
	guestsCount        int
	roomType           string
	guestName          string
	guestEmail         string
	guestPhone         string
	pricePerNight      float64
	totalPrice         float64
	currency           string
	bookHash           string
	processID          string
	orderID            string
	paymentStatus      PaymentStatus
	bookingStatus      BookingStatus
	paymentRef         string
	cancellationPolicy json.RawMessage
	bookingError       string
	createdAt          time.Time
	confirmedAt        *time.Time
}

type NewReservationParams struct {
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
}

func NewReservation(p NewReservationParams, now time.Time) (*Reservation, error) {
	if !p.CheckOut.After(p.CheckIn) {
		return nil, ErrInvalidStay
	}
	if p.GuestsCount < 1 {
		return nil, ErrNoGuests
	}
	if p.BookHash == "" {
		return nil, ErrMissingBookHash
	}
	if p.TotalPrice < 0 || p.PricePerNight < 0 {
		return nil, ErrNegativePrice
	}

	return &Reservation{
		id:                 uuid.New(),
		checkIn:            p.CheckIn,
		checkOut:           p.CheckOut,
		guestsCount:        p.GuestsCount,
		roomType:           p.RoomType,
		guestName:          p.GuestName,
		guestEmail:         p.GuestEmail,
		guestPhone:         p.GuestPhone,
		pricePerNight:      p.PricePerNight,
		totalPrice:         p.TotalPrice,
		currency:           p.Currency,
		bookHash:           p.BookHash,
		paymentStatus:      PaymentPending,
		bookingStatus:      StatusPendingPayment,
		cancellationPolicy: p.CancellationPolicy,
		createdAt:          now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	checkIn, checkOut time.Time,
	guestsCount int,
	roomType, guestName, guestEmail, guestPhone string,
	pricePerNight, totalPrice float64,
	currency, bookHash, processID, orderID string,
	paymentStatus PaymentStatus,
	bookingStatus BookingStatus,
	paymentRef string,
	cancellationPolicy json.RawMessage,
	bookingError string,
	createdAt time.Time,
	confirmedAt *time.Time,
) *Reservation {
	return &Reservation{
		id:                 id,
		checkIn:            checkIn,
		checkOut:           checkOut,
		guestsCount:        guestsCount,
		roomType:           roomType,
		guestName:          guestName,
		guestEmail:         guestEmail,
		guestPhone:         guestPhone,
		pricePerNight:      pricePerNight,
		totalPrice:         totalPrice,
		currency:           currency,
		bookHash:           bookHash,
		processID:          processID,
		orderID:            orderID,
		paymentStatus:      paymentStatus,
		bookingStatus:      bookingStatus,
		paymentRef:         paymentRef,
		cancellationPolicy: cancellationPolicy,
		bookingError:       bookingError,
		createdAt:          createdAt,
		confirmedAt:        confirmedAt,
	}
}

// MarkPaymentReceived applies the payment notification: payment flips to paid
// and the booking enters processing. Any other starting state means the
// notification is a duplicate or arrived out of order.
func (r *Reservation) MarkPaymentReceived(paymentRef string) error {
	if !r.bookingStatus.CanAdvanceTo(StatusBookingProcessing) {
		return ErrInvalidTransition
	}
	if r.bookHash == "" {
		return ErrMissingBookHash
	}
	r.paymentStatus = PaymentPaid
	r.bookingStatus = StatusBookingProcessing
	r.paymentRef = paymentRef
	return nil
}

// AttachSupplierOrder records the identifiers the supplier returned while the
// booking is still in flight.
func (r *Reservation) AttachSupplierOrder(processID, orderID string) error {
	if r.bookingStatus != StatusBookingProcessing {
		return ErrInvalidTransition
	}
	if processID != "" {
		r.processID = processID
	}
	if orderID != "" {
		r.orderID = orderID
	}
	return nil
}

func (r *Reservation) Confirm(orderID string, now time.Time) error {
	if !r.bookingStatus.CanAdvanceTo(StatusConfirmed) {
		return ErrInvalidTransition
	}
	if orderID == "" && r.orderID == "" {
		return ErrMissingSupplierRef
	}
	if orderID != "" {
		r.orderID = orderID
	}
	r.bookingStatus = StatusConfirmed
	r.confirmedAt = &now
	return nil
}

func (r *Reservation) FailBooking(detail string) error {
	if !r.bookingStatus.CanAdvanceTo(StatusBookingFailed) {
		return ErrInvalidTransition
	}
	r.bookingStatus = StatusBookingFailed
	r.bookingError = detail
	return nil
}

// RefineTotalPrice applies the supplier-confirmed quote total. The only
// mutable stay attribute, and only before payment.
func (r *Reservation) RefineTotalPrice(total float64) error {
	if r.bookingStatus != StatusPendingPayment {
		return ErrInvalidTransition
	}
	if total < 0 {
		return ErrNegativePrice
	}
	r.totalPrice = total
	return nil
}

func (r *Reservation) Nights() int {
	return int(r.checkOut.Sub(r.checkIn).Hours() / 24)
}

func (r *Reservation) ID() uuid.UUID                       { return r.id }
func (r *Reservation) CheckIn() time.Time                  { return r.checkIn }
func (r *Reservation) CheckOut() time.Time                 { return r.checkOut }
func (r *Reservation) GuestsCount() int                    { return r.guestsCount }
func (r *Reservation) RoomType() string                    { return r.roomType }
func (r *Reservation) GuestName() string                   { return r.guestName }
func (r *Reservation) GuestEmail() string                  { return r.guestEmail }
func (r *Reservation) GuestPhone() string                  { return r.guestPhone }
func (r *Reservation) PricePerNight() float64              { return r.pricePerNight }
func (r *Reservation) TotalPrice() float64                 { return r.totalPrice }
func (r *Reservation) Currency() string                    { return r.currency }
func (r *Reservation) BookHash() string                    { return r.bookHash }
func (r *Reservation) ProcessID() string                   { return r.processID }
func (r *Reservation) OrderID() string                     { return r.orderID }
func (r *Reservation) PaymentStatus() PaymentStatus        { return r.paymentStatus }
func (r *Reservation) BookingStatus() BookingStatus        { return r.bookingStatus }
func (r *Reservation) PaymentRef() string                  { return r.paymentRef }
func (r *Reservation) CancellationPolicy() json.RawMessage { return r.cancellationPolicy }
func (r *Reservation) BookingError() string                { return r.bookingError }
func (r *Reservation) CreatedAt() time.Time                { return r.createdAt }
func (r *Reservation) ConfirmedAt() *time.Time             { return r.confirmedAt }
