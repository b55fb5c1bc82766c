package reservation

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// BookingStatus is the authoritative lifecycle axis. It only ever advances
// along pending_payment → booking_processing → {confirmed | booking_failed}.
type BookingStatus string

const (
	StatusPendingPayment    BookingStatus = "pending_payment"
	StatusBookingProcessing BookingStatus = "booking_processing"
	StatusConfirmed         BookingStatus = "confirmed"
	StatusBookingFailed     BookingStatus = "booking_failed"
)

func (s BookingStatus) Terminal() bool {
	return s == StatusConfirmed || s == StatusBookingFailed
}

var statusRank = map[BookingStatus]int{
	StatusPendingPayment:    0,
	StatusBookingProcessing: 1,
	StatusConfirmed:         2,
	StatusBookingFailed:     2,
}

// CanAdvanceTo permits exactly one forward step per transition; terminal
// states accept nothing.
func (s BookingStatus) CanAdvanceTo(next BookingStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return !s.Terminal() && to == from+1
}
