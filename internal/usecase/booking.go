package usecase

import (
	"context"
	"log/slog"
	"time"

	"staybook/internal/domain/reservation"
	reqdto "staybook/internal/handler/dto/request"
	"staybook/internal/infra"
	"staybook/internal/pkg/clock"
	"staybook/internal/pkg/errs"
	"staybook/internal/supplier"

	"github.com/google/uuid"
)

// SupplierGateway is the slice of supplier capabilities the booking lifecycle
// needs.
type SupplierGateway interface {
	Prebook(ctx context.Context, params supplier.PrebookParams) (*supplier.RateQuote, error)
	StartBooking(ctx context.Context, params supplier.BookingParams) (*supplier.BookingOutcome, error)
	PollFinish(ctx context.Context, processOrOrderID string) (*supplier.FinishStatus, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ClaimForBooking(ctx context.Context, id uuid.UUID, paymentRef string) (bool, error)
	RecordSupplierOrder(ctx context.Context, id uuid.UUID, processID, orderID string) error
	MarkConfirmed(ctx context.Context, id uuid.UUID, processID, orderID string, confirmedAt time.Time) (bool, error)
	MarkFailed(ctx context.Context, id uuid.UUID, detail string) (bool, error)
	FindStuckProcessing(ctx context.Context, olderThan time.Time, limit int32) ([]*reservation.Reservation, error)
}

type BookingUseCase interface {
	CreateBooking(ctx context.Context, req reqdto.CreateBookingRequest) (*reservation.Reservation, *supplier.RateQuote, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	HandlePaymentConfirmed(ctx context.Context, id uuid.UUID, paymentRef string) error
	Reconcile(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	ReconcileStale(ctx context.Context, olderThan time.Duration, limit int32) (int, error)
}

type bookingUseCaseImpl struct {
	repo    ReservationRepository
	gateway SupplierGateway
	clock   clock.Clock
	logger  *slog.Logger
}

func NewBookingUseCase(
	repo ReservationRepository,
	gateway SupplierGateway,
	clock clock.Clock,
	logger *slog.Logger,
) BookingUseCase {
	return &bookingUseCaseImpl{
		repo:    repo,
		gateway: gateway,
		clock:   clock,
		logger:  logger,
	}
}

// CreateBooking re-quotes the rate and persists a pending_payment reservation
// carrying the supplier-confirmed price. Payment happens out of band; the
// reservation waits for the webhook.
func (b *bookingUseCaseImpl) CreateBooking(
	ctx context.Context,
	req reqdto.CreateBookingRequest,
) (*reservation.Reservation, *supplier.RateQuote, error) {
	quote, err := b.gateway.Prebook(ctx, supplier.PrebookParams{
		BookHash: req.BookHash,
		Currency: req.Currency,
	})
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrSupplierCallFailed)
	}

	checkIn, checkOut, err := req.StayDates()
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	params := req.ToDomain(checkIn, checkOut)
	params.BookHash = quote.BookHash
	params.TotalPrice = quote.Price
	params.PricePerNight = perNightPrice(quote, checkIn, checkOut)
	params.CancellationPolicy = quote.CancellationPolicy
	if quote.Currency != "" {
		params.Currency = quote.Currency
	}

	res, err := reservation.NewReservation(params, b.clock.Now())
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := b.repo.Create(ctx, res); err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	b.logger.Info("reservation created",
		"reservation_id", res.ID(),
		"total_price", res.TotalPrice(),
		"currency", res.Currency(),
	)
	return res, quote, nil
}

// perNightPrice prefers the supplier's daily breakdown; without one the quote
// total is spread evenly over the stay.
func perNightPrice(quote *supplier.RateQuote, checkIn, checkOut time.Time) float64 {
	if len(quote.Daily) > 0 {
		return quote.Daily[0].Price
	}
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}
	return quote.Price / float64(nights)
}

func (b *bookingUseCaseImpl) GetReservation(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := b.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return res, nil
}

// HandlePaymentConfirmed runs the post-payment leg of the lifecycle. The
// conditional claim makes the whole method idempotent: a duplicate or late
// notification loses the claim and is acknowledged without side effects.
// Supplier failures after a won claim never bubble up as errors; the
// reservation is marked failed (or left in processing for reconciliation) and
// the notification is still considered handled.
func (b *bookingUseCaseImpl) HandlePaymentConfirmed(ctx context.Context, id uuid.UUID, paymentRef string) error {
	res, err := b.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, errs.ErrReservationNotFound)
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	claimed, err := b.repo.ClaimForBooking(ctx, id, paymentRef)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !claimed {
		b.logger.Info("ignoring duplicate payment notification",
			"reservation_id", id,
			"booking_status", res.BookingStatus(),
		)
		return nil
	}

	if res.BookHash() == "" {
		b.failBooking(ctx, id, "reservation has no book hash")
		return nil
	}

	outcome, err := b.gateway.StartBooking(ctx, supplier.BookingParams{
		BookHash:   res.BookHash(),
		GuestName:  res.GuestName(),
		GuestEmail: res.GuestEmail(),
		GuestPhone: res.GuestPhone(),
		Guests:     []supplier.Guest{{Adults: res.GuestsCount()}},
		Payment: &supplier.PaymentInfo{
			Method:            "external",
			ExternalPaymentID: paymentRef,
		},
	})
	if err != nil {
		b.logger.Error("supplier booking failed",
			"reservation_id", id,
			"error", err,
		)
		b.failBooking(ctx, id, err.Error())
		return nil
	}

	switch {
	case outcome.Status.Succeeded():
		if _, err := b.repo.MarkConfirmed(ctx, id, outcome.ProcessID, outcome.OrderID, b.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		b.logger.Info("reservation confirmed",
			"reservation_id", id,
			"order_id", outcome.OrderID,
		)
	case outcome.Status.Failed():
		b.failBooking(ctx, id, "supplier rejected the booking: "+string(outcome.Status))
	default:
		// In flight: keep the identifiers so reconciliation can poll.
		if err := b.repo.RecordSupplierOrder(ctx, id, outcome.ProcessID, outcome.OrderID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		b.logger.Info("reservation awaiting supplier confirmation",
			"reservation_id", id,
			"process_id", outcome.ProcessID,
			"order_id", outcome.OrderID,
		)
	}
	return nil
}

func (b *bookingUseCaseImpl) failBooking(ctx context.Context, id uuid.UUID, detail string) {
	if _, err := b.repo.MarkFailed(ctx, id, detail); err != nil {
		b.logger.Error("failed to mark reservation failed",
			"reservation_id", id,
			"error", err,
		)
	}
}

// Reconcile polls the supplier for one in-flight reservation and persists a
// terminal status when the supplier reports one. Reservations in any other
// state are returned as-is.
func (b *bookingUseCaseImpl) Reconcile(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, err := b.GetReservation(ctx, id)
	if err != nil {
		return nil, err
	}
	if res.BookingStatus() != reservation.StatusBookingProcessing {
		return res, nil
	}

	ref := res.OrderID()
	if ref == "" {
		ref = res.ProcessID()
	}
	if ref == "" {
		return nil, errs.ErrNoSupplierReference
	}

	status, err := b.gateway.PollFinish(ctx, ref)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSupplierCallFailed)
	}

	switch {
	case status.Status.Succeeded():
		if _, err := b.repo.MarkConfirmed(ctx, id, "", status.OrderID, b.clock.Now()); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	case status.Status.Failed():
		if _, err := b.repo.MarkFailed(ctx, id, "supplier reported booking failure: "+string(status.Status)); err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	default:
		return res, nil
	}

	return b.GetReservation(ctx, id)
}

// ReconcileStale sweeps reservations stuck in booking_processing. Individual
// poll failures are logged and skipped so one bad row never blocks the sweep.
func (b *bookingUseCaseImpl) ReconcileStale(ctx context.Context, olderThan time.Duration, limit int32) (int, error) {
	cutoff := b.clock.Now().Add(-olderThan)
	stuck, err := b.repo.FindStuckProcessing(ctx, cutoff, limit)
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	resolved := 0
	for _, res := range stuck {
		updated, err := b.Reconcile(ctx, res.ID())
		if err != nil {
			b.logger.Warn("reconcile sweep skipped reservation",
				"reservation_id", res.ID(),
				"error", err,
			)
			continue
		}
		if updated.BookingStatus().Terminal() {
			resolved++
		}
	}
	return resolved, nil
}
