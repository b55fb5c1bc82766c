package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"staybook/internal/domain/reservation"
	"staybook/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReservationRepository is the keyed record store for reservations: get by
// id, insert, and conditional single-row updates. The conditional updates are
// the only cross-process synchronization point in the system — each guarded
// UPDATE is evaluated against the current row, so two concurrent payment
// notifications for the same id resolve to exactly one winner.
type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

const reservationColumns = `
	id, check_in, check_out, guests_count, room_type,
	guest_name, guest_email, guest_phone,
	price_per_night, total_price, currency,
	book_hash, supplier_process_id, supplier_order_id,
	payment_status, booking_status, payment_ref,
	cancellation_policy, booking_error, created_at, confirmed_at`

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reservations (
			id, check_in, check_out, guests_count, room_type,
			guest_name, guest_email, guest_phone,
			price_per_night, total_price, currency,
			book_hash, payment_status, booking_status,
			cancellation_policy, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		res.ID(), res.CheckIn(), res.CheckOut(), res.GuestsCount(), nullable(res.RoomType()),
		nullable(res.GuestName()), nullable(res.GuestEmail()), nullable(res.GuestPhone()),
		res.PricePerNight(), res.TotalPrice(), res.Currency(),
		res.BookHash(), string(res.PaymentStatus()), string(res.BookingStatus()),
		policyValue(res.CancellationPolicy()), res.CreatedAt(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return infra.WrapRepoErr("reservation already exists", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)

	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return res, nil
}

// ClaimForBooking is the idempotency guard for payment notifications: the
// pending_payment → paid/booking_processing step succeeds for exactly one
// caller per reservation. It reports whether this call won the claim.
func (r *ReservationRepository) ClaimForBooking(ctx context.Context, id uuid.UUID, paymentRef string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET payment_status = $2, booking_status = $3, payment_ref = $4
		WHERE id = $1 AND booking_status = $5`,
		id,
		string(reservation.PaymentPaid), string(reservation.StatusBookingProcessing),
		nullable(paymentRef), string(reservation.StatusPendingPayment),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim reservation for booking", err)
	}
	return tag.RowsAffected() > 0, nil
}

// RecordSupplierOrder attaches process/order identifiers while the booking
// stays in flight.
func (r *ReservationRepository) RecordSupplierOrder(ctx context.Context, id uuid.UUID, processID, orderID string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET supplier_process_id = COALESCE(NULLIF($2, ''), supplier_process_id),
		    supplier_order_id   = COALESCE(NULLIF($3, ''), supplier_order_id)
		WHERE id = $1 AND booking_status = $4`,
		id, processID, orderID, string(reservation.StatusBookingProcessing),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to record supplier order", err)
	}
	return nil
}

// MarkConfirmed advances booking_processing → confirmed in one conditional
// write; it reports false when the row was not in booking_processing.
func (r *ReservationRepository) MarkConfirmed(ctx context.Context, id uuid.UUID, processID, orderID string, confirmedAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET booking_status      = $2,
		    supplier_process_id = COALESCE(NULLIF($3, ''), supplier_process_id),
		    supplier_order_id   = COALESCE(NULLIF($4, ''), supplier_order_id),
		    confirmed_at        = $5
		WHERE id = $1 AND booking_status = $6`,
		id, string(reservation.StatusConfirmed), processID, orderID, confirmedAt,
		string(reservation.StatusBookingProcessing),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to confirm reservation", err)
	}
	return tag.RowsAffected() > 0, nil
}

// MarkFailed advances booking_processing → booking_failed with the error
// detail attached for operator follow-up.
func (r *ReservationRepository) MarkFailed(ctx context.Context, id uuid.UUID, detail string) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET booking_status = $2, booking_error = $3
		WHERE id = $1 AND booking_status = $4`,
		id, string(reservation.StatusBookingFailed), detail,
		string(reservation.StatusBookingProcessing),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to mark reservation failed", err)
	}
	return tag.RowsAffected() > 0, nil
}

// FindStuckProcessing lists reservations awaiting poll reconciliation.
func (r *ReservationRepository) FindStuckProcessing(ctx context.Context, olderThan time.Time, limit int32) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE booking_status = $1 AND created_at < $2
		ORDER BY created_at
		LIMIT $3`,
		string(reservation.StatusBookingProcessing), olderThan, limit,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list processing reservations", err)
	}
	defer rows.Close()

	var result []*reservation.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*reservation.Reservation, error) {
	var (
		id                              uuid.UUID
		checkIn, checkOut, createdAt    time.Time
		guestsCount                     int
		roomType, gName, gEmail, gPhone *string
		pricePerNight, totalPrice       float64
		currency, bookHash              string
		processID, orderID              *string
		paymentStatus, bookingStatus    string
		paymentRef, bookingError        *string
		cancellationPolicy              []byte
		confirmedAt                     *time.Time
	)

	err := row.Scan(
		&id, &checkIn, &checkOut, &guestsCount, &roomType,
		&gName, &gEmail, &gPhone,
		&pricePerNight, &totalPrice, &currency,
		&bookHash, &processID, &orderID,
		&paymentStatus, &bookingStatus, &paymentRef,
		&cancellationPolicy, &bookingError, &createdAt, &confirmedAt,
	)
	if err != nil {
		return nil, err
	}

	return reservation.Reconstruct(
		id, checkIn, checkOut, guestsCount,
		deref(roomType), deref(gName), deref(gEmail), deref(gPhone),
		pricePerNight, totalPrice,
		currency, bookHash, deref(processID), deref(orderID),
		reservation.PaymentStatus(paymentStatus),
		reservation.BookingStatus(bookingStatus),
		deref(paymentRef),
		json.RawMessage(cancellationPolicy),
		deref(bookingError),
		createdAt, confirmedAt,
	), nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func policyValue(policy json.RawMessage) any {
	if len(policy) == 0 {
		return nil
	}
	return []byte(policy)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
