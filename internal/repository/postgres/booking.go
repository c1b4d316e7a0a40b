package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/coursebill/coursebill/internal/domain/booking"
	ierr "github.com/coursebill/coursebill/internal/errors"
	"github.com/coursebill/coursebill/internal/logger"
	"github.com/coursebill/coursebill/internal/postgres"
	"github.com/coursebill/coursebill/internal/types"
	"github.com/cockroachdb/errors"
)

type bookingRepository struct {
	db     postgres.IClient
	logger *logger.Logger
}

func NewBookingRepository(db postgres.IClient, logger *logger.Logger) booking.Repository {
	return &bookingRepository{db: db, logger: logger}
}

func (r *bookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	query := `
	INSERT INTO bookings (
		id, tenant_id, offer_id, offer_type, customer_name, customer_email,
		start_date, booking_status, price_at_booking, monthly_amount, first_month_amount,
		currency, invoice_number, invoice_date, cancellation_number, cancellation_date,
		cancel_reason, storno_number, storno_date, storno_amount,
		status, created_at, updated_at, created_by, updated_by
	) VALUES (
		:id, :tenant_id, :offer_id, :offer_type, :customer_name, :customer_email,
		:start_date, :booking_status, :price_at_booking, :monthly_amount, :first_month_amount,
		:currency, :invoice_number, :invoice_date, :cancellation_number, :cancellation_date,
		:cancel_reason, :storno_number, :storno_date, :storno_amount,
		:status, :created_at, :updated_at, :created_by, :updated_by
	)`

	if _, err := r.db.NamedExecContext(ctx, query, b); err != nil {
		return ierr.WithError(err).
			WithHint("failed to create booking").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*booking.Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1 AND tenant_id = $2 AND status != $3`

	var b booking.Booking
	err := r.db.GetQuerier(ctx).GetContext(ctx, &b, query, id, types.GetTenantID(ctx), types.StatusDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ierr.NewError("booking not found").
				WithHintf("booking %s does not exist", id).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("failed to get booking").
			Mark(ierr.ErrDatabase)
	}
	return &b, nil
}

func (r *bookingRepository) List(ctx context.Context, filter booking.Filter) ([]*booking.Booking, error) {
	query := `SELECT * FROM bookings WHERE tenant_id = $1 AND status != $2`
	args := []interface{}{types.GetTenantID(ctx), types.StatusDeleted}

	if filter.Year != 0 {
		// billing-relevant to the year: a document dated in it, or a booking
		// running during it. Mirrors booking.Filter.Matches.
		yearStart := time.Date(filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		yearEnd := yearStart.AddDate(1, 0, 0)
		ys, ye := len(args)+1, len(args)+2
		query += fmt.Sprintf(` AND (
			(invoice_date >= $%[1]d AND invoice_date < $%[2]d) OR
			(storno_date >= $%[1]d AND storno_date < $%[2]d) OR
			(cancellation_date >= $%[1]d AND cancellation_date < $%[2]d) OR
			(start_date < $%[2]d AND (
				booking_status = 'active' OR
				cancellation_date >= $%[1]d OR
				storno_date >= $%[1]d
			))
		)`, ys, ye)
		args = append(args, yearStart, yearEnd)
	}
	if filter.BookingStatus != "" {
		query += fmt.Sprintf(" AND booking_status = $%d", len(args)+1)
		args = append(args, filter.BookingStatus)
	}
	if filter.OfferID != "" {
		query += fmt.Sprintf(" AND offer_id = $%d", len(args)+1)
		args = append(args, filter.OfferID)
	}
	query += " ORDER BY created_at DESC"

	bookings := make([]*booking.Booking, 0)
	if err := r.db.GetQuerier(ctx).SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, ierr.WithError(err).
			WithHint("failed to list bookings").
			Mark(ierr.ErrDatabase)
	}
	return bookings, nil
}

func (r *bookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	query := `
	UPDATE bookings SET
		booking_status = :booking_status, price_at_booking = :price_at_booking,
		monthly_amount = :monthly_amount, first_month_amount = :first_month_amount,
		invoice_number = :invoice_number, invoice_date = :invoice_date,
		cancellation_number = :cancellation_number, cancellation_date = :cancellation_date,
		cancel_reason = :cancel_reason, storno_number = :storno_number,
		storno_date = :storno_date, storno_amount = :storno_amount,
		status = :status, updated_at = :updated_at, updated_by = :updated_by
	WHERE id = :id AND tenant_id = :tenant_id`

	if _, err := r.db.NamedExecContext(ctx, query, b); err != nil {
		return ierr.WithError(err).
			WithHint("failed to update booking").
			Mark(ierr.ErrDatabase)
	}
	return nil
}
