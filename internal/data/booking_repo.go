package data

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/fixnest/marketplace-api/internal/core"
	"github.com/fixnest/marketplace-api/internal/data/pgxutil"
	"github.com/fixnest/marketplace-api/internal/domain/model"
	apperrors "github.com/fixnest/marketplace-api/internal/errors"
)

const bookingColumns = `id, type, status, job_title,
	address_line1, address_line2, city, postal_code, country,
	customer_id, provider_id, job_request_id, offer_id, currency,
	quoted_price_cents, platform_fee_cents, provider_payout_cents,
	scheduled_start, scheduled_end, paid_at, created_at, updated_at`

const paymentColumns = `id, booking_id, status, currency, amount_cents,
	reference, created_at, updated_at`

const bookingInsertFromOfferQuery = `
	INSERT INTO bookings (
		type, status, job_title,
		address_line1, address_line2, city, postal_code, country,
		customer_id, provider_id, job_request_id, offer_id, currency,
		quoted_price_cents, platform_fee_cents, provider_payout_cents,
		scheduled_start
	) VALUES (
		'job_request', 'needs_payment', $1,
		$2, $3, $4, $5, $6,
		$7, $8, $9, $10, $11,
		$12, $13, $14,
		$15
	)
	RETURNING ` + bookingColumns

const paymentInsertQuery = `
	INSERT INTO payment_transactions (booking_id, status, currency, amount_cents)
	VALUES ($1, 'requires_payment', $2, $3)`

const bookingUpdateStatusQuery = `
	UPDATE bookings
	SET status = $1, updated_at = now()
	WHERE id = $2 AND status = $3
	RETURNING ` + bookingColumns

const bookingMarkPaidQuery = `
	UPDATE bookings
	SET status = 'paid', paid_at = $2, updated_at = now()
	WHERE id = $1 AND status = 'needs_payment'
	RETURNING ` + bookingColumns

const paymentMarkSucceededQuery = `
	UPDATE payment_transactions
	SET status = 'succeeded', reference = $2, updated_at = now()
	WHERE booking_id = $1 AND status = 'requires_payment'`

const threadBindBookingQuery = `
	UPDATE message_threads
	SET booking_id = $1
	WHERE id = $2 AND booking_id IS NULL`

const jobRequestAssignQuery = `
	UPDATE job_requests
	SET status = 'assigned', updated_at = now()
	WHERE id = $1 AND status IN ('open', 'in_discussion')`

// BookingRepo provides database operations for bookings and their payment
// transactions.
type BookingRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewBookingRepo creates a new BookingRepo with real time provider.
func NewBookingRepo(db *sql.DB) *BookingRepo {
	return &BookingRepo{DB: db, timeProvider: &RealTimeProvider{}}
}

// NewBookingRepoWithTimeProvider creates a new BookingRepo with a custom time provider (useful for tests).
func NewBookingRepoWithTimeProvider(db *sql.DB, tp TimeProvider) *BookingRepo {
	return &BookingRepo{DB: db, timeProvider: tp}
}

// AcceptOffer runs the acceptance unit in one transaction: create the
// booking in needs_payment with its requires_payment payment transaction,
// mark the offer accepted, bind the negotiation thread to the booking, and
// move the job request to assigned. Either all writes land or none do.
func (r *BookingRepo) AcceptOffer(ctx context.Context, params core.AcceptOfferParams) (*model.Booking, error) {
	offer := params.Offer
	req := params.JobRequest

	var out model.Booking
	if err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, bookingInsertFromOfferQuery,
			req.Title,
			req.AddressLine1, req.AddressLine2, req.City, req.PostalCode, req.Country,
			req.CustomerID, offer.ProviderID, req.ID, offer.ID, offer.Currency,
			offer.AmountCents, params.PlatformFeeCents, params.ProviderPayoutCents,
			offer.EarliestStart,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
		if err != nil {
			return err
		}

		if _, err = tx.Exec(ctx, paymentInsertQuery, out.ID, offer.Currency, offer.AmountCents); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `
			UPDATE request_offers
			SET status = 'accepted', updated_at = now()
			WHERE id = $1 AND status = 'sent'`, offer.ID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.InvalidState("offer is no longer open for acceptance")
		}

		if _, err = tx.Exec(ctx, threadBindBookingQuery, out.ID, offer.ThreadID); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, jobRequestAssignQuery, req.ID)
		return err
	}}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a booking by ID, full address included. Callers apply
// the visibility policy before serializing.
func (r *BookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var out model.Booking
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ListByParticipant retrieves the bookings a user is party to, newest first.
func (r *BookingRepo) ListByParticipant(ctx context.Context, userID string, limit, offset int) ([]*model.Booking, error) {
	limit, offset = clampPage(limit, offset)

	var rowsOut []model.Booking
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+bookingColumns+`
			FROM bookings
			WHERE customer_id = $1 OR provider_id = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3`, userID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Booking])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.Booking, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdateStatus performs a compare-and-set booking status transition. A
// booking that already left the expected status surfaces as invalid_state,
// a missing one as not_found.
func (r *BookingRepo) UpdateStatus(ctx context.Context, params core.UpdateBookingStatusParams) (*model.Booking, error) {
	var out model.Booking
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, bookingUpdateStatusQuery, params.To, params.ID, params.From)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
		if errors.Is(err, pgx.ErrNoRows) {
			return resolveStatusMiss(ctx, conn, "bookings", "booking", params.ID, string(params.From))
		}
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ConfirmSimulatedPayment atomically marks the booking paid and its payment
// transaction succeeded. Both updates are guarded on the expected prior
// status; any guard failing rolls back the whole unit.
func (r *BookingRepo) ConfirmSimulatedPayment(ctx context.Context, params core.ConfirmPaymentParams) (*model.Booking, error) {
	paidAt := params.PaidAt
	if paidAt.IsZero() {
		paidAt = r.timeProvider.Now().UTC()
	}

	var out model.Booking
	if err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, bookingMarkPaidQuery, params.BookingID, paidAt)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Booking])
		if err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, paymentMarkSucceededQuery, params.BookingID, params.Reference)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.InvalidState("payment transaction is not awaiting payment")
		}
		return nil
	}}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetPaymentByBookingID retrieves the booking's payment transaction.
func (r *BookingRepo) GetPaymentByBookingID(ctx context.Context, bookingID string) (*model.PaymentTransaction, error) {
	var out model.PaymentTransaction
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+paymentColumns+`
			FROM payment_transactions
			WHERE booking_id = $1`, bookingID)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.PaymentTransaction])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}
