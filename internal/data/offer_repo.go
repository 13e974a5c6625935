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

const offerColumns = `id, job_request_id, provider_id, thread_id, currency,
	amount_cents, message, earliest_start, status, created_at, updated_at`

const offerInsertQuery = `
	INSERT INTO request_offers (
		job_request_id, provider_id, thread_id, currency,
		amount_cents, message, earliest_start
	) VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + offerColumns

const offerUpdateStatusQuery = `
	UPDATE request_offers
	SET status = $1, updated_at = now()
	WHERE id = $2 AND status = $3
	RETURNING ` + offerColumns

// jobRequestBumpQuery moves an open request to in_discussion. It matches
// zero rows when the request has already moved on, which is fine: the bump
// is an idempotent side effect, not a precondition.
const jobRequestBumpQuery = `
	UPDATE job_requests
	SET status = 'in_discussion', updated_at = now()
	WHERE id = $1 AND status = 'open'`

// OfferRepo provides database operations for offers.
type OfferRepo struct {
	DB *sql.DB
}

// NewOfferRepo creates a new OfferRepo.
func NewOfferRepo(db *sql.DB) *OfferRepo {
	return &OfferRepo{DB: db}
}

// Submit runs the offer-creation unit in a single transaction: upsert the
// (job request, provider) thread, insert the offer referencing it, and bump
// the request open→in_discussion if it is still open. Either everything
// lands or nothing does.
func (r *OfferRepo) Submit(ctx context.Context, params core.SubmitOfferParams) (*model.RequestOffer, error) {
	req := params.JobRequest
	in := params.Input

	var out model.RequestOffer
	if err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		thread, err := upsertThreadTx(ctx, tx, core.UpsertThreadParams{
			JobRequestID: req.ID,
			CustomerID:   req.CustomerID,
			ProviderID:   params.ProviderID,
		})
		if err != nil {
			return err
		}

		rows, err := tx.Query(ctx, offerInsertQuery,
			req.ID, params.ProviderID, thread.ID, params.Currency,
			in.AmountCents, in.Message, in.EarliestStart,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RequestOffer])
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, jobRequestBumpQuery, req.ID)
		return err
	}}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves an offer by ID.
func (r *OfferRepo) GetByID(ctx context.Context, id string) (*model.RequestOffer, error) {
	var out model.RequestOffer
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+offerColumns+` FROM request_offers WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RequestOffer])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ListByJobRequest retrieves all offers against a job request, newest first.
func (r *OfferRepo) ListByJobRequest(ctx context.Context, jobRequestID string) ([]*model.RequestOffer, error) {
	return r.list(ctx, `
		SELECT `+offerColumns+`
		FROM request_offers
		WHERE job_request_id = $1
		ORDER BY created_at DESC`, jobRequestID)
}

// ListByProvider retrieves a provider's own offers, newest first.
func (r *OfferRepo) ListByProvider(ctx context.Context, providerID string, limit, offset int) ([]*model.RequestOffer, error) {
	limit, offset = clampPage(limit, offset)
	return r.list(ctx, `
		SELECT `+offerColumns+`
		FROM request_offers
		WHERE provider_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, providerID, limit, offset)
}

// UpdateStatus performs a compare-and-set offer status transition. An offer
// that already left the expected status surfaces as invalid_state, a missing
// one as not_found.
func (r *OfferRepo) UpdateStatus(ctx context.Context, params core.UpdateOfferStatusParams) (*model.RequestOffer, error) {
	var out model.RequestOffer
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, offerUpdateStatusQuery, params.To, params.ID, params.From)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.RequestOffer])
		if errors.Is(err, pgx.ErrNoRows) {
			return resolveStatusMiss(ctx, conn, "request_offers", "offer", params.ID, string(params.From))
		}
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

func (r *OfferRepo) list(ctx context.Context, query string, args ...any) ([]*model.RequestOffer, error) {
	var rowsOut []model.RequestOffer
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.RequestOffer])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.RequestOffer, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
