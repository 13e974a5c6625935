package data

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/fixnest/marketplace-api/internal/core"
	"github.com/fixnest/marketplace-api/internal/data/pgxutil"
	"github.com/fixnest/marketplace-api/internal/domain/model"
	apperrors "github.com/fixnest/marketplace-api/internal/errors"
)

const jobRequestColumns = `id, customer_id, category, title, description,
	address_line1, address_line2, city, postal_code, country,
	budget_min_cents, budget_max_cents, timeframe, desired_date, status,
	created_at, updated_at`

// jobRequestCardColumns deliberately excludes address_line1/address_line2:
// the board projection never reads street-level columns.
const jobRequestCardColumns = `id, category, title, description,
	city, postal_code, country, budget_min_cents, budget_max_cents,
	timeframe, desired_date, status, created_at`

const jobRequestInsertQuery = `
	INSERT INTO job_requests (
		customer_id, category, title, description,
		address_line1, address_line2, city, postal_code, country,
		budget_min_cents, budget_max_cents, timeframe, desired_date
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	RETURNING ` + jobRequestColumns

const jobRequestListByCustomerQuery = `
	SELECT ` + jobRequestColumns + `,
		(SELECT count(*) FROM request_offers o WHERE o.job_request_id = job_requests.id) AS offer_count
	FROM job_requests
	WHERE customer_id = $1
	ORDER BY created_at DESC
	LIMIT $2 OFFSET $3`

const jobRequestUpdateStatusQuery = `
	UPDATE job_requests
	SET status = $1, updated_at = now()
	WHERE id = $2 AND status = $3
	RETURNING ` + jobRequestColumns

// JobRequestRepo provides database operations for job requests.
type JobRequestRepo struct {
	DB *sql.DB
}

// NewJobRequestRepo creates a new JobRequestRepo.
func NewJobRequestRepo(db *sql.DB) *JobRequestRepo {
	return &JobRequestRepo{DB: db}
}

// Create inserts a new job request in status open.
func (r *JobRequestRepo) Create(ctx context.Context, params core.CreateJobRequestParams) (*model.JobRequest, error) {
	in := params.Input
	var out model.JobRequest
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobRequestInsertQuery,
			params.CustomerID, in.Category, in.Title, in.Description,
			in.AddressLine1, in.AddressLine2, in.City, in.PostalCode, in.Country,
			in.BudgetMinCents, in.BudgetMaxCents, in.Timeframe, in.DesiredDate,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobRequest])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a job request by ID, full address included. Callers
// enforce who may read the unmasked row.
func (r *JobRequestRepo) GetByID(ctx context.Context, id string) (*model.JobRequest, error) {
	var out model.JobRequest
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+jobRequestColumns+` FROM job_requests WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobRequest])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ListByCustomer retrieves the owner's requests with offer counts, newest first.
func (r *JobRequestRepo) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*model.JobRequestWithOfferCount, error) {
	limit, offset = clampPage(limit, offset)

	var rowsOut []model.JobRequestWithOfferCount
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobRequestListByCustomerQuery, customerID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.JobRequestWithOfferCount])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.JobRequestWithOfferCount, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// ListOpenCards retrieves the provider job board: open requests only, in the
// card projection whose query never selects street-level address columns.
func (r *JobRequestRepo) ListOpenCards(ctx context.Context, opts model.JobBoardOptions) ([]*model.JobRequestCard, error) {
	limit, offset := clampPage(opts.Limit, opts.Offset)

	query := `SELECT ` + jobRequestCardColumns + ` FROM job_requests WHERE status = 'open'`
	args := make([]any, 0, 4)
	if opts.Category != "" {
		args = append(args, opts.Category)
		query += ` AND category = $` + strconv.Itoa(len(args))
	}
	if opts.City != "" {
		args = append(args, opts.City)
		query += ` AND city = $` + strconv.Itoa(len(args))
	}
	args = append(args, limit)
	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args))
	args = append(args, offset)
	query += ` OFFSET $` + strconv.Itoa(len(args))

	var rowsOut []model.JobRequestCard
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.JobRequestCard])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.JobRequestCard, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// UpdateStatus performs a compare-and-set status transition. A row that
// already left the expected status surfaces as invalid_state, a missing row
// as not_found.
func (r *JobRequestRepo) UpdateStatus(ctx context.Context, params core.UpdateJobRequestStatusParams) (*model.JobRequest, error) {
	var out model.JobRequest
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, jobRequestUpdateStatusQuery, params.To, params.ID, params.From)
		if err != nil {
			return err
		}
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.JobRequest])
		if errors.Is(err, pgx.ErrNoRows) {
			return resolveStatusMiss(ctx, conn, "job_requests", "job request", params.ID, string(params.From))
		}
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// clampPage applies the shared pagination defaults.
func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
