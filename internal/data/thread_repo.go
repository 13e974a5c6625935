package data

import (
	"context"
	"database/sql"

	"github.com/jackc/pgx/v5"

	"github.com/fixnest/marketplace-api/internal/core"
	"github.com/fixnest/marketplace-api/internal/data/pgxutil"
	"github.com/fixnest/marketplace-api/internal/domain/model"
	apperrors "github.com/fixnest/marketplace-api/internal/errors"
)

const threadColumns = `id, job_request_id, booking_id, customer_id, provider_id, created_at`

// threadInsertQuery relies on the partial unique index over
// (job_request_id, provider_id): a concurrent first contact loses the
// insert race silently and the follow-up select finds the winner's row.
const threadInsertQuery = `
	INSERT INTO message_threads (job_request_id, customer_id, provider_id)
	VALUES ($1, $2, $3)
	ON CONFLICT (job_request_id, provider_id) WHERE job_request_id IS NOT NULL DO NOTHING`

const threadSelectByPairQuery = `
	SELECT ` + threadColumns + `
	FROM message_threads
	WHERE job_request_id = $1 AND provider_id = $2`

const messageColumns = `id, thread_id, sender_id, body, attachments, created_at`

const messageInsertQuery = `
	INSERT INTO messages (thread_id, sender_id, body, attachments)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + messageColumns

// ThreadRepo provides database operations for message threads and messages.
type ThreadRepo struct {
	DB *sql.DB
}

// NewThreadRepo creates a new ThreadRepo.
func NewThreadRepo(db *sql.DB) *ThreadRepo {
	return &ThreadRepo{DB: db}
}

// UpsertForJobRequest returns the unique thread for the (job request,
// provider) pair, creating it when absent. The caller cannot observe
// whether the row was created.
func (r *ThreadRepo) UpsertForJobRequest(ctx context.Context, params core.UpsertThreadParams) (*model.MessageThread, error) {
	var out model.MessageThread
	if err := pgxutil.WithPgxTx(ctx, r.DB, pgxutil.TxConfig{Fn: func(tx pgx.Tx) error {
		thread, err := upsertThreadTx(ctx, tx, params)
		if err != nil {
			return err
		}
		out = *thread
		return nil
	}}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// upsertThreadTx is the transaction-scoped upsert shared with offer
// submission, which folds thread creation into its own transaction.
func upsertThreadTx(ctx context.Context, tx pgx.Tx, params core.UpsertThreadParams) (*model.MessageThread, error) {
	if _, err := tx.Exec(ctx, threadInsertQuery,
		params.JobRequestID, params.CustomerID, params.ProviderID); err != nil {
		return nil, err
	}
	rows, err := tx.Query(ctx, threadSelectByPairQuery, params.JobRequestID, params.ProviderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.MessageThread])
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetByID retrieves a thread by ID.
func (r *ThreadRepo) GetByID(ctx context.Context, id string) (*model.MessageThread, error) {
	var out model.MessageThread
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+threadColumns+` FROM message_threads WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.MessageThread])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ListByParticipant retrieves the threads a user takes part in, newest first.
func (r *ThreadRepo) ListByParticipant(ctx context.Context, userID string, limit, offset int) ([]*model.MessageThread, error) {
	limit, offset = clampPage(limit, offset)

	var rowsOut []model.MessageThread
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+threadColumns+`
			FROM message_threads
			WHERE customer_id = $1 OR provider_id = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3`, userID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.MessageThread])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.MessageThread, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}

// AppendMessage appends a message to a thread. Messages are immutable once
// written.
func (r *ThreadRepo) AppendMessage(ctx context.Context, params core.AppendMessageParams) (*model.Message, error) {
	attachments := params.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	var out model.Message
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, messageInsertQuery,
			params.ThreadID, params.SenderID, params.Body, attachments)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Message])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// ListMessages retrieves a thread's messages in insertion order.
func (r *ThreadRepo) ListMessages(ctx context.Context, threadID string, limit, offset int) ([]*model.Message, error) {
	limit, offset = clampPage(limit, offset)

	var rowsOut []model.Message
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			SELECT `+messageColumns+`
			FROM messages
			WHERE thread_id = $1
			ORDER BY created_at ASC, id ASC
			LIMIT $2 OFFSET $3`, threadID, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()
		rowsOut, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Message])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}

	res := make([]*model.Message, len(rowsOut))
	for i := range rowsOut {
		res[i] = &rowsOut[i]
	}
	return res, nil
}
