package data

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/fixnest/marketplace-api/internal/errors"
)

// resolveStatusMiss disambiguates a compare-and-set update that matched no
// rows. The row may be gone, or it may have moved to another status between
// the caller's read and the update. A row that is still present surfaces as
// invalid_state carrying the status it actually holds; a missing row falls
// through to the usual not_found mapping.
func resolveStatusMiss(ctx context.Context, conn *pgx.Conn, table, noun, id, expected string) error {
	var current string
	err := conn.QueryRow(ctx, `SELECT status FROM `+table+` WHERE id = $1`, id).Scan(&current)
	if errors.Is(err, pgx.ErrNoRows) {
		return pgx.ErrNoRows
	}
	if err != nil {
		return err
	}
	return apperrors.InvalidStatef("%s is in status %q, not %q", noun, current, expected)
}
