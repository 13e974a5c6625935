// Package migrate applies the embedded SQL schema migrations in
// filename order, tracking applied versions in schema_migrations.
package migrate

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Run applies every pending migration. Already-applied versions are
// skipped, so calling it on every startup is fine.
func Run(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			files = append(files, e.Name())
		}
	}
	// Filenames carry a numeric prefix, so lexical order is apply order.
	sort.Strings(files)

	for _, f := range files {
		m := migration{
			version: strings.TrimSuffix(f, ".sql"),
			file:    f,
		}
		if applyErr := apply(ctx, db, m); applyErr != nil {
			return applyErr
		}
	}
	return nil
}

type migration struct {
	version string
	file    string
}

func alreadyApplied(ctx context.Context, db *sql.DB, m migration) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`
	if err := db.QueryRowContext(ctx, query, m.version).Scan(&exists); err != nil {
		return false, fmt.Errorf("check migration %s: %w", m.file, err)
	}
	return exists, nil
}

func recordApplied(ctx context.Context, tx *sql.Tx, m migration) error {
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, m.version); err != nil {
		return fmt.Errorf("record migration %s: %w", m.file, err)
	}
	return nil
}

// apply runs one migration and its version insert in a single
// transaction, so a failed migration leaves no applied record behind.
func apply(ctx context.Context, db *sql.DB, m migration) error {
	applied, err := alreadyApplied(ctx, db, m)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}

	sqlBytes, err := migrationsFS.ReadFile("migrations/" + m.file)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", m.file, err)
	}

	logger := slog.Default().With("component", "migrations")
	logger.InfoContext(ctx, "applying migration", "version", m.version)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			logger.ErrorContext(
				ctx,
				"failed to rollback transaction",
				"err",
				rollbackErr,
				"migration_file",
				m.file,
			)
		}
	}()

	if _, execErr := tx.ExecContext(ctx, string(sqlBytes)); execErr != nil {
		return fmt.Errorf("exec migration %s: %w", m.file, execErr)
	}
	if recordErr := recordApplied(ctx, tx, m); recordErr != nil {
		return recordErr
	}

	if commitErr := tx.Commit(); commitErr != nil {
		return fmt.Errorf("commit migration %s: %w", m.file, commitErr)
	}

	return nil
}
