// Package sqlite reads the transaction table from a local SQLite
// database, e.g. one populated by an import of the bank export.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"finview/internal/core"
	applog "finview/internal/log"

	_ "modernc.org/sqlite"
)

type Repository struct {
	db     *sql.DB
	logger *applog.Logger
}

func New(dbPath string, logger *applog.Logger) (*Repository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("%w: create db directory: %v", core.ErrSourceUnavailable, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite database: %v", core.ErrSourceUnavailable, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping database: %v", core.ErrSourceUnavailable, err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: run migrations: %v", core.ErrSourceUnavailable, err)
	}

	return &Repository{db: db, logger: logger.WithComponent(applog.ComponentSource)}, nil
}

func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// ReadAll implements source.Reader. Rows with unparsable dates are
// skipped with a warning.
func (r *Repository) ReadAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT operation_date, payment_date, card_number, amount_cents, category, description
		FROM transactions
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: query transactions: %v", core.ErrSourceUnavailable, err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			opDate, payDate, card, category, description string
			cents                                        int64
		)
		if err := rows.Scan(&opDate, &payDate, &card, &cents, &category, &description); err != nil {
			return nil, fmt.Errorf("%w: scan transaction: %v", core.ErrSourceUnavailable, err)
		}
		parsed, err := core.ParseOperationDate(opDate)
		if err != nil {
			r.logger.Warn("skipping row with bad operation date", applog.FieldError, err.Error())
			continue
		}
		out = append(out, core.Transaction{
			OperationDate: parsed,
			PaymentDate:   payDate,
			Card:          core.CardNumber(card),
			Amount:        core.Money{Cents: cents},
			Category:      category,
			Description:   description,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate transactions: %v", core.ErrSourceUnavailable, err)
	}
	return out, nil
}

// Import inserts records into the table. Used by the CSV import path
// and by tests.
func (r *Repository) Import(ctx context.Context, txs []core.Transaction) error {
	dbtx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer dbtx.Rollback()

	stmt, err := dbtx.PrepareContext(ctx, `
		INSERT INTO transactions (operation_date, payment_date, card_number, amount_cents, category, description)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, tx := range txs {
		_, err := stmt.ExecContext(ctx,
			core.FormatOperationDate(tx.OperationDate),
			tx.PaymentDate,
			tx.Card.RawKey(),
			tx.Amount.Cents,
			tx.Category,
			tx.Description,
		)
		if err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
	}
	if err := dbtx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	r.logger.Info("imported transactions", applog.FieldRecords, len(txs))
	return nil
}
