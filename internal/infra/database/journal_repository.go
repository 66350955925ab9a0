// internal/infra/database/journal_repository.go
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"homework_status_bot/internal/domain/journal"
)

// SQLJournalRepository stores delivery attempts in PostgreSQL or SQLite.
type SQLJournalRepository struct {
	db     *sql.DB
	driver string
}

func NewSQLJournalRepository(db *sql.DB, driver string) *SQLJournalRepository {
	return &SQLJournalRepository{db: db, driver: driver}
}

// EnsureSchema creates the journal table when it does not exist yet.
func (r *SQLJournalRepository) EnsureSchema(ctx context.Context) error {
	idColumn := "BIGSERIAL PRIMARY KEY"
	createdAt := "TIMESTAMPTZ NOT NULL"
	if r.driver == DriverSQLite {
		idColumn = "INTEGER PRIMARY KEY AUTOINCREMENT"
		createdAt = "TIMESTAMP NOT NULL"
	}
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS delivery_journal (
		id %s,
		kind TEXT NOT NULL,
		chat_id BIGINT NOT NULL,
		message TEXT NOT NULL,
		delivered BOOLEAN NOT NULL,
		error TEXT,
		created_at %s
	)`, idColumn, createdAt)
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("error creating delivery_journal table: %w", err)
	}
	return nil
}

// Append inserts one delivery attempt and fills in its ID.
func (r *SQLJournalRepository) Append(ctx context.Context, entry *journal.Entry) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO delivery_journal (kind, chat_id, message, delivered, error, created_at)
               VALUES ($1, $2, $3, $4, $5, $6)
               RETURNING id`
	if r.driver == DriverSQLite {
		query = `INSERT INTO delivery_journal (kind, chat_id, message, delivered, error, created_at)
               VALUES (?, ?, ?, ?, ?, ?)
               RETURNING id`
	}
	err := r.db.QueryRowContext(ctx, query,
		string(entry.Kind), entry.ChatID, entry.Message, entry.Delivered, entry.Error, entry.CreatedAt,
	).Scan(&entry.ID)
	if err != nil {
		return fmt.Errorf("error appending delivery journal entry: %w", err)
	}
	return nil
}
