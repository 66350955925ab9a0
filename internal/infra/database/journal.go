package database

import (
	"context"
	"fmt"

	"homework_status_bot/internal/domain/journal"

	"github.com/sirupsen/logrus"
)

// OpenJournal returns the journal repository for the configured driver and a
// function releasing its connection. An empty driver disables the journal.
func OpenJournal(ctx context.Context, driver, dsn string) (journal.Repository, func() error, error) {
	if driver == "" {
		return journal.Discard{}, func() error { return nil }, nil
	}

	db, err := NewConnection(driver, dsn)
	if err != nil {
		return nil, nil, err
	}
	repo := NewSQLJournalRepository(db, driver)
	if err := repo.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to prepare journal schema: %w", err)
	}
	return repo, db.Close, nil
}

// OpenJournalOrDiscard is OpenJournal for startup: the journal is optional, so
// an unreachable database is logged and the bot runs without it.
func OpenJournalOrDiscard(ctx context.Context, driver, dsn string, logger *logrus.Entry) (journal.Repository, func() error) {
	repo, closeFn, err := OpenJournal(ctx, driver, dsn)
	if err != nil {
		logger.WithField("op", "OpenJournalOrDiscard").WithField("driver", driver).WithError(err).
			Warn("Delivery journal unavailable, continuing without it")
		return journal.Discard{}, func() error { return nil }
	}
	return repo, closeFn
}
