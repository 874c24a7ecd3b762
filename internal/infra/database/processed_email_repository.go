package database

import (
	"context"
	"database/sql"
	"time"
)

// ProcessedEmailRepository is the dedup ledger for external message IDs.
type ProcessedEmailRepository struct {
	DB Querier
}

func NewProcessedEmailRepository(db *sql.DB) *ProcessedEmailRepository {
	return &ProcessedEmailRepository{DB: db}
}

// InsertIfAbsent records the message ID and reports whether this call won the
// insert. false means some earlier (or concurrent) intake already holds it
// and the email must be treated as handled.
func (r *ProcessedEmailRepository) InsertIfAbsent(ctx context.Context, messageID string) (bool, error) {
	query := `
		INSERT INTO processed_emails (message_id, processed_at)
		VALUES ($1, $2)
		ON CONFLICT (message_id) DO NOTHING
	`

	result, err := r.DB.ExecContext(ctx, query, messageID, time.Now())
	if err != nil {
		return false, mapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
