package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/inbox-crm/internal/usecase"
)

// SQLTxManager binds all intake stores to one sql.Tx, so the dedup ledger
// entry, the contact/company writes and the enquiry or ticket insert commit
// or roll back together.
type SQLTxManager struct {
	DB *sql.DB
}

func NewSQLTxManager(db *sql.DB) *SQLTxManager {
	return &SQLTxManager{DB: db}
}

func (m *SQLTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, s usecase.Stores) error) error {
	tx, err := m.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	stores := usecase.Stores{
		Companies:       &CompanyRepository{DB: tx},
		Contacts:        &ContactRepository{DB: tx},
		Enquiries:       &EnquiryRepository{DB: tx},
		Tickets:         &TicketRepository{DB: tx},
		ProcessedEmails: &ProcessedEmailRepository{DB: tx},
	}

	if err := fn(ctx, stores); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && rbErr != sql.ErrTxDone {
			return fmt.Errorf("rollback after %w: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
