package worker

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/xavierca1/inbox-crm/internal/infra/http/middleware"
)

// PromotionWorker sweeps long-standing customers up to client. A customer
// qualifies once they have enough resolved tickets, enough enquiries, or
// enough tenure. Tenure is measured from customer_since, which only the
// prospect-to-customer move sets; updated_at would reset the clock on every
// contact patch. The sweep is one UPDATE so concurrent API promotions
// cannot race it into a demotion.
type PromotionWorker struct {
	db                 *sql.DB
	logger             *slog.Logger
	minResolvedTickets int
	minEnquiries       int
	minCustomerAge     time.Duration
	tickInterval       time.Duration
}

func NewPromotionWorker(db *sql.DB, logger *slog.Logger, minResolvedTickets, minEnquiries int, minCustomerAge, tickInterval time.Duration) *PromotionWorker {
	return &PromotionWorker{
		db:                 db,
		logger:             logger,
		minResolvedTickets: minResolvedTickets,
		minEnquiries:       minEnquiries,
		minCustomerAge:     minCustomerAge,
		tickInterval:       tickInterval,
	}
}

func (w *PromotionWorker) Start(ctx context.Context) {
	w.logger.Info("promotion worker started", "interval", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.sweep(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("promotion worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *PromotionWorker) sweep(ctx context.Context) {
	query := `
		UPDATE contacts
		SET customer_type = 'client', updated_at = NOW()
		WHERE customer_type = 'customer'
		  AND (
			(SELECT COUNT(*) FROM support_tickets t
			 WHERE t.contact_id = contacts.id AND t.status IN ('resolved', 'closed')) >= $1
			OR
			(SELECT COUNT(*) FROM enquiries e
			 WHERE e.contact_id = contacts.id) >= $2
			OR
			customer_since < NOW() - make_interval(secs => $3)
		  )
		RETURNING id, name
	`

	rows, err := w.db.QueryContext(ctx, query, w.minResolvedTickets, w.minEnquiries, w.minCustomerAge.Seconds())
	if err != nil {
		w.logger.Error("promotion sweep failed", "error", err)
		return
	}
	defer rows.Close()

	promoted := 0
	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			w.logger.Error("promotion sweep scan failed", "error", err)
			continue
		}

		w.logger.Info("contact promoted to client", "contact_id", id, "name", name)
		promoted++
	}
	if err := rows.Err(); err != nil {
		w.logger.Error("promotion sweep failed", "error", err)
	}

	if promoted > 0 {
		middleware.RecordContactsPromoted(promoted)
		w.logger.Info("promotion sweep finished", "promoted", promoted)
	}
}
