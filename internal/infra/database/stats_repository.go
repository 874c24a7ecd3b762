package database

import (
	"context"
	"database/sql"

	"github.com/xavierca1/inbox-crm/internal/usecase"
)

type StatsRepository struct {
	DB Querier
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

// Stats aggregates the dashboard counters in one round trip.
func (r *StatsRepository) Stats(ctx context.Context) (*usecase.ProcessingStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM enquiries),
			(SELECT COUNT(*) FROM support_tickets),
			(SELECT COUNT(*) FROM enquiries WHERE status = 'new'),
			(SELECT COUNT(*) FROM support_tickets WHERE status = 'open')
	`

	var stats usecase.ProcessingStats
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&stats.TotalEnquiriesProcessed,
		&stats.TotalSupportProcessed,
		&stats.NewEnquiries,
		&stats.OpenTickets,
	)
	if err != nil {
		return nil, mapError(err)
	}

	return &stats, nil
}
