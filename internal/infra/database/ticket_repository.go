package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/xavierca1/inbox-crm/internal/entity"
)

type TicketRepository struct {
	DB Querier
}

func NewTicketRepository(db *sql.DB) *TicketRepository {
	return &TicketRepository{DB: db}
}

func (r *TicketRepository) Insert(ctx context.Context, t *entity.SupportTicket) error {
	query := `
		INSERT INTO support_tickets (
			id, contact_id, company_id, subject, issue,
			status, priority, customer_type, intent, confidence,
			sentiment_score, sentiment_label, ai_reply, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.DB.ExecContext(ctx, query,
		t.ID,
		t.ContactID,
		nullString(t.CompanyID),
		t.Subject,
		t.Issue,
		t.Status,
		t.Priority,
		t.CustomerType,
		string(t.Intent),
		t.Confidence,
		t.SentimentScore,
		t.SentimentLabel,
		nullString(t.AIReply),
		t.CreatedAt,
		t.UpdatedAt,
	)

	return mapError(err)
}

const ticketSelect = `
	SELECT t.id, t.contact_id, t.company_id, t.subject, t.issue,
	       t.status, t.priority, t.customer_type, t.intent, t.confidence,
	       t.sentiment_score, t.sentiment_label, t.ai_reply, t.reply_text,
	       t.replied_at, t.resolved_at, t.created_at, t.updated_at,
	       c.name, c.email, co.company_name
	FROM support_tickets t
	JOIN contacts c ON t.contact_id = c.id
	LEFT JOIN companies co ON t.company_id = co.id
`

func (r *TicketRepository) FindByID(ctx context.Context, id string) (*entity.SupportTicket, error) {
	query := ticketSelect + ` WHERE t.id = $1 LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, id)
	return scanTicket(row)
}

func (r *TicketRepository) List(ctx context.Context, limit int) ([]*entity.SupportTicket, error) {
	query := ticketSelect + ` ORDER BY t.created_at DESC LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var tickets []*entity.SupportTicket
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	return tickets, rows.Err()
}

// Reply stores the human reply and moves the ticket to in_progress.
func (r *TicketRepository) Reply(ctx context.Context, id, replyText string, repliedAt time.Time) error {
	query := `
		UPDATE support_tickets
		SET status = 'in_progress', reply_text = $1, replied_at = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := r.DB.ExecContext(ctx, query, replyText, repliedAt, id)
	return mapError(err)
}

func (r *TicketRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `
		UPDATE support_tickets
		SET status = $1,
		    resolved_at = CASE WHEN $1 = 'resolved' THEN NOW() ELSE resolved_at END,
		    updated_at = NOW()
		WHERE id = $2
	`

	_, err := r.DB.ExecContext(ctx, query, status, id)
	return mapError(err)
}

func scanTicket(s interface{ Scan(dest ...any) error }) (*entity.SupportTicket, error) {
	var t entity.SupportTicket
	var companyID, aiReply, replyText, companyName sql.NullString
	var repliedAt, resolvedAt sql.NullTime
	var intent string

	err := s.Scan(
		&t.ID,
		&t.ContactID,
		&companyID,
		&t.Subject,
		&t.Issue,
		&t.Status,
		&t.Priority,
		&t.CustomerType,
		&intent,
		&t.Confidence,
		&t.SentimentScore,
		&t.SentimentLabel,
		&aiReply,
		&replyText,
		&repliedAt,
		&resolvedAt,
		&t.CreatedAt,
		&t.UpdatedAt,
		&t.ContactName,
		&t.ContactEmail,
		&companyName,
	)
	if err != nil {
		return nil, mapError(err)
	}

	t.Intent = entity.Intent(intent)
	t.CompanyID = fromNull(companyID)
	t.AIReply = fromNull(aiReply)
	t.ReplyText = fromNull(replyText)
	t.CompanyName = fromNull(companyName)
	if repliedAt.Valid {
		at := repliedAt.Time
		t.RepliedAt = &at
	}
	if resolvedAt.Valid {
		at := resolvedAt.Time
		t.ResolvedAt = &at
	}

	return &t, nil
}
