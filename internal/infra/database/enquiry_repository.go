package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/xavierca1/inbox-crm/internal/entity"
)

type EnquiryRepository struct {
	DB Querier
}

func NewEnquiryRepository(db *sql.DB) *EnquiryRepository {
	return &EnquiryRepository{DB: db}
}

func (r *EnquiryRepository) Insert(ctx context.Context, e *entity.Enquiry) error {
	query := `
		INSERT INTO enquiries (
			id, contact_id, company_id, subject, message,
			status, customer_type, intent, confidence,
			sentiment_score, sentiment_label, ai_reply, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.DB.ExecContext(ctx, query,
		e.ID,
		e.ContactID,
		nullString(e.CompanyID),
		e.Subject,
		e.Message,
		e.Status,
		e.CustomerType,
		string(e.Intent),
		e.Confidence,
		e.SentimentScore,
		e.SentimentLabel,
		nullString(e.AIReply),
		e.CreatedAt,
		e.UpdatedAt,
	)

	return mapError(err)
}

const enquirySelect = `
	SELECT e.id, e.contact_id, e.company_id, e.subject, e.message,
	       e.status, e.customer_type, e.intent, e.confidence,
	       e.sentiment_score, e.sentiment_label, e.ai_reply, e.reply_text,
	       e.replied_at, e.created_at, e.updated_at,
	       c.name, c.email, co.company_name
	FROM enquiries e
	JOIN contacts c ON e.contact_id = c.id
	LEFT JOIN companies co ON e.company_id = co.id
`

func (r *EnquiryRepository) FindByID(ctx context.Context, id string) (*entity.Enquiry, error) {
	query := enquirySelect + ` WHERE e.id = $1 LIMIT 1`

	return scanEnquiry(r.DB.QueryRowContext(ctx, query, id))
}

func (r *EnquiryRepository) List(ctx context.Context, limit int) ([]*entity.Enquiry, error) {
	query := enquirySelect + ` ORDER BY e.created_at DESC LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	var enquiries []*entity.Enquiry
	for rows.Next() {
		enquiry, err := scanEnquiry(rows)
		if err != nil {
			return nil, err
		}
		enquiries = append(enquiries, enquiry)
	}

	return enquiries, rows.Err()
}

// Reply stores the human reply and moves the enquiry to replied.
func (r *EnquiryRepository) Reply(ctx context.Context, id, replyText string, repliedAt time.Time) error {
	query := `
		UPDATE enquiries
		SET status = 'replied', reply_text = $1, replied_at = $2, updated_at = NOW()
		WHERE id = $3
	`

	_, err := r.DB.ExecContext(ctx, query, replyText, repliedAt, id)
	return mapError(err)
}

func (r *EnquiryRepository) UpdateStatus(ctx context.Context, id, status string) error {
	query := `UPDATE enquiries SET status = $1, updated_at = NOW() WHERE id = $2`
	_, err := r.DB.ExecContext(ctx, query, status, id)
	return mapError(err)
}

func scanEnquiry(s interface{ Scan(dest ...any) error }) (*entity.Enquiry, error) {
	var e entity.Enquiry
	var companyID, aiReply, replyText, companyName sql.NullString
	var repliedAt sql.NullTime
	var intent string

	err := s.Scan(
		&e.ID,
		&e.ContactID,
		&companyID,
		&e.Subject,
		&e.Message,
		&e.Status,
		&e.CustomerType,
		&intent,
		&e.Confidence,
		&e.SentimentScore,
		&e.SentimentLabel,
		&aiReply,
		&replyText,
		&repliedAt,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.ContactName,
		&e.ContactEmail,
		&companyName,
	)
	if err != nil {
		return nil, mapError(err)
	}

	e.Intent = entity.Intent(intent)
	e.CompanyID = fromNull(companyID)
	e.AIReply = fromNull(aiReply)
	e.ReplyText = fromNull(replyText)
	e.CompanyName = fromNull(companyName)
	if repliedAt.Valid {
		t := repliedAt.Time
		e.RepliedAt = &t
	}

	return &e, nil
}
