package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusClosed     = "closed"
)

const (
	TicketPriorityLow    = "low"
	TicketPriorityMedium = "medium"
	TicketPriorityHigh   = "high"
)

var ticketTransitions = map[string][]string{
	TicketStatusOpen:       {TicketStatusInProgress, TicketStatusResolved},
	TicketStatusInProgress: {TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed},
	TicketStatusResolved:   {TicketStatusClosed},
}

type SupportTicket struct {
	ID             string     `json:"id"`
	ContactID      string     `json:"contact_id"`
	CompanyID      string     `json:"company_id,omitempty"`
	Subject        string     `json:"subject"`
	Issue          string     `json:"issue"`
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	CustomerType   string     `json:"customer_type"`
	Intent         Intent     `json:"intent"`
	Confidence     float64    `json:"confidence"`
	SentimentScore float64    `json:"sentiment_score"`
	SentimentLabel string     `json:"sentiment_label"`
	AIReply        string     `json:"ai_reply,omitempty"`
	ReplyText      string     `json:"reply_text,omitempty"`
	RepliedAt      *time.Time `json:"replied_at,omitempty"`
	ResolvedAt     *time.Time `json:"resolved_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Filled by list queries only.
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	CompanyName  string `json:"company_name,omitempty"`
}

func NewSupportTicket(contactID, companyID, subject, issue string) (*SupportTicket, error) {
	if contactID == "" {
		return nil, errors.New("ticket contact is required")
	}

	return &SupportTicket{
		ID:           uuid.New().String(),
		ContactID:    contactID,
		CompanyID:    companyID,
		Subject:      subject,
		Issue:        issue,
		Status:       TicketStatusOpen,
		Priority:     TicketPriorityMedium,
		CustomerType: CustomerTypeProspect,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

func (t *SupportTicket) CanTransition(to string) bool {
	for _, allowed := range ticketTransitions[t.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}
