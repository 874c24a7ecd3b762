package usecase

import (
	"github.com/xavierca1/inbox-crm/internal/ai"
	"github.com/xavierca1/inbox-crm/internal/entity"
)

type ProcessEmailInput struct {
	FromEmail string `json:"from_email"`
	FromName  string `json:"from_name"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`

	// Optional extraction hints.
	Phone           string `json:"phone,omitempty"`
	CompanyNameHint string `json:"company_name,omitempty"`
	WebsiteHint     string `json:"website,omitempty"`
	Location        string `json:"location,omitempty"`
	ProductInterest string `json:"product_interest,omitempty"`

	// MessageID is the external dedup key. Empty means "no dedup" (manual
	// webhook submissions).
	MessageID string `json:"message_id,omitempty"`

	// Source is "webhook" or "imap", for metrics and logs only.
	Source string `json:"-"`
}

const (
	RecordTypeEnquiry       = "enquiry"
	RecordTypeSupportTicket = "support_ticket"
)

type ProcessEmailOutput struct {
	Type       string        `json:"type,omitempty"`
	ID         string        `json:"id,omitempty"`
	Status     string        `json:"status,omitempty"`
	Priority   string        `json:"priority,omitempty"`
	Intent     entity.Intent `json:"intent,omitempty"`
	Confidence float64       `json:"confidence"`
	Sentiment  ai.Sentiment  `json:"sentiment"`
	DraftReply string        `json:"draft_reply,omitempty"`
	ContactID  string        `json:"contact_id,omitempty"`
	CompanyID  string        `json:"company_id,omitempty"`
	Skipped    bool          `json:"skipped,omitempty"`
}

// ContactPatch carries fill-if-empty updates for an existing contact. Empty
// strings mean "leave alone"; Promote requests the prospect->customer move.
type ContactPatch struct {
	Name            string
	Phone           string
	Location        string
	ProductInterest string
	CompanyID       string
	Promote         bool
}

func (p ContactPatch) Empty() bool {
	return p == ContactPatch{}
}

type ProcessingStats struct {
	TotalEnquiriesProcessed int `json:"total_enquiries_processed"`
	TotalSupportProcessed   int `json:"total_support_processed"`
	NewEnquiries            int `json:"new_enquiries"`
	OpenTickets             int `json:"open_tickets"`
}
