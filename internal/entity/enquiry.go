package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

const (
	EnquiryStatusNew     = "new"
	EnquiryStatusReplied = "replied"
	EnquiryStatusClosed  = "closed"
)

// Allowed status moves. The intake core only ever sets the initial "new";
// everything else is a human dashboard action.
var enquiryTransitions = map[string][]string{
	EnquiryStatusNew:     {EnquiryStatusReplied, EnquiryStatusClosed},
	EnquiryStatusReplied: {EnquiryStatusReplied, EnquiryStatusClosed},
}

type Enquiry struct {
	ID             string     `json:"id"`
	ContactID      string     `json:"contact_id"`
	CompanyID      string     `json:"company_id,omitempty"`
	Subject        string     `json:"subject"`
	Message        string     `json:"message"`
	Status         string     `json:"status"`
	CustomerType   string     `json:"customer_type"`
	Intent         Intent     `json:"intent"`
	Confidence     float64    `json:"confidence"`
	SentimentScore float64    `json:"sentiment_score"`
	SentimentLabel string     `json:"sentiment_label"`
	AIReply        string     `json:"ai_reply,omitempty"`
	ReplyText      string     `json:"reply_text,omitempty"`
	RepliedAt      *time.Time `json:"replied_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Filled by list queries only.
	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	CompanyName  string `json:"company_name,omitempty"`
}

func NewEnquiry(contactID, companyID, subject, message string) (*Enquiry, error) {
	if contactID == "" {
		return nil, errors.New("enquiry contact is required")
	}

	return &Enquiry{
		ID:           uuid.New().String(),
		ContactID:    contactID,
		CompanyID:    companyID,
		Subject:      subject,
		Message:      message,
		Status:       EnquiryStatusNew,
		CustomerType: CustomerTypeProspect,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}

func (e *Enquiry) CanTransition(to string) bool {
	for _, allowed := range enquiryTransitions[e.Status] {
		if allowed == to {
			return true
		}
	}
	return false
}
