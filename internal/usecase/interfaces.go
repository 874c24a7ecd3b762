package usecase

import (
	"context"
	"time"

	"github.com/xavierca1/inbox-crm/internal/ai"
	"github.com/xavierca1/inbox-crm/internal/entity"
	"github.com/xavierca1/inbox-crm/internal/infra/queue"
)

// Transaction-scoped store contracts. Implementations are bound to one
// sql.Tx by the TxManager, so every write inside WithinTx commits or rolls
// back together.

type CompanyStore interface {
	FindByID(ctx context.Context, id string) (*entity.Company, error)
	FindByName(ctx context.Context, name string) (*entity.Company, error)
	Create(ctx context.Context, c *entity.Company) error
	UpdateWebsite(ctx context.Context, id, website string) (*entity.Company, error)
}

type ContactStore interface {
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*entity.Contact, error)
	Create(ctx context.Context, c *entity.Contact) error
	Update(ctx context.Context, id string, patch ContactPatch) (*entity.Contact, error)
}

type EnquiryStore interface {
	Insert(ctx context.Context, e *entity.Enquiry) error
}

type TicketStore interface {
	Insert(ctx context.Context, t *entity.SupportTicket) error
}

type ProcessedEmailStore interface {
	InsertIfAbsent(ctx context.Context, messageID string) (bool, error)
}

type Stores struct {
	Companies       CompanyStore
	Contacts        ContactStore
	Enquiries       EnquiryStore
	Tickets         TicketStore
	ProcessedEmails ProcessedEmailStore
}

// TxManager runs fn inside one database transaction. Any error from fn rolls
// everything back, dedup ledger entry included.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, s Stores) error) error
}

// Full repository contracts for the dashboard use cases (no transaction
// needed, single-statement updates).

type EnquiryRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.Enquiry, error)
	Reply(ctx context.Context, id, replyText string, repliedAt time.Time) error
	UpdateStatus(ctx context.Context, id, status string) error
}

type TicketRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*entity.SupportTicket, error)
	Reply(ctx context.Context, id, replyText string, repliedAt time.Time) error
	UpdateStatus(ctx context.Context, id, status string) error
}

type ContactRepositoryInterface interface {
	Promote(ctx context.Context, id, to string) error
}

// Processing core contracts, implemented by internal/ai.

type IntentClassifier interface {
	Classify(text string) ai.Classification
}

type SentimentScorer interface {
	Score(text string) ai.Sentiment
}

type ReplyDrafter interface {
	Draft(contactName string, intent entity.Intent) string
}

type QueueProducerInterface interface {
	PublishReply(ctx context.Context, payload queue.ReplyPayload) error
}
