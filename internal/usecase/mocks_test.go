package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/inbox-crm/internal/entity"
	"github.com/xavierca1/inbox-crm/internal/infra/queue"
)

// MockCompanyStore
type MockCompanyStore struct {
	mock.Mock
}

func (m *MockCompanyStore) FindByID(ctx context.Context, id string) (*entity.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

func (m *MockCompanyStore) FindByName(ctx context.Context, name string) (*entity.Company, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

func (m *MockCompanyStore) Create(ctx context.Context, c *entity.Company) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCompanyStore) UpdateWebsite(ctx context.Context, id, website string) (*entity.Company, error) {
	args := m.Called(ctx, id, website)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Company), args.Error(1)
}

// MockContactStore
type MockContactStore struct {
	mock.Mock
}

func (m *MockContactStore) FindByEmailOrPhone(ctx context.Context, email, phone string) (*entity.Contact, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

func (m *MockContactStore) Create(ctx context.Context, c *entity.Contact) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContactStore) Update(ctx context.Context, id string, patch ContactPatch) (*entity.Contact, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Contact), args.Error(1)
}

// MockEnquiryStore
type MockEnquiryStore struct {
	mock.Mock
}

func (m *MockEnquiryStore) Insert(ctx context.Context, e *entity.Enquiry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// MockTicketStore
type MockTicketStore struct {
	mock.Mock
}

func (m *MockTicketStore) Insert(ctx context.Context, t *entity.SupportTicket) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

// MockProcessedEmailStore
type MockProcessedEmailStore struct {
	mock.Mock
}

func (m *MockProcessedEmailStore) InsertIfAbsent(ctx context.Context, messageID string) (bool, error) {
	args := m.Called(ctx, messageID)
	return args.Bool(0), args.Error(1)
}

// stubTxManager runs the callback directly against the given stores, no
// real transaction involved.
type stubTxManager struct {
	stores Stores
}

func (s *stubTxManager) WithinTx(ctx context.Context, fn func(ctx context.Context, st Stores) error) error {
	return fn(ctx, s.stores)
}

// MockEnquiryRepository
type MockEnquiryRepository struct {
	mock.Mock
}

func (m *MockEnquiryRepository) FindByID(ctx context.Context, id string) (*entity.Enquiry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Enquiry), args.Error(1)
}

func (m *MockEnquiryRepository) Reply(ctx context.Context, id, replyText string, repliedAt time.Time) error {
	args := m.Called(ctx, id, replyText, repliedAt)
	return args.Error(0)
}

func (m *MockEnquiryRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockTicketRepository
type MockTicketRepository struct {
	mock.Mock
}

func (m *MockTicketRepository) FindByID(ctx context.Context, id string) (*entity.SupportTicket, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.SupportTicket), args.Error(1)
}

func (m *MockTicketRepository) Reply(ctx context.Context, id, replyText string, repliedAt time.Time) error {
	args := m.Called(ctx, id, replyText, repliedAt)
	return args.Error(0)
}

func (m *MockTicketRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// MockContactRepository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Promote(ctx context.Context, id, to string) error {
	args := m.Called(ctx, id, to)
	return args.Error(0)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishReply(ctx context.Context, payload queue.ReplyPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}
