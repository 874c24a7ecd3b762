package usecase

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/inbox-crm/internal/entity"
	"github.com/xavierca1/inbox-crm/internal/infra/queue"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEnquiry(status string) *entity.Enquiry {
	return &entity.Enquiry{
		ID:           "enq-1",
		ContactID:    "cont-1",
		Subject:      "Pricing question",
		Status:       status,
		ContactName:  "Jane Doe",
		ContactEmail: "jane@acme.com",
	}
}

func TestReplyEnquiryHappyPath(t *testing.T) {
	enquiries := new(MockEnquiryRepository)
	contacts := new(MockContactRepository)
	producer := new(MockQueueProducer)

	enquiries.On("FindByID", mock.Anything, "enq-1").Return(newEnquiry(entity.EnquiryStatusNew), nil)
	enquiries.On("Reply", mock.Anything, "enq-1", "Here is our price list.", mock.AnythingOfType("time.Time")).Return(nil)
	contacts.On("Promote", mock.Anything, "cont-1", entity.CustomerTypeCustomer).Return(nil)
	producer.On("PublishReply", mock.Anything, mock.MatchedBy(func(p queue.ReplyPayload) bool {
		return p.RecordType == RecordTypeEnquiry &&
			p.To == "jane@acme.com" &&
			p.Subject == "Re: Pricing question" &&
			p.Body == "Here is our price list."
	})).Return(nil)

	uc := NewReplyEnquiryUseCase(enquiries, contacts, producer, discardLogger())
	enquiry, err := uc.Execute(context.Background(), "enq-1", "Here is our price list.")

	assert.NoError(t, err)
	assert.Equal(t, entity.EnquiryStatusReplied, enquiry.Status)
	assert.Equal(t, "Here is our price list.", enquiry.ReplyText)
	assert.NotNil(t, enquiry.RepliedAt)
	enquiries.AssertExpectations(t)
	contacts.AssertExpectations(t)
	producer.AssertExpectations(t)
}

func TestReplyEnquiryRejectsEmptyReply(t *testing.T) {
	uc := NewReplyEnquiryUseCase(new(MockEnquiryRepository), new(MockContactRepository), new(MockQueueProducer), discardLogger())

	_, err := uc.Execute(context.Background(), "enq-1", "   ")

	assert.True(t, IsValidationError(err))
}

func TestReplyEnquiryNotFound(t *testing.T) {
	enquiries := new(MockEnquiryRepository)
	enquiries.On("FindByID", mock.Anything, "missing").Return(nil, entity.ErrNotFound)

	uc := NewReplyEnquiryUseCase(enquiries, new(MockContactRepository), new(MockQueueProducer), discardLogger())
	_, err := uc.Execute(context.Background(), "missing", "Hello")

	assert.True(t, IsDomainError(err))
}

func TestReplyEnquiryClosedIsRejected(t *testing.T) {
	enquiries := new(MockEnquiryRepository)
	enquiries.On("FindByID", mock.Anything, "enq-1").Return(newEnquiry(entity.EnquiryStatusClosed), nil)

	uc := NewReplyEnquiryUseCase(enquiries, new(MockContactRepository), new(MockQueueProducer), discardLogger())
	_, err := uc.Execute(context.Background(), "enq-1", "Hello again")

	assert.True(t, IsDomainError(err))
	enquiries.AssertNotCalled(t, "Reply", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReplyEnquiryQueueFailureDoesNotFail(t *testing.T) {
	enquiries := new(MockEnquiryRepository)
	contacts := new(MockContactRepository)
	producer := new(MockQueueProducer)

	enquiries.On("FindByID", mock.Anything, "enq-1").Return(newEnquiry(entity.EnquiryStatusNew), nil)
	enquiries.On("Reply", mock.Anything, "enq-1", "Hello", mock.AnythingOfType("time.Time")).Return(nil)
	contacts.On("Promote", mock.Anything, "cont-1", entity.CustomerTypeCustomer).Return(nil)
	producer.On("PublishReply", mock.Anything, mock.Anything).Return(assert.AnError)

	uc := NewReplyEnquiryUseCase(enquiries, contacts, producer, discardLogger())
	enquiry, err := uc.Execute(context.Background(), "enq-1", "Hello")

	// Reply is persisted; delivery failure is a logged follow-up, not an API error.
	assert.NoError(t, err)
	assert.Equal(t, entity.EnquiryStatusReplied, enquiry.Status)
}

func TestUpdateEnquiryStatusClose(t *testing.T) {
	enquiries := new(MockEnquiryRepository)
	enquiries.On("FindByID", mock.Anything, "enq-1").Return(newEnquiry(entity.EnquiryStatusReplied), nil)
	enquiries.On("UpdateStatus", mock.Anything, "enq-1", entity.EnquiryStatusClosed).Return(nil)

	uc := NewUpdateEnquiryStatusUseCase(enquiries, discardLogger())
	enquiry, err := uc.Execute(context.Background(), "enq-1", entity.EnquiryStatusClosed)

	assert.NoError(t, err)
	assert.Equal(t, entity.EnquiryStatusClosed, enquiry.Status)
}

func TestUpdateEnquiryStatusRejectsUnknownStatus(t *testing.T) {
	uc := NewUpdateEnquiryStatusUseCase(new(MockEnquiryRepository), discardLogger())

	_, err := uc.Execute(context.Background(), "enq-1", "archived")

	assert.True(t, IsDomainError(err))
}

func TestUpdateEnquiryStatusRejectsReopening(t *testing.T) {
	enquiries := new(MockEnquiryRepository)
	enquiries.On("FindByID", mock.Anything, "enq-1").Return(newEnquiry(entity.EnquiryStatusClosed), nil)

	uc := NewUpdateEnquiryStatusUseCase(enquiries, discardLogger())
	_, err := uc.Execute(context.Background(), "enq-1", entity.EnquiryStatusReplied)

	assert.True(t, IsDomainError(err))
	enquiries.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
