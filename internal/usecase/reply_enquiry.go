package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/xavierca1/inbox-crm/internal/entity"
	"github.com/xavierca1/inbox-crm/internal/infra/queue"
)

// ReplyEnquiryUseCase sends a human (or accepted draft) reply on an enquiry:
// persist the reply, flip the status, promote the prospect, then hand the
// email to the outbound queue. Queue publish happens after commit; a broker
// outage loses the delivery, not the record, and the dashboard still shows
// the reply text for a manual resend.
type ReplyEnquiryUseCase struct {
	enquiries EnquiryRepositoryInterface
	contacts  ContactRepositoryInterface
	producer  QueueProducerInterface
	logger    *slog.Logger
}

func NewReplyEnquiryUseCase(
	enquiries EnquiryRepositoryInterface,
	contacts ContactRepositoryInterface,
	producer QueueProducerInterface,
	logger *slog.Logger,
) *ReplyEnquiryUseCase {
	return &ReplyEnquiryUseCase{
		enquiries: enquiries,
		contacts:  contacts,
		producer:  producer,
		logger:    logger,
	}
}

func (uc *ReplyEnquiryUseCase) Execute(ctx context.Context, enquiryID, replyText string) (*entity.Enquiry, error) {
	if errs := ValidateReplyText(replyText); len(errs) > 0 {
		return nil, errs
	}

	enquiry, err := uc.enquiries.FindByID(ctx, enquiryID)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, NewDomainError("ENQUIRY_NOT_FOUND", "enquiry not found")
	}
	if err != nil {
		return nil, &TechnicalError{Code: "ENQUIRY_LOOKUP_FAILED", Message: "failed to load enquiry", Err: err}
	}

	if !enquiry.CanTransition(entity.EnquiryStatusReplied) {
		return nil, NewDomainError("INVALID_STATUS", "enquiry cannot be replied in status "+enquiry.Status)
	}

	now := time.Now()
	if err := uc.enquiries.Reply(ctx, enquiry.ID, replyText, now); err != nil {
		return nil, &TechnicalError{Code: "ENQUIRY_REPLY_FAILED", Message: "failed to save reply", Err: err}
	}

	enquiry.Status = entity.EnquiryStatusReplied
	enquiry.ReplyText = replyText
	enquiry.RepliedAt = &now

	// A replied-to enquirer is a customer from here on.
	if err := uc.contacts.Promote(ctx, enquiry.ContactID, entity.CustomerTypeCustomer); err != nil {
		uc.logger.Error("contact promotion failed", "contact_id", enquiry.ContactID, "error", err)
	}

	payload := queue.ReplyPayload{
		RecordType: RecordTypeEnquiry,
		RecordID:   enquiry.ID,
		To:         enquiry.ContactEmail,
		ToName:     enquiry.ContactName,
		Subject:    "Re: " + enquiry.Subject,
		Body:       replyText,
	}
	if err := uc.producer.PublishReply(ctx, payload); err != nil {
		uc.logger.Error("reply publish failed", "enquiry_id", enquiry.ID, "error", err)
	}

	uc.logger.Info("enquiry replied", "enquiry_id", enquiry.ID, "contact_id", enquiry.ContactID)
	return enquiry, nil
}

// UpdateEnquiryStatusUseCase handles the close action (and any other manual
// status move the dashboard exposes).
type UpdateEnquiryStatusUseCase struct {
	enquiries EnquiryRepositoryInterface
	logger    *slog.Logger
}

func NewUpdateEnquiryStatusUseCase(enquiries EnquiryRepositoryInterface, logger *slog.Logger) *UpdateEnquiryStatusUseCase {
	return &UpdateEnquiryStatusUseCase{enquiries: enquiries, logger: logger}
}

func (uc *UpdateEnquiryStatusUseCase) Execute(ctx context.Context, enquiryID, status string) (*entity.Enquiry, error) {
	switch status {
	case entity.EnquiryStatusReplied, entity.EnquiryStatusClosed:
	default:
		return nil, NewDomainError("INVALID_STATUS", "unknown enquiry status "+status)
	}

	enquiry, err := uc.enquiries.FindByID(ctx, enquiryID)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, NewDomainError("ENQUIRY_NOT_FOUND", "enquiry not found")
	}
	if err != nil {
		return nil, &TechnicalError{Code: "ENQUIRY_LOOKUP_FAILED", Message: "failed to load enquiry", Err: err}
	}

	if !enquiry.CanTransition(status) {
		return nil, NewDomainError("INVALID_STATUS", "enquiry cannot move from "+enquiry.Status+" to "+status)
	}

	if err := uc.enquiries.UpdateStatus(ctx, enquiry.ID, status); err != nil {
		return nil, &TechnicalError{Code: "ENQUIRY_UPDATE_FAILED", Message: "failed to update enquiry", Err: err}
	}

	enquiry.Status = status
	uc.logger.Info("enquiry status updated", "enquiry_id", enquiry.ID, "status", status)
	return enquiry, nil
}
