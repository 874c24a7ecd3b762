package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/xavierca1/inbox-crm/internal/entity"
	"github.com/xavierca1/inbox-crm/internal/infra/queue"
)

// ReplyTicketUseCase mirrors ReplyEnquiryUseCase for support tickets. A
// first reply moves the ticket to in_progress; it does not resolve it.
type ReplyTicketUseCase struct {
	tickets  TicketRepositoryInterface
	producer QueueProducerInterface
	logger   *slog.Logger
}

func NewReplyTicketUseCase(
	tickets TicketRepositoryInterface,
	producer QueueProducerInterface,
	logger *slog.Logger,
) *ReplyTicketUseCase {
	return &ReplyTicketUseCase{
		tickets:  tickets,
		producer: producer,
		logger:   logger,
	}
}

func (uc *ReplyTicketUseCase) Execute(ctx context.Context, ticketID, replyText string) (*entity.SupportTicket, error) {
	if errs := ValidateReplyText(replyText); len(errs) > 0 {
		return nil, errs
	}

	ticket, err := uc.tickets.FindByID(ctx, ticketID)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, NewDomainError("TICKET_NOT_FOUND", "support ticket not found")
	}
	if err != nil {
		return nil, &TechnicalError{Code: "TICKET_LOOKUP_FAILED", Message: "failed to load ticket", Err: err}
	}

	if !ticket.CanTransition(entity.TicketStatusInProgress) {
		return nil, NewDomainError("INVALID_STATUS", "ticket cannot be replied in status "+ticket.Status)
	}

	now := time.Now()
	if err := uc.tickets.Reply(ctx, ticket.ID, replyText, now); err != nil {
		return nil, &TechnicalError{Code: "TICKET_REPLY_FAILED", Message: "failed to save reply", Err: err}
	}

	ticket.Status = entity.TicketStatusInProgress
	ticket.ReplyText = replyText
	ticket.RepliedAt = &now

	payload := queue.ReplyPayload{
		RecordType: RecordTypeSupportTicket,
		RecordID:   ticket.ID,
		To:         ticket.ContactEmail,
		ToName:     ticket.ContactName,
		Subject:    "Re: " + ticket.Subject,
		Body:       replyText,
	}
	if err := uc.producer.PublishReply(ctx, payload); err != nil {
		uc.logger.Error("reply publish failed", "ticket_id", ticket.ID, "error", err)
	}

	uc.logger.Info("ticket replied", "ticket_id", ticket.ID, "contact_id", ticket.ContactID)
	return ticket, nil
}

// UpdateTicketStatusUseCase moves a ticket through its lifecycle
// (in_progress, resolved, closed) from the support dashboard.
type UpdateTicketStatusUseCase struct {
	tickets TicketRepositoryInterface
	logger  *slog.Logger
}

func NewUpdateTicketStatusUseCase(tickets TicketRepositoryInterface, logger *slog.Logger) *UpdateTicketStatusUseCase {
	return &UpdateTicketStatusUseCase{tickets: tickets, logger: logger}
}

func (uc *UpdateTicketStatusUseCase) Execute(ctx context.Context, ticketID, status string) (*entity.SupportTicket, error) {
	switch status {
	case entity.TicketStatusInProgress, entity.TicketStatusResolved, entity.TicketStatusClosed:
	default:
		return nil, NewDomainError("INVALID_STATUS", "unknown ticket status "+status)
	}

	ticket, err := uc.tickets.FindByID(ctx, ticketID)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, NewDomainError("TICKET_NOT_FOUND", "support ticket not found")
	}
	if err != nil {
		return nil, &TechnicalError{Code: "TICKET_LOOKUP_FAILED", Message: "failed to load ticket", Err: err}
	}

	if !ticket.CanTransition(status) {
		return nil, NewDomainError("INVALID_STATUS", "ticket cannot move from "+ticket.Status+" to "+status)
	}

	if err := uc.tickets.UpdateStatus(ctx, ticket.ID, status); err != nil {
		return nil, &TechnicalError{Code: "TICKET_UPDATE_FAILED", Message: "failed to update ticket", Err: err}
	}

	ticket.Status = status
	if status == entity.TicketStatusResolved {
		now := time.Now()
		ticket.ResolvedAt = &now
	}

	uc.logger.Info("ticket status updated", "ticket_id", ticket.ID, "status", status)
	return ticket, nil
}
