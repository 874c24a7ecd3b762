package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/xavierca1/inbox-crm/internal/entity"
)

// ProcessEmailUseCase is the intake core: one inbound message in, one
// enquiry or support ticket out, with the sender resolved to a contact and
// company along the way. Everything runs inside a single transaction, so an
// insert failure also rolls back the dedup ledger entry and the message can
// be retried.
type ProcessEmailUseCase struct {
	tx         TxManager
	resolver   *Resolver
	classifier IntentClassifier
	scorer     SentimentScorer
	drafter    ReplyDrafter
	logger     *slog.Logger
}

func NewProcessEmailUseCase(
	tx TxManager,
	resolver *Resolver,
	classifier IntentClassifier,
	scorer SentimentScorer,
	drafter ReplyDrafter,
	logger *slog.Logger,
) *ProcessEmailUseCase {
	return &ProcessEmailUseCase{
		tx:         tx,
		resolver:   resolver,
		classifier: classifier,
		scorer:     scorer,
		drafter:    drafter,
		logger:     logger,
	}
}

func (uc *ProcessEmailUseCase) Execute(ctx context.Context, input ProcessEmailInput) (*ProcessEmailOutput, error) {
	if errs := ValidateProcessEmailInput(input); len(errs) > 0 {
		return nil, errs
	}

	var output ProcessEmailOutput

	err := uc.tx.WithinTx(ctx, func(ctx context.Context, s Stores) error {
		if input.MessageID != "" {
			inserted, err := s.ProcessedEmails.InsertIfAbsent(ctx, input.MessageID)
			if err != nil {
				return &TechnicalError{Code: "DEDUP_FAILED", Message: "failed to record message id", Err: err}
			}
			if !inserted {
				output = ProcessEmailOutput{Skipped: true}
				return nil
			}
		}

		text := input.Subject + "\n" + input.Body
		classification := uc.classifier.Classify(text)
		sentiment := uc.scorer.Score(text)

		contact, company, err := uc.resolver.Resolve(ctx, s, ResolveInput{
			Email:           strings.TrimSpace(input.FromEmail),
			Name:            input.FromName,
			Phone:           input.Phone,
			Location:        input.Location,
			ProductInterest: input.ProductInterest,
			CompanyNameHint: input.CompanyNameHint,
			WebsiteHint:     input.WebsiteHint,
		})
		if err != nil {
			if IsValidationError(err) {
				return err
			}
			return &TechnicalError{Code: "RESOLVE_FAILED", Message: "failed to resolve sender", Err: err}
		}

		draft := uc.drafter.Draft(contact.Name, classification.Intent)

		output = ProcessEmailOutput{
			Intent:     classification.Intent,
			Confidence: classification.Confidence,
			Sentiment:  sentiment,
			DraftReply: draft,
			ContactID:  contact.ID,
			CompanyID:  company.ID,
		}

		if classification.Intent == entity.IntentSupport {
			ticket, err := entity.NewSupportTicket(contact.ID, company.ID, input.Subject, input.Body)
			if err != nil {
				return err
			}
			ticket.Intent = classification.Intent
			ticket.Confidence = classification.Confidence
			ticket.SentimentScore = sentiment.Score
			ticket.SentimentLabel = sentiment.Label
			ticket.AIReply = draft

			if err := s.Tickets.Insert(ctx, ticket); err != nil {
				return &TechnicalError{Code: "TICKET_INSERT_FAILED", Message: "failed to save support ticket", Err: err}
			}

			output.Type = RecordTypeSupportTicket
			output.ID = ticket.ID
			output.Status = ticket.Status
			output.Priority = ticket.Priority
			return nil
		}

		enquiry, err := entity.NewEnquiry(contact.ID, company.ID, input.Subject, input.Body)
		if err != nil {
			return err
		}
		enquiry.Intent = classification.Intent
		enquiry.Confidence = classification.Confidence
		enquiry.SentimentScore = sentiment.Score
		enquiry.SentimentLabel = sentiment.Label
		enquiry.AIReply = draft

		if err := s.Enquiries.Insert(ctx, enquiry); err != nil {
			return &TechnicalError{Code: "ENQUIRY_INSERT_FAILED", Message: "failed to save enquiry", Err: err}
		}

		output.Type = RecordTypeEnquiry
		output.ID = enquiry.ID
		output.Status = enquiry.Status
		return nil
	})
	if err != nil {
		return nil, err
	}

	if output.Skipped {
		uc.logger.Info("duplicate email skipped",
			"message_id", input.MessageID,
			"source", input.Source,
		)
		return &output, nil
	}

	uc.logger.Info("email processed",
		"type", output.Type,
		"record_id", output.ID,
		"intent", output.Intent,
		"confidence", output.Confidence,
		"sentiment", output.Sentiment.Label,
		"contact_id", output.ContactID,
		"source", input.Source,
	)

	return &output, nil
}
