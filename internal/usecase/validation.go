package usecase

import (
	"net/mail"
	"strings"
)

// ValidateProcessEmailInput rejects intake before any side effect: no ledger
// entry, no contact, no record may exist for an invalid submission.
func ValidateProcessEmailInput(input ProcessEmailInput) ValidationErrors {
	var errs ValidationErrors

	if strings.TrimSpace(input.FromEmail) == "" {
		errs = append(errs, ValidationError{"from_email", "is required"})
	} else if _, err := mail.ParseAddress(input.FromEmail); err != nil {
		errs = append(errs, ValidationError{"from_email", "is invalid"})
	}

	if strings.TrimSpace(input.Subject) == "" {
		errs = append(errs, ValidationError{"subject", "is required"})
	}

	if strings.TrimSpace(input.Body) == "" {
		errs = append(errs, ValidationError{"body", "is required"})
	}

	return errs
}

// ValidateReplyText guards the human reply actions.
func ValidateReplyText(replyText string) ValidationErrors {
	if strings.TrimSpace(replyText) == "" {
		return ValidationErrors{{"reply", "is required"}}
	}
	return nil
}
