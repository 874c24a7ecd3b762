package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateProcessEmailInputValid(t *testing.T) {
	errs := ValidateProcessEmailInput(ProcessEmailInput{
		FromEmail: "jane@acme.com",
		Subject:   "Pricing question",
		Body:      "How much does the enterprise plan cost?",
	})

	assert.Empty(t, errs)
}

func TestValidateProcessEmailInputMissingEverything(t *testing.T) {
	errs := ValidateProcessEmailInput(ProcessEmailInput{})

	assert.Len(t, errs, 3)
	assert.Contains(t, errs.Error(), "from_email")
	assert.Contains(t, errs.Error(), "subject")
	assert.Contains(t, errs.Error(), "body")
}

func TestValidateProcessEmailInputBadAddress(t *testing.T) {
	errs := ValidateProcessEmailInput(ProcessEmailInput{
		FromEmail: "not-an-address",
		Subject:   "Hi",
		Body:      "Hello",
	})

	assert.Len(t, errs, 1)
	assert.Equal(t, "from_email", errs[0].Field)
	assert.Equal(t, "is invalid", errs[0].Message)
}

func TestValidateProcessEmailInputBlankFieldsCount(t *testing.T) {
	errs := ValidateProcessEmailInput(ProcessEmailInput{
		FromEmail: "jane@acme.com",
		Subject:   "   ",
		Body:      "\n\t",
	})

	assert.Len(t, errs, 2)
}

func TestValidateReplyText(t *testing.T) {
	assert.Empty(t, ValidateReplyText("Thanks, here is the answer."))
	assert.Len(t, ValidateReplyText("   "), 1)
	assert.Len(t, ValidateReplyText(""), 1)
}
