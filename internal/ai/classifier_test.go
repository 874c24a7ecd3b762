package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xavierca1/inbox-crm/internal/entity"
)

func TestClassifyEmptyText(t *testing.T) {
	c := NewDefaultClassifier()

	result := c.Classify("   \n\t  ")

	assert.Equal(t, entity.IntentOther, result.Intent)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestClassifySupportWinsOnHigherScore(t *testing.T) {
	c := NewClassifier(
		[]string{"broken", "crash"},
		[]string{"pricing", "demo"},
	)

	result := c.Classify("The app is broken and we get a crash on startup")

	assert.Equal(t, entity.IntentSupport, result.Intent)
	assert.Equal(t, 100.0, result.Confidence)
}

func TestClassifyTieGoesToEnquiry(t *testing.T) {
	c := NewClassifier(
		[]string{"broken", "crash"},
		[]string{"pricing", "demo"},
	)

	// One hit each side. Support must be strictly ahead to win.
	result := c.Classify("the pricing page is broken")

	assert.Equal(t, entity.IntentEnquiry, result.Intent)
	assert.Equal(t, 50.0, result.Confidence)
}

func TestClassifyNoKeywordsIsOther(t *testing.T) {
	c := NewDefaultClassifier()

	result := c.Classify("Looking forward to seeing you at the conference next week")

	assert.Equal(t, entity.IntentOther, result.Intent)
	assert.Equal(t, 0.0, result.Confidence)
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	c := NewClassifier([]string{"refund"}, nil)

	result := c.Classify("I WANT A REFUND")

	assert.Equal(t, entity.IntentSupport, result.Intent)
}

func TestClassifyKeywordCountsOncePerMessage(t *testing.T) {
	c := NewClassifier(
		[]string{"broken", "crash", "error", "bug"},
		[]string{"pricing"},
	)

	// "broken" three times is still one match out of four keywords.
	result := c.Classify("broken broken broken")

	assert.Equal(t, entity.IntentSupport, result.Intent)
	assert.Equal(t, 25.0, result.Confidence)
}

func TestClassifyConfidenceRoundsToOneDecimal(t *testing.T) {
	c := NewClassifier(
		[]string{"a1x", "b2x", "c3x"},
		[]string{"pricing"},
	)

	// 1/3 coverage = 33.333... -> 33.3
	result := c.Classify("we hit a1x today")

	assert.Equal(t, entity.IntentSupport, result.Intent)
	assert.Equal(t, 33.3, result.Confidence)
}

func TestClassifyDefaultKeywords(t *testing.T) {
	c := NewDefaultClassifier()

	tests := []struct {
		name string
		text string
		want entity.Intent
	}{
		{"crash report", "The app crashes with an error code every morning", entity.IntentSupport},
		{"pricing question", "What is the pricing for the enterprise plan?", entity.IntentEnquiry},
		{"demo request", "We are interested in a demo of your product", entity.IntentEnquiry},
		{"small talk", "Happy new year to the whole team!", entity.IntentOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := c.Classify(tt.text)
			assert.Equal(t, tt.want, result.Intent)
		})
	}
}
