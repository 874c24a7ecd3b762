// Package ai implements the rule-based processing core: keyword intent
// detection, templated reply drafting and lexicon sentiment scoring. No
// external model calls, everything is deterministic except the drafter's
// injected randomness.
package ai

import (
	"math"
	"strings"

	"github.com/xavierca1/inbox-crm/internal/entity"
)

// Classification is the outcome of intent detection. Confidence measures
// keyword coverage of the winning list (0-100, one decimal), not a calibrated
// probability: a single unambiguous keyword still scores low.
type Classification struct {
	Intent     entity.Intent `json:"intent"`
	Confidence float64       `json:"confidence"`
}

// Classifier detects intent by counting keyword hits. A keyword counts once
// per message no matter how often it occurs.
type Classifier struct {
	supportKeywords []string
	enquiryKeywords []string
}

func NewClassifier(supportKeywords, enquiryKeywords []string) *Classifier {
	return &Classifier{
		supportKeywords: supportKeywords,
		enquiryKeywords: enquiryKeywords,
	}
}

func NewDefaultClassifier() *Classifier {
	return NewClassifier(DefaultSupportKeywords, DefaultEnquiryKeywords)
}

// Classify is pure and deterministic: the same text always yields the same
// result. Empty input classifies as other with zero confidence.
func (c *Classifier) Classify(text string) Classification {
	if strings.TrimSpace(text) == "" {
		return Classification{Intent: entity.IntentOther}
	}

	lower := strings.ToLower(text)

	supportScore := countMatches(lower, c.supportKeywords)
	enquiryScore := countMatches(lower, c.enquiryKeywords)

	switch {
	case supportScore > enquiryScore && supportScore > 0:
		return Classification{
			Intent:     entity.IntentSupport,
			Confidence: coverage(supportScore, len(c.supportKeywords)),
		}
	case enquiryScore > 0:
		return Classification{
			Intent:     entity.IntentEnquiry,
			Confidence: coverage(enquiryScore, len(c.enquiryKeywords)),
		}
	default:
		return Classification{Intent: entity.IntentOther}
	}
}

func countMatches(lower string, keywords []string) int {
	count := 0
	for _, keyword := range keywords {
		if strings.Contains(lower, keyword) {
			count++
		}
	}
	return count
}

func coverage(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	pct := math.Min(float64(matched)/float64(total), 1.0) * 100
	return math.Round(pct*10) / 10
}
