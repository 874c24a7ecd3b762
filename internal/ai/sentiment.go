package ai

import "strings"

const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Normalization: raw lexicon sums are divided by this constant before
// clamping to [-1, 1], so a handful of strong words saturates the scale.
const sentimentScale = 10.0

// Label thresholds on the normalized score.
const sentimentThreshold = 0.1

type Sentiment struct {
	Score float64 `json:"score"`
	Label string  `json:"label"`
}

// Scorer sums per-word valences from a fixed lexicon. Classification quality
// is best-effort; it never fails, degrading to neutral for unknown or empty
// input.
type Scorer struct {
	lexicon map[string]int
}

func NewScorer() *Scorer {
	return &Scorer{lexicon: defaultLexicon}
}

func (s *Scorer) Score(text string) Sentiment {
	if strings.TrimSpace(text) == "" {
		return Sentiment{Score: 0, Label: SentimentNeutral}
	}

	raw := 0
	for _, word := range tokenize(text) {
		raw += s.lexicon[word]
	}

	score := clamp(float64(raw)/sentimentScale, -1, 1)

	label := SentimentNeutral
	switch {
	case score > sentimentThreshold:
		label = SentimentPositive
	case score < -sentimentThreshold:
		label = SentimentNegative
	}

	return Sentiment{Score: score, Label: label}
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != '\''
	})
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
