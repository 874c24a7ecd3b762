package ai

// Valence lexicon for bag-of-words sentiment scoring, AFINN-style: each word
// carries an integer weight in [-5, 5]. Trimmed to the vocabulary that shows
// up in customer email; unknown words score zero.
var defaultLexicon = map[string]int{
	// positive
	"amazing":      4,
	"awesome":      4,
	"best":         3,
	"brilliant":    4,
	"delighted":    3,
	"excellent":    3,
	"exciting":     3,
	"fantastic":    4,
	"glad":         3,
	"good":         3,
	"great":        3,
	"happy":        3,
	"helpful":      2,
	"impressed":    3,
	"interested":   2,
	"love":         3,
	"loved":        3,
	"nice":         3,
	"perfect":      3,
	"pleased":      3,
	"recommend":    2,
	"satisfied":    2,
	"smooth":       2,
	"superb":       5,
	"thank":        2,
	"thanks":       2,
	"useful":       2,
	"wonderful":    4,
	"appreciate":   2,
	"appreciated":  2,
	"easy":         1,
	"fast":         1,
	"reliable":     2,
	"valuable":     2,
	"win":          4,
	"works":        1,

	// negative
	"angry":         -3,
	"annoyed":       -2,
	"annoying":      -2,
	"awful":         -3,
	"bad":           -3,
	"broken":        -1,
	"bug":           -2,
	"bugs":          -2,
	"cancel":        -1,
	"cancelled":     -1,
	"complaint":     -2,
	"crash":         -2,
	"crashed":       -2,
	"damaged":       -3,
	"disappointed":  -2,
	"disappointing": -2,
	"disaster":      -2,
	"dissatisfied":  -2,
	"down":          -1,
	"error":         -2,
	"errors":        -2,
	"fail":          -2,
	"failed":        -2,
	"failure":       -2,
	"frustrated":    -2,
	"frustrating":   -2,
	"hate":          -3,
	"horrible":      -3,
	"impossible":    -2,
	"lost":          -3,
	"missing":       -2,
	"outage":        -2,
	"pathetic":      -2,
	"poor":          -2,
	"problem":       -2,
	"problems":      -2,
	"refund":        -2,
	"rejected":      -1,
	"ridiculous":    -3,
	"sad":           -2,
	"slow":          -2,
	"stuck":         -2,
	"terrible":      -3,
	"trouble":       -2,
	"unable":        -2,
	"unacceptable":  -2,
	"unhappy":       -2,
	"unreliable":    -2,
	"unusable":      -3,
	"urgent":        -2,
	"useless":       -2,
	"waste":         -1,
	"worst":         -3,
	"wrong":         -2,
}
