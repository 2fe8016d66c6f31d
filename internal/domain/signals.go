package domain

import "strings"

// Message intents returned by ExtractIntent
const (
	IntentPricing = "Pricing inquiry"
	IntentBooking = "Booking request"
	IntentService = "Service inquiry"
	IntentGeneral = "General inquiry"
)

// StageSignal is the outcome of scanning a message for win/loss keywords
type StageSignal string

const (
	StageSignalWon  StageSignal = "WON"
	StageSignalLost StageSignal = "LOST"
	StageSignalNone StageSignal = ""
)

// keywordRule maps a keyword set to a classification result. Rules are
// evaluated in declaration order, first match wins, so precedence is the
// table order and nothing else.
type keywordRule struct {
	keywords []string
	result   string
}

// Intent precedence: pricing > booking > service. Cross-category
// ambiguity resolves to the earlier rule.
var intentRules = []keywordRule{
	{keywords: []string{"price", "cost", "quote"}, result: IntentPricing},
	{keywords: []string{"book", "schedule", "appointment"}, result: IntentBooking},
	{keywords: []string{"service", "help"}, result: IntentService},
}

// priceResistanceKeywords are matched as substrings of the lower-cased
// text, not as exact words.
var priceResistanceKeywords = []string{
	"too expensive",
	"expensive",
	"discount",
	"cheaper",
	"cheap",
	"another quote",
	"better price",
	"lower price",
	"price too high",
	"can't afford",
	"budget",
}

// Stage signal precedence: WON is listed first and wins when a message
// matches both keyword sets. This tie-break is deterministic but
// arbitrary; flagged for product clarification.
var stageSignalRules = []struct {
	keywords []string
	result   StageSignal
}{
	{keywords: []string{"yes", "okay", "ok", "done", "book", "confirm", "agreed", "accepted"}, result: StageSignalWon},
	{keywords: []string{"no", "not now", "later", "too costly", "can't", "won't work"}, result: StageSignalLost},
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// ExtractIntent classifies free text into a coarse inquiry category.
// Total over any input; empty text yields the general fallback.
func ExtractIntent(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range intentRules {
		if matchesAny(lower, rule.keywords) {
			return rule.result
		}
	}
	return IntentGeneral
}

// DetectPriceResistance reports whether the text contains any
// price-resistance keyword.
func DetectPriceResistance(text string) bool {
	return matchesAny(strings.ToLower(text), priceResistanceKeywords)
}

// DetectStageSignal scans for win/loss keywords and returns the matched
// signal, or StageSignalNone.
func DetectStageSignal(text string) StageSignal {
	lower := strings.ToLower(text)
	for _, rule := range stageSignalRules {
		if matchesAny(lower, rule.keywords) {
			return rule.result
		}
	}
	return StageSignalNone
}
