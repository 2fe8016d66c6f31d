package domain

// TodayQueueItemType identifies the signal source an item came from
type TodayQueueItemType string

const (
	TodayQueueOverdueFollowup TodayQueueItemType = "overdue_followup"
	TodayQueueIdleLead        TodayQueueItemType = "idle_lead"
	TodayQueueUnopenedQuote   TodayQueueItemType = "unopened_quote"
	TodayQueueHighValueLead   TodayQueueItemType = "high_value_lead"
	TodayQueuePriceResistance TodayQueueItemType = "price_resistance"
)

// Base priority bands, descending. Within a band items get band - index,
// in the source's own query order. Result caps stay below the 100-wide
// band spacing so bands never overlap.
const (
	PriorityBandOverdueFollowup = 1000
	PriorityBandIdleLead        = 800
	PriorityBandUnopenedQuote   = 700
	PriorityBandHighValueLead   = 600
	PriorityBandPriceResistance = 500
)

// Per-source result caps
const (
	IdleLeadLimit        = 10
	UnopenedQuoteLimit   = 10
	HighValueLeadLimit   = 5
	PriceResistanceLimit = 5
)

// HighValueQuoteThreshold qualifies a lead as high-value
const HighValueQuoteThreshold = 500.0

// TodayQueueItem is an ephemeral next-best-action entry, recomputed on
// every request and never persisted.
type TodayQueueItem struct {
	ID        string                 `json:"id"`
	Type      TodayQueueItemType     `json:"type"`
	Priority  int                    `json:"priority"`
	Title     string                 `json:"title"`
	Subtitle  string                 `json:"subtitle"`
	ActionURL string                 `json:"actionUrl"`
	Metadata  map[string]interface{} `json:"metadata"`
}
