package recommend

// Intent is the user's directional stance qualifying a query. Its string form
// is the wire value sent to the backend.
type Intent string

const (
	IntentBuy  Intent = "buy"
	IntentSell Intent = "sell"
)

func (i Intent) Toggle() Intent {
	if i == IntentSell {
		return IntentBuy
	}
	return IntentSell
}

// Phase is the submission lifecycle state. Idle and Settled are both
// non-loading; the distinction only gates the submit affordance.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSettled:
		return "settled"
	default:
		return "idle"
	}
}

// Query is the user-editable input, mutable until submission.
type Query struct {
	Text   string
	Intent Intent
}

// StockRecommendation is one pick in a settled result. Prices are
// pre-formatted display strings and are never parsed here; Action is an
// opaque label (typically BUY/SELL/HOLD) used only for styling.
type StockRecommendation struct {
	Name         string `json:"name"`
	Ticker       string `json:"ticker"`
	Action       string `json:"action"`
	TargetPrice  string `json:"targetPrice"`
	CurrentPrice string `json:"currentPrice"`
	Trend        string `json:"trend"`
	Sentiment    string `json:"sentiment"`
	Reason       string `json:"reason"`
}

// TimelineEvent is one step of the backend's agent trace, displayed in
// arrival order. Step is shown as given, never re-sorted.
type TimelineEvent struct {
	Step    int    `json:"step"`
	Role    string `json:"role"`
	Agent   string `json:"agent"`
	Content string `json:"content"`
	Label   string `json:"label,omitempty"`
}

// Result is the settled snapshot of one submission. A nil Stocks or Timeline
// means the backend omitted the field; rendering treats both as empty.
type Result struct {
	Stocks   []StockRecommendation `json:"stocks"`
	Timeline []TimelineEvent       `json:"timeline,omitempty"`
}
