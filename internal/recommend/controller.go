package recommend

import "context"

// Recommender is the outbound half of a submission. *Client implements it.
type Recommender interface {
	Recommend(ctx context.Context, query string, intent Intent) (Result, error)
}

// Controller owns the editable query, the submission lifecycle, and the last
// settled result. All mutation happens on the owner's goroutine: BeginSubmit
// and Settle bracket a request whose blocking part runs in the returned
// thunk, so a UI event loop can run it off-thread and feed the settlement
// back in.
//
// Overlapping submissions are permitted. There is no cancellation: every
// issued submission runs to completion and its settlement is installed
// unconditionally, so whichever arrives last wins.
type Controller struct {
	client Recommender
	logger Logger

	query  Query
	phase  Phase
	result Result
	seq    int
}

// Logger is the part of *logger.Logger the controller uses. Failures are
// logged for diagnostics only, never surfaced to the user.
type Logger interface {
	Error(msg string, args ...any)
	Debug(msg string, args ...any)
}

func NewController(client Recommender, log Logger) *Controller {
	return &Controller{
		client: client,
		logger: log,
		query:  Query{Intent: IntentBuy},
	}
}

func (c *Controller) Query() Query   { return c.query }
func (c *Controller) Phase() Phase   { return c.phase }
func (c *Controller) Result() Result { return c.result }

func (c *Controller) Loading() bool { return c.phase == PhaseLoading }

// SetQueryText replaces the query text unconditionally. The text stays
// editable while a submission is in flight; an in-flight request keeps the
// text it was issued with.
func (c *Controller) SetQueryText(text string) {
	c.query.Text = text
}

// ToggleIntent flips buy/sell and never touches the query text.
func (c *Controller) ToggleIntent() {
	c.query.Intent = c.query.Intent.Toggle()
}

// Settlement carries the outcome of one submission back to Settle.
type Settlement struct {
	Seq    int
	Result Result
}

// BeginSubmit transitions to Loading and returns the blocking part of the
// submission. The thunk issues exactly one request and never fails: a
// transport error, non-2xx status, or undecodable body all collapse to the
// empty Result, logged for diagnostics only. Empty query text is forwarded
// as-is.
func (c *Controller) BeginSubmit(ctx context.Context) func() Settlement {
	c.phase = PhaseLoading
	c.seq++
	seq := c.seq
	text, intent := c.query.Text, c.query.Intent

	return func() Settlement {
		res, err := c.client.Recommend(ctx, text, intent)
		if err != nil {
			c.logger.Error("recommendation request failed", "seq", seq, "error", err)
			return Settlement{Seq: seq, Result: Result{
				Stocks:   []StockRecommendation{},
				Timeline: []TimelineEvent{},
			}}
		}
		return Settlement{Seq: seq, Result: res}
	}
}

// Settle installs a settlement wholesale and leaves the controller
// non-loading. A settlement from a superseded submission still installs
// (last arrival wins); it is only noted for diagnostics.
func (c *Controller) Settle(s Settlement) {
	if s.Seq != c.seq {
		c.logger.Debug("stale submission settled", "seq", s.Seq, "current", c.seq)
	}
	c.result = s.Result
	c.phase = PhaseSettled
}

// Submit runs one full submission synchronously: Loading, one request,
// Settled. Convenience for non-interactive callers.
func (c *Controller) Submit(ctx context.Context) {
	settle := c.BeginSubmit(ctx)
	c.Settle(settle())
}
