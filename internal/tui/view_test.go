package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mkrsna/nse-advisor/internal/recommend"
)

func sampleStocks() []recommend.StockRecommendation {
	return []recommend.StockRecommendation{{
		Name:         "Acme Corp",
		Ticker:       "ACME",
		Action:       "BUY",
		TargetPrice:  "120",
		CurrentPrice: "100",
		Trend:        "up",
		Sentiment:    "positive",
		Reason:       "strong earnings",
	}}
}

func TestRenderStocksShowsEveryField(t *testing.T) {
	out := RenderStocks(NewStyles(), sampleStocks())

	for _, want := range []string{"Acme Corp", "ACME", "BUY", "120", "100", "up", "positive", "strong earnings"} {
		assert.Contains(t, out, want)
	}
}

func TestRenderStocksIsPure(t *testing.T) {
	st := NewStyles()
	stocks := sampleStocks()

	assert.Equal(t, RenderStocks(st, stocks), RenderStocks(st, stocks))
}

func TestRenderStocksEmptyRendersNoCards(t *testing.T) {
	st := NewStyles()
	assert.Empty(t, RenderStocks(st, nil))
	assert.Empty(t, RenderStocks(st, []recommend.StockRecommendation{}))
}

func TestRenderStocksPreservesGivenOrder(t *testing.T) {
	stocks := []recommend.StockRecommendation{
		{Name: "Zeta Ltd", Ticker: "ZETA"},
		{Name: "Alpha Ltd", Ticker: "ALPHA"},
	}
	out := RenderStocks(NewStyles(), stocks)

	assert.Less(t, strings.Index(out, "Zeta Ltd"), strings.Index(out, "Alpha Ltd"))
}

func TestRenderStocksUnknownActionStillRenders(t *testing.T) {
	stocks := []recommend.StockRecommendation{{Name: "Odd Co", Ticker: "ODD", Action: "ACCUMULATE"}}
	out := RenderStocks(NewStyles(), stocks)

	assert.Contains(t, out, "Odd Co")
	assert.Contains(t, out, "ACCUMULATE")
}

func TestActionStyleVocabulary(t *testing.T) {
	st := NewStyles()

	assert.Equal(t, st.ActionBuy, st.ActionStyle("BUY"))
	assert.Equal(t, st.ActionBuy, st.ActionStyle("buy"))
	assert.Equal(t, st.ActionSell, st.ActionStyle("Sell"))
	assert.Equal(t, st.ActionHold, st.ActionStyle("HOLD"))
	assert.Equal(t, st.ActionPlain, st.ActionStyle("ACCUMULATE"))
	assert.Equal(t, st.ActionPlain, st.ActionStyle(""))
}

func TestRenderTimelinePlaceholderWhenEmpty(t *testing.T) {
	st := NewStyles()

	assert.Contains(t, RenderTimeline(st, nil), noTimelinePlaceholder)
	assert.Contains(t, RenderTimeline(st, []recommend.TimelineEvent{}), noTimelinePlaceholder)
}

func TestRenderTimelineShowsEventsInArrivalOrder(t *testing.T) {
	events := []recommend.TimelineEvent{
		{Step: 2, Role: "researcher", Agent: "MarketAgent", Content: "Checked prices"},
		{Step: 1, Role: "analyst", Agent: "FundamentalsAgent", Content: "Reviewed earnings"},
	}
	out := RenderTimeline(NewStyles(), events)

	// Arrival order, never re-sorted by step.
	assert.Less(t, strings.Index(out, "MarketAgent"), strings.Index(out, "FundamentalsAgent"))
	assert.Contains(t, out, "Step 2")
	assert.Contains(t, out, "Step 1")
	assert.Contains(t, out, "Reviewed earnings")
	assert.NotContains(t, out, noTimelinePlaceholder)
}

func TestRenderTimelineLabelOptional(t *testing.T) {
	st := NewStyles()

	withLabel := RenderTimeline(st, []recommend.TimelineEvent{
		{Step: 1, Role: "analyst", Agent: "A", Content: "c", Label: "Stock selection"},
	})
	assert.Contains(t, withLabel, "Stock selection")

	withoutLabel := RenderTimeline(st, []recommend.TimelineEvent{
		{Step: 1, Role: "analyst", Agent: "A", Content: "c"},
	})
	assert.Contains(t, withoutLabel, "Step 1")
	assert.Contains(t, withoutLabel, "c")
}

func TestViewScenarioSuccessfulSubmission(t *testing.T) {
	ctrl := fakeController(t)
	ctrl.Settle(recommend.Settlement{Seq: 1, Result: recommend.Result{
		Stocks: sampleStocks(),
		Timeline: []recommend.TimelineEvent{
			{Step: 1, Role: "analyst", Agent: "FundamentalsAgent", Content: "Reviewed earnings"},
		},
	}})

	m := New(ctrl)
	view := m.View()

	assert.Contains(t, view, "Acme Corp")
	assert.Contains(t, view, "Step 1")
	assert.Contains(t, view, "FundamentalsAgent")
	assert.Contains(t, view, "Reviewed earnings")
}

func TestViewTimelineAbsentShowsPlaceholderNextToStocks(t *testing.T) {
	ctrl := fakeController(t)
	ctrl.Settle(recommend.Settlement{Seq: 1, Result: recommend.Result{Stocks: sampleStocks()}})

	view := New(ctrl).View()

	assert.Contains(t, view, "Acme Corp")
	assert.Contains(t, view, noTimelinePlaceholder)
}
