package agents

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkrsna/nse-advisor/internal/logger"
	"github.com/mkrsna/nse-advisor/internal/market"
	"github.com/mkrsna/nse-advisor/internal/recommend"
)

// scriptedLLM answers stage calls in order; the last entry answers the
// formatting round.
type scriptedLLM struct {
	answers []string
	calls   []struct{ system, user string }
	failAt  int // 1-based call number to fail on, 0 = never
}

func (s *scriptedLLM) Complete(_ context.Context, system, user string) (string, error) {
	s.calls = append(s.calls, struct{ system, user string }{system, user})
	n := len(s.calls)
	if s.failAt != 0 && n == s.failAt {
		return "", errors.New("model unavailable")
	}
	if n > len(s.answers) {
		return "", errors.New("scripted llm exhausted")
	}
	return s.answers[n-1], nil
}

type stubQuotes struct {
	got []string
}

func (s *stubQuotes) Snapshot(_ context.Context, tickers []string) []market.Quote {
	s.got = tickers
	return []market.Quote{{Ticker: "ACME", Last: 100, Change7d: 2.5, Change30d: 8.1, Volume: 12345, Currency: "INR"}}
}

func testPipeline(llm Completer, quotes QuoteSource) *Pipeline {
	return NewPipeline(llm, quotes, logger.NewWithWriter(io.Discard, "error"))
}

func happyAnswers() []string {
	return []string{
		"1. Acme Corp (ACME): liquid and trending.\n2. Beta Ltd (BETA): cheap.\nTICKERS: ACME, BETA",
		"ACME at 100 INR, up over 7 days. BETA at 40 INR, flat. Volume normal.",
		"ACME: positive coverage. BETA: neutral.",
		"ACME: Buy, target 120. BETA: Hold, target 42.",
		acmeJSON,
	}
}

func TestPipelineHappyPath(t *testing.T) {
	llm := &scriptedLLM{answers: happyAnswers()}
	quotes := &stubQuotes{}

	res, err := testPipeline(llm, quotes).Run(context.Background(), "2 short term NSE stocks", recommend.IntentBuy)
	require.NoError(t, err)

	require.Len(t, res.Stocks, 1)
	assert.Equal(t, "ACME", res.Stocks[0].Ticker)

	require.Len(t, res.Timeline, 4)
	wantAgents := []string{"stock_finder_agent", "market_data_agent", "news_analyst_agent", "price_recommender_agent"}
	for i, ev := range res.Timeline {
		assert.Equal(t, i+1, ev.Step)
		assert.Equal(t, wantAgents[i], ev.Agent)
		assert.NotEmpty(t, ev.Role)
		assert.NotEmpty(t, ev.Label)
		assert.NotEmpty(t, ev.Content)
	}

	// 4 stages + 1 formatting round.
	assert.Len(t, llm.calls, 5)
}

func TestPipelineFeedsQuotesToMarketStage(t *testing.T) {
	llm := &scriptedLLM{answers: happyAnswers()}
	quotes := &stubQuotes{}

	_, err := testPipeline(llm, quotes).Run(context.Background(), "q", recommend.IntentBuy)
	require.NoError(t, err)

	assert.Equal(t, []string{"ACME", "BETA"}, quotes.got)
	assert.Contains(t, llm.calls[1].user, "Live quote snapshot")
	assert.Contains(t, llm.calls[1].user, "ACME")
}

func TestPipelineWorksWithoutQuoteSource(t *testing.T) {
	llm := &scriptedLLM{answers: happyAnswers()}

	res, err := testPipeline(llm, nil).Run(context.Background(), "q", recommend.IntentBuy)
	require.NoError(t, err)

	assert.NotContains(t, llm.calls[1].user, "Live quote snapshot")
	assert.Len(t, res.Timeline, 4)
}

func TestPipelineThreadsIntent(t *testing.T) {
	llm := &scriptedLLM{answers: happyAnswers()}

	_, err := testPipeline(llm, nil).Run(context.Background(), "exit my positions", recommend.IntentSell)
	require.NoError(t, err)

	assert.Contains(t, llm.calls[0].user, "exit my positions")
	assert.Contains(t, llm.calls[0].user, "SELL")
}

func TestPipelineKeepsProtocolLineOutOfTimeline(t *testing.T) {
	llm := &scriptedLLM{answers: happyAnswers()}

	res, err := testPipeline(llm, nil).Run(context.Background(), "q", recommend.IntentBuy)
	require.NoError(t, err)

	assert.False(t, strings.Contains(res.Timeline[0].Content, "TICKERS:"))
	assert.Contains(t, res.Timeline[0].Content, "Acme Corp")
}

func TestPipelineStageFailure(t *testing.T) {
	llm := &scriptedLLM{answers: happyAnswers(), failAt: 2}

	_, err := testPipeline(llm, nil).Run(context.Background(), "q", recommend.IntentBuy)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "market_data_agent")
}

func TestPipelineEmptyAnswerYieldsEmptyStocks(t *testing.T) {
	answers := happyAnswers()
	answers[4] = "[]"
	llm := &scriptedLLM{answers: answers}

	res, err := testPipeline(llm, nil).Run(context.Background(), "q", recommend.IntentBuy)
	require.NoError(t, err)

	assert.NotNil(t, res.Stocks)
	assert.Empty(t, res.Stocks)
	assert.Len(t, res.Timeline, 4)
}
