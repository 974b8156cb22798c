package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkrsna/nse-advisor/internal/logger"
	"github.com/mkrsna/nse-advisor/internal/market"
	"github.com/mkrsna/nse-advisor/internal/recommend"
)

// Completer is one chat completion round. *GroqClient implements it.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// QuoteSource supplies live quotes to the market-data stage. *market.Client
// implements it; nil disables live data and the stage falls back to model
// knowledge.
type QuoteSource interface {
	Snapshot(ctx context.Context, tickers []string) []market.Quote
}

type stage struct {
	agent string
	role  string
	label string
	sys   string
}

// The four stages mirror the advisory flow: pick stocks, check the market,
// read the mood, make the call. Order is fixed, each runs once.
var stages = []stage{
	{agent: "stock_finder_agent", role: "analyst", label: "Stock selection", sys: promptStockFinder},
	{agent: "market_data_agent", role: "researcher", label: "Market data", sys: promptMarketData},
	{agent: "news_analyst_agent", role: "analyst", label: "News & sentiment", sys: promptNewsAnalyst},
	{agent: "price_recommender_agent", role: "strategist", label: "Final call", sys: promptPriceRecommender},
}

type Pipeline struct {
	llm    Completer
	quotes QuoteSource
	logger *logger.Logger
}

func NewPipeline(llm Completer, quotes QuoteSource, log *logger.Logger) *Pipeline {
	return &Pipeline{
		llm:    llm,
		quotes: quotes,
		logger: log,
	}
}

// Run drives the four stages over one shared transcript and formats the
// outcome as a Result. Each stage contributes one timeline event; the final
// formatting round is plumbing and does not appear in the timeline.
func (p *Pipeline) Run(ctx context.Context, query string, intent recommend.Intent) (recommend.Result, error) {
	userCtx := buildUserContext(query, intent)
	transcript := []string{userCtx}
	timeline := make([]recommend.TimelineEvent, 0, len(stages))

	var tickers []string

	for i, st := range stages {
		user := buildTranscript(transcript)

		if st.agent == "market_data_agent" && p.quotes != nil && len(tickers) > 0 {
			if block := buildQuoteBlock(p.quotes.Snapshot(ctx, tickers)); block != "" {
				user += "\n\n" + block
			}
		}

		p.logger.Info("running agent", "agent", st.agent, "step", i+1)
		answer, err := p.llm.Complete(ctx, st.sys, user)
		if err != nil {
			return recommend.Result{}, fmt.Errorf("%s: %w", st.agent, err)
		}

		if st.agent == "stock_finder_agent" {
			tickers = extractTickers(answer)
			// The protocol line is plumbing, keep it out of the timeline.
			answer = tickersLineRegex.ReplaceAllString(answer, "")
			answer = strings.TrimSpace(answer)
		}

		transcript = append(transcript, fmt.Sprintf("%s:\n%s", st.agent, answer))
		timeline = append(timeline, recommend.TimelineEvent{
			Step:    i + 1,
			Role:    st.role,
			Agent:   st.agent,
			Content: answer,
			Label:   st.label,
		})
	}

	raw, err := p.llm.Complete(ctx, promptFormatter, buildTranscript(transcript))
	if err != nil {
		return recommend.Result{}, fmt.Errorf("format answer: %w", err)
	}

	stocks, err := ParseRecommendations(raw)
	if err != nil {
		return recommend.Result{}, fmt.Errorf("parse recommendations: %w", err)
	}
	if stocks == nil {
		stocks = []recommend.StockRecommendation{}
	}

	p.logger.Info("pipeline finished", "stocks", len(stocks), "events", len(timeline))
	return recommend.Result{Stocks: stocks, Timeline: timeline}, nil
}
