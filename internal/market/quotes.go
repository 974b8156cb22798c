package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/mkrsna/nse-advisor/internal/config"
	"github.com/mkrsna/nse-advisor/internal/logger"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Quote is a lightweight NSE snapshot fed to the market-data agent.
type Quote struct {
	Ticker    string
	Last      float64
	Change7d  float64 // percent
	Change30d float64
	Volume    int64
	Currency  string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	return &Client{
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: cfg.QuoteTimeout()},
		logger:     log,
	}
}

type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				Currency           string  `json:"currency"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
			} `json:"meta"`
			Indicators struct {
				Quote []struct {
					Close  []float64 `json:"close"`
					Volume []int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
	} `json:"chart"`
}

// FetchQuote pulls one month of daily candles for an NSE symbol and derives
// 7 and 30 day changes from the closes.
func (c *Client) FetchQuote(ctx context.Context, ticker string) (*Quote, error) {
	url := fmt.Sprintf("%s/v8/finance/chart/%s.NS?range=1mo&interval=1d", c.baseURL, ticker)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create quote request: %w", err)
	}
	req.Header.Set("User-Agent", "nse-advisor/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch quote %s: %w", ticker, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("quote endpoint returned status %d for %s", resp.StatusCode, ticker)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read quote response: %w", err)
	}

	var chart chartResponse
	if err := json.Unmarshal(body, &chart); err != nil {
		return nil, fmt.Errorf("parse quote response: %w", err)
	}

	if len(chart.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart data for %s", ticker)
	}
	r := chart.Chart.Result[0]

	q := &Quote{
		Ticker:   ticker,
		Last:     r.Meta.RegularMarketPrice,
		Currency: r.Meta.Currency,
	}

	if len(r.Indicators.Quote) > 0 {
		closes := r.Indicators.Quote[0].Close
		volumes := r.Indicators.Quote[0].Volume

		q.Change7d = changePct(closes, 7, q.Last)
		q.Change30d = changePct(closes, len(closes), q.Last)
		if len(volumes) > 0 {
			q.Volume = volumes[len(volumes)-1]
		}
	}

	return q, nil
}

// Snapshot fetches quotes best-effort: a failing ticker is skipped, the
// pipeline falls back to model knowledge for it.
func (c *Client) Snapshot(ctx context.Context, tickers []string) []Quote {
	quotes := make([]Quote, 0, len(tickers))
	for _, t := range tickers {
		q, err := c.FetchQuote(ctx, t)
		if err != nil {
			c.logger.Debug("quote fetch failed, skipping", "ticker", t, "error", err)
			continue
		}
		quotes = append(quotes, *q)
	}
	return quotes
}

// changePct returns the percent change from the close n sessions back to
// last, skipping zero entries left by halted sessions.
func changePct(closes []float64, n int, last float64) float64 {
	if last == 0 || len(closes) == 0 {
		return 0
	}
	start := len(closes) - n
	if start < 0 {
		start = 0
	}
	for _, c := range closes[start:] {
		if c != 0 {
			return (last - c) / c * 100
		}
	}
	return 0
}
