package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mkrsna/nse-advisor/internal/config"
	"github.com/mkrsna/nse-advisor/internal/logger"
)

const recommendPath = "/api/recommend"

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.Backend.URL, "/"),
		httpClient: &http.Client{Timeout: cfg.BackendTimeout()},
		logger:     log,
	}
}

type recommendRequest struct {
	Query  string `json:"query"`
	Intent string `json:"intent"`
}

// Recommend issues exactly one POST and decodes the body. The query text is
// forwarded verbatim, empty string included. No retry.
func (c *Client) Recommend(ctx context.Context, query string, intent Intent) (Result, error) {
	payload, err := json.Marshal(recommendRequest{Query: query, Intent: string(intent)})
	if err != nil {
		return Result{}, fmt.Errorf("encode recommend request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+recommendPath, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("create recommend request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("send recommend request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("read recommend response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("backend returned status %d", resp.StatusCode)
	}

	var res Result
	if err := json.Unmarshal(body, &res); err != nil {
		return Result{}, fmt.Errorf("parse recommend response: %w", err)
	}

	return res, nil
}
