package agents

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/mkrsna/nse-advisor/internal/recommend"
)

var thinkTagRegex = regexp.MustCompile(`(?s)<think>.*?</think>`)

// StripThinkTags removes reasoning-model think tags from a response.
func StripThinkTags(text string) string {
	return strings.TrimSpace(thinkTagRegex.ReplaceAllString(text, ""))
}

// ParseRecommendations parses a model answer into recommendations.
// Handles: JSON array, single JSON object, markdown code fences, and JSON
// embedded in surrounding prose.
func ParseRecommendations(text string) ([]recommend.StockRecommendation, error) {
	cleaned := StripThinkTags(text)

	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	if cleaned == "" || cleaned == "[]" {
		return nil, nil
	}

	var stocks []recommend.StockRecommendation
	if err := json.Unmarshal([]byte(cleaned), &stocks); err == nil {
		return stocks, nil
	}

	var single recommend.StockRecommendation
	if err := json.Unmarshal([]byte(cleaned), &single); err == nil {
		return []recommend.StockRecommendation{single}, nil
	}

	jsonStart := strings.Index(cleaned, "[")
	jsonEnd := strings.LastIndex(cleaned, "]")
	if jsonStart >= 0 && jsonEnd > jsonStart {
		substr := cleaned[jsonStart : jsonEnd+1]
		if err := json.Unmarshal([]byte(substr), &stocks); err == nil {
			return stocks, nil
		}
	}

	jsonStart = strings.Index(cleaned, "{")
	jsonEnd = strings.LastIndex(cleaned, "}")
	if jsonStart >= 0 && jsonEnd > jsonStart {
		substr := cleaned[jsonStart : jsonEnd+1]
		if err := json.Unmarshal([]byte(substr), &single); err == nil {
			return []recommend.StockRecommendation{single}, nil
		}
	}

	return nil, fmt.Errorf("failed to parse model answer as JSON: %.200s", cleaned)
}

var tickersLineRegex = regexp.MustCompile(`(?m)^TICKERS:\s*(.+)$`)

// extractTickers pulls the TICKERS line the stock finder is asked to emit.
// Missing or malformed lines are fine; quotes are then simply skipped.
func extractTickers(text string) []string {
	m := tickersLineRegex.FindStringSubmatch(StripThinkTags(text))
	if m == nil {
		return nil
	}

	var tickers []string
	for _, part := range strings.Split(m[1], ",") {
		t := strings.ToUpper(strings.TrimSpace(part))
		t = strings.TrimSuffix(t, ".NS")
		if t != "" {
			tickers = append(tickers, t)
		}
	}
	return tickers
}
