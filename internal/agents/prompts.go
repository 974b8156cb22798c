package agents

import (
	"fmt"
	"strings"

	"github.com/mkrsna/nse-advisor/internal/market"
	"github.com/mkrsna/nse-advisor/internal/recommend"
)

const promptStockFinder = `You pick exactly 2 NSE listed stocks for short term trading.
Avoid penny and illiquid stocks.
Return name, ticker, and one short reason for each.
Finish with a single line of the form:
TICKERS: AAA, BBB
using the plain NSE tickers.`

const promptMarketData = `You assess current market data for the 2 chosen NSE stocks.
A live quote snapshot may be provided; prefer it over memory. If it is missing,
use your best knowledge and say so.
For each stock, return current price in INR, rough 7 to 30 day trend,
today volume, and whether volume looks high, normal, or low.
Be concise.`

const promptNewsAnalyst = `You summarize recent news and sentiment for each stock using
the conversation context. If news is not explicit, give a neutral summary.
For each stock, return 1 to 2 lines and label sentiment as positive, negative, or neutral.`

const promptPriceRecommender = `You give a near term trading call for each stock based on
previous messages. For each stock, choose Buy, Sell, or Hold, a short term target
price in INR, and a 2 to 3 line justification. Be practical and concise.
Respect the user's stated intent: when they want to sell, judge each stock as a
sell candidate; when they want to buy, as a buy candidate.`

const promptFormatter = `You convert the analysis above into machine-readable output.
Answer with ONLY a JSON array, no prose, no code fences. One object per stock:
[
  {
    "name": "Acme Corp",
    "ticker": "ACME",
    "action": "BUY",
    "targetPrice": "120",
    "currentPrice": "100",
    "trend": "up",
    "sentiment": "positive",
    "reason": "short rationale"
  }
]
Every field is a string. action is BUY, SELL, or HOLD. Prices are plain numbers
in INR without currency symbols. If there is nothing to recommend, answer [].`

func buildUserContext(query string, intent recommend.Intent) string {
	var sb strings.Builder
	sb.WriteString("User query: ")
	sb.WriteString(query)
	sb.WriteString("\nUser intent: ")
	sb.WriteString(strings.ToUpper(string(intent)))
	sb.WriteString("\n")
	return sb.String()
}

func buildTranscript(parts []string) string {
	return strings.Join(parts, "\n\n---\n\n")
}

func buildQuoteBlock(quotes []market.Quote) string {
	if len(quotes) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("## Live quote snapshot\n")
	sb.WriteString("| Ticker | Last | 7d% | 30d% | Volume |\n")
	sb.WriteString("|--------|------|-----|------|--------|\n")
	for _, q := range quotes {
		sb.WriteString(fmt.Sprintf("| %s | %.2f %s | %+.1f | %+.1f | %d |\n",
			q.Ticker, q.Last, q.Currency, q.Change7d, q.Change30d, q.Volume))
	}
	return sb.String()
}
