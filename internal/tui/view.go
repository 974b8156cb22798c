package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkrsna/nse-advisor/internal/recommend"
)

const noTimelinePlaceholder = "no timeline yet"

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.viewHeader(),
		m.viewQuery(),
		m.viewBody(),
		m.viewFooter(),
	)
}

func (m Model) viewHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render("NSE Advisor"),
		m.styles.Subtitle.Render("ask for stock picks, get the agents' working"),
		"",
	)
}

func (m Model) viewQuery() string {
	intent := m.ctrl.Query().Intent
	var tag string
	if intent == recommend.IntentSell {
		tag = m.styles.IntentSell.Render("[SELL]")
	} else {
		tag = m.styles.IntentBuy.Render("[BUY]")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.input.View(), " ", tag),
		"",
	)
}

func (m Model) viewBody() string {
	if m.ctrl.Loading() {
		return m.spinner.View() + " asking the agents..."
	}
	res := m.ctrl.Result()
	return lipgloss.JoinVertical(lipgloss.Left,
		RenderStocks(m.styles, res.Stocks),
		"",
		RenderTimeline(m.styles, res.Timeline),
	)
}

func (m Model) viewFooter() string {
	return "\n" + m.styles.Footer.Render("enter: submit | tab: buy/sell | esc: quit")
}

// RenderStocks renders one card per recommendation, in the given order. It is
// a pure function of its arguments.
func RenderStocks(st Styles, stocks []recommend.StockRecommendation) string {
	if len(stocks) == 0 {
		return ""
	}

	cards := make([]string, 0, len(stocks))
	for _, s := range stocks {
		cards = append(cards, renderCard(st, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func renderCard(st Styles, s recommend.StockRecommendation) string {
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		st.CardTitle.Render(s.Name),
		" ",
		st.Ticker.Render("("+s.Ticker+")"),
		"  ",
		st.ActionStyle(s.Action).Render(s.Action),
	)

	prices := fmt.Sprintf("%s %s   %s %s",
		st.Field.Render("target"), st.Value.Render(s.TargetPrice),
		st.Field.Render("current"), st.Value.Render(s.CurrentPrice),
	)
	signals := fmt.Sprintf("%s %s   %s %s",
		st.Field.Render("trend"), st.Value.Render(s.Trend),
		st.Field.Render("sentiment"), st.Value.Render(s.Sentiment),
	)

	body := lipgloss.JoinVertical(lipgloss.Left,
		title,
		prices,
		signals,
		st.Reason.Render(s.Reason),
	)
	return st.Card.Render(body)
}

// RenderTimeline renders every event in arrival order with a connecting
// line, or a placeholder when there are no events. Label is optional.
func RenderTimeline(st Styles, events []recommend.TimelineEvent) string {
	if len(events) == 0 {
		return st.Placeholder.Render(noTimelinePlaceholder)
	}

	var sb strings.Builder
	for i, ev := range events {
		title := fmt.Sprintf("Step %d · %s · %s", ev.Step, ev.Role, ev.Agent)
		if ev.Label != "" {
			title += "  " + st.StepLabel.Render(ev.Label)
		}

		sb.WriteString(st.StepDot.Render("●") + " " + st.StepTitle.Render(title) + "\n")
		for _, line := range strings.Split(ev.Content, "\n") {
			sb.WriteString(st.StepLine.Render("│") + "  " + st.StepBody.Render(line) + "\n")
		}
		if i < len(events)-1 {
			sb.WriteString(st.StepLine.Render("│") + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
