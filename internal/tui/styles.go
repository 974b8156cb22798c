package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles groups every lipgloss style the view uses so rendering stays a pure
// function of (Styles, state).
type Styles struct {
	Header      lipgloss.Style
	Subtitle    lipgloss.Style
	IntentBuy   lipgloss.Style
	IntentSell  lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	Ticker      lipgloss.Style
	ActionBuy   lipgloss.Style
	ActionSell  lipgloss.Style
	ActionHold  lipgloss.Style
	ActionPlain lipgloss.Style
	Field       lipgloss.Style
	Value       lipgloss.Style
	Reason      lipgloss.Style
	StepDot     lipgloss.Style
	StepLine    lipgloss.Style
	StepTitle   lipgloss.Style
	StepBody    lipgloss.Style
	StepLabel   lipgloss.Style
	Placeholder lipgloss.Style
	Footer      lipgloss.Style
	Spinner     lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		IntentBuy:   lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		IntentSell:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true),
		Card:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		CardTitle:   lipgloss.NewStyle().Bold(true),
		Ticker:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ActionBuy:   lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		ActionSell:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true),
		ActionHold:  lipgloss.NewStyle().Foreground(lipgloss.Color("#E2C541")).Bold(true),
		ActionPlain: lipgloss.NewStyle(),
		Field:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Value:       lipgloss.NewStyle(),
		Reason:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		StepDot:     lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
		StepLine:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		StepTitle:   lipgloss.NewStyle().Bold(true),
		StepBody:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		StepLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Footer:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Spinner:     lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")),
	}
}

// ActionStyle maps an action label to its style by lowercased value. Anything
// outside the known vocabulary renders unstyled, never dropped.
func (s Styles) ActionStyle(action string) lipgloss.Style {
	switch strings.ToLower(action) {
	case "buy":
		return s.ActionBuy
	case "sell":
		return s.ActionSell
	case "hold":
		return s.ActionHold
	default:
		return s.ActionPlain
	}
}
