package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkrsna/nse-advisor/internal/recommend"
)

// settledMsg delivers the outcome of a submission back to Update.
type settledMsg recommend.Settlement

// Model is the bubbletea model for the advisor client. The controller owns
// all submission state; the model only holds widgets and layout.
type Model struct {
	ctrl    *recommend.Controller
	input   textinput.Model
	spinner spinner.Model
	styles  Styles
	width   int
}

func New(ctrl *recommend.Controller) Model {
	ti := textinput.New()
	ti.Placeholder = "e.g. 2 good short term trading ideas from NSE"
	ti.Prompt = "> "
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))

	m := Model{
		ctrl:    ctrl,
		input:   ti,
		spinner: sp,
		styles:  NewStyles(),
		width:   80,
	}
	m.spinner.Style = m.styles.Spinner
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case settledMsg:
		m.ctrl.Settle(recommend.Settlement(msg))
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyTab:
			m.ctrl.ToggleIntent()
			return m, nil
		case tea.KeyEnter:
			// A UI nudge only; the controller itself tolerates overlap.
			if m.ctrl.Loading() {
				return m, nil
			}
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.ctrl.SetQueryText(m.input.Value())
	return m, cmd
}

// submit starts a submission and runs its blocking half as a command.
func (m *Model) submit() tea.Cmd {
	run := m.ctrl.BeginSubmit(context.Background())
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg { return settledMsg(run()) },
	)
}
