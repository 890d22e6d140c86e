package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultRequestTimeout = 90 * time.Second

var errCancelled = errors.New("cancelled")

// builds the model that sends request and shows the answer.
// summary describes what is being sent, e.g. "12 files".
func NewApp(client *QueryClient, request QueryRequest, summary string) *Model {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(spinnerStyle),
	)

	return &Model{
		state:   StateLoading,
		spinner: s,
		client:  client,
		request: request,
		summary: summary,
		width:   TerminalWidth(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.client.AskCmd(m.request))
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc", "q":
			if m.state == StateLoading {
				m.state = StateError
				m.err = errCancelled
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case AnswerMsg:
		m.state = StateDone
		m.result = msg.result
		return m, tea.Quit

	case AnswerErrorMsg:
		m.state = StateError
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) View() string {
	switch m.state {
	case StateLoading:
		return fmt.Sprintf("\n %s %s %s\n\n %s\n",
			m.spinner.View(),
			titleStyle.Render("asking codementor"),
			infoStyle.Render("("+m.summary+")"),
			helpStyle.Render("ctrl+c to cancel"),
		)

	case StateDone:
		return FormatAnswer(m.result, m.width)

	case StateError:
		return errorView(m.err)

	default:
		return "Unknown state"
	}
}

// returns the answer, if any
func (m *Model) Result() *QueryResult {
	return m.result
}

// returns the failure, if any
func (m *Model) Err() error {
	return m.err
}

// renders the answer followed by the timing line
func FormatAnswer(result *QueryResult, width int) string {
	if result == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(RenderMarkdown(result.Assistant, width))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(timingLine(result)))
	b.WriteString("\n")

	return b.String()
}

func timingLine(result *QueryResult) string {
	line := fmt.Sprintf("response in %d ms", result.Elapsed.Milliseconds())

	if result.Usage != nil {
		line += fmt.Sprintf(" | tokens: %d in, %d out", result.Usage.InputTokens, result.Usage.OutputTokens)
	}

	return line
}

func errorView(err error) string {
	return "\n  " + errorStyle.Render(fmt.Sprintf("Error: %v", err)) + "\n\n"
}
