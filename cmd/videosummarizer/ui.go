package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/videosummarizer/videosummarizer/client"
)

type UICommand struct {
	ServerURL string `help:"The URL of the server." env:"SERVER_URL" default:"http://localhost:3000"`
	URL       string `arg:"" optional:"" help:"A YouTube URL to process immediately."`
}

func (c UICommand) Run(ctx context.Context) (err error) {
	vsc := client.New(c.ServerURL)
	p := tea.NewProgram(newModel(ctx, vsc, c.URL), tea.WithAltScreen())
	if _, err = p.Run(); err != nil {
		return err
	}
	return nil
}

// Dracula theme.
var (
	CurrentLine = lipgloss.Color("#44475a")
	Comment     = lipgloss.Color("#6272a4")
	Cyan        = lipgloss.Color("#8be9fd")
	Purple      = lipgloss.Color("#bd93f9")
	Red         = lipgloss.Color("#ff5555")
)

var (
	headerStyle  = lipgloss.NewStyle().Background(CurrentLine).Foreground(Purple).Bold(true).Padding(0, 1)
	hintStyle    = lipgloss.NewStyle().Foreground(Comment)
	errorStyle   = lipgloss.NewStyle().Foreground(Red).Bold(true)
	panelStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Comment).Padding(0, 1)
	panelTitle   = lipgloss.NewStyle().Bold(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(Cyan)
)

var stageDescriptions = map[client.Stage]string{
	client.StageVideoID:    "Reading video ID...",
	client.StageTranscript: "Fetching transcript...",
	client.StageSummary:    "Generating summary...",
}

type processor interface {
	Process(ctx context.Context, url string, progress func(client.Stage)) (client.Result, error)
}

// stageMsg reports the stage a run has reached. Each run has its own
// channel, closed when the run ends.
type stageMsg struct {
	stage  client.Stage
	stages <-chan client.Stage
}

type resultMsg struct {
	result client.Result
	err    error
}

type model struct {
	ctx       context.Context
	processor processor
	input     textinput.Model
	spinner   spinner.Model
	viewport  viewport.Model
	width     int

	processing bool
	pending    string
	stages     chan client.Stage
	stage      client.Stage
	result     *client.Result
	err        error
}

func newModel(ctx context.Context, p processor, url string) model {
	ti := textinput.New()
	ti.Placeholder = "https://www.youtube.com/watch?v=..."
	ti.Prompt = "┃ "
	ti.CharLimit = 256
	ti.SetValue(url)
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	m := model{
		ctx:       ctx,
		processor: p,
		input:     ti,
		spinner:   sp,
		viewport:  viewport.New(80, 20),
		width:     80,
		stages:    make(chan client.Stage, 3),
	}
	if strings.TrimSpace(url) != "" {
		m.processing = true
		m.pending = url
	}
	return m
}

// begin resets the model for a new run and returns the commands that drive it.
func (m *model) begin(url string) tea.Cmd {
	m.processing = true
	m.pending = url
	m.stage = ""
	m.err = nil
	m.result = nil
	m.stages = make(chan client.Stage, 3)
	return tea.Batch(m.start(url), waitForStage(m.stages), m.spinner.Tick)
}

func (m model) Init() tea.Cmd {
	if m.processing {
		return tea.Batch(textinput.Blink, m.start(m.pending), waitForStage(m.stages), m.spinner.Tick)
	}
	return textinput.Blink
}

func (m model) start(url string) tea.Cmd {
	stages := m.stages
	return func() tea.Msg {
		defer close(stages)
		result, err := m.processor.Process(m.ctx, url, func(stage client.Stage) {
			select {
			case stages <- stage:
			case <-m.ctx.Done():
			}
		})
		return resultMsg{result: result, err: err}
	}
}

func waitForStage(stages <-chan client.Stage) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-stages
		if !ok {
			return nil
		}
		return stageMsg{stage: s, stages: stages}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stageMsg:
		if m.processing {
			m.stage = msg.stage
		}
		// Keep reading until the run closes its channel.
		return m, waitForStage(msg.stages)
	case resultMsg:
		m.processing = false
		m.pending = ""
		if msg.err != nil {
			m.err = msg.err
			m.result = nil
			return m, nil
		}
		m.err = nil
		m.result = &msg.result
		m.viewport.SetContent(m.renderResult())
		m.viewport.GotoTop()
		return m, nil
	case spinner.TickMsg:
		if !m.processing {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 6
		if m.result != nil {
			m.viewport.SetContent(m.renderResult())
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if m.processing {
				return m, nil
			}
			url := strings.TrimSpace(m.input.Value())
			if url == "" {
				m.err = errors.New("please enter a YouTube URL")
				return m, nil
			}
			return m, m.begin(url)
		case "pgup", "pgdown", "up", "down":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		default:
			if m.processing {
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m model) renderResult() string {
	if m.result == nil {
		return ""
	}
	width := m.width
	if width < 40 {
		width = 40
	}
	// Side by side panels need room for two borders and paddings.
	sideBySide := width >= 100
	panelWidth := width - 4
	if sideBySide {
		panelWidth = width/2 - 4
	}
	transcript := renderPanel("Transcript", m.result.Transcript, panelWidth)
	summary := renderPanel("Summary", m.result.Summary, panelWidth)
	if sideBySide {
		return lipgloss.JoinHorizontal(lipgloss.Top, transcript, summary)
	}
	return lipgloss.JoinVertical(lipgloss.Left, transcript, summary)
}

func renderPanel(title, content string, width int) string {
	body := wordwrap.String(strings.TrimSpace(content), width)
	return panelStyle.Width(width).Render(panelTitle.Render(title) + "\n\n" + body)
}

func describeError(err error) string {
	var se *client.StageError
	if errors.As(err, &se) {
		return fmt.Sprintf("✗ %s stage failed: %s", se.Stage, se.Message())
	}
	return "✗ " + err.Error()
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(headerStyle.Render("VideoSummarizer"))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")
	switch {
	case m.processing:
		desc, ok := stageDescriptions[m.stage]
		if !ok {
			desc = "Starting..."
		}
		sb.WriteString(m.spinner.View() + " " + desc)
	case m.err != nil:
		sb.WriteString(errorStyle.Render(describeError(m.err)))
	case m.result != nil:
		sb.WriteString(m.viewport.View())
	default:
		sb.WriteString(hintStyle.Render("Enter a YouTube URL to fetch its transcript and summary."))
	}
	sb.WriteString("\n\n")
	sb.WriteString(hintStyle.Render("enter: process • pgup/pgdown: scroll • esc: quit"))
	return sb.String()
}
