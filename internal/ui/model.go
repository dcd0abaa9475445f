package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"weather-dashboard/internal/render"
	"weather-dashboard/internal/services/weather"
)

const (
	headerHeight = 1
	footerHeight = 1
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00BFFF"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// Model shows the dashboard in a scrollable viewport. The dashboard is
// re-rendered to the terminal width on every resize.
type Model struct {
	ctx      context.Context
	renderer render.Renderer
	report   *weather.Report
	fetch    FetchFunc

	viewport viewport.Model
	ready    bool
	loading  bool
	err      error
	width    int
	height   int
}

// NewModel builds the model around an already fetched report. fetch may be
// nil, in which case refreshing is disabled.
func NewModel(ctx context.Context, renderer *render.Renderer, report *weather.Report, fetch FetchFunc) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	return Model{
		ctx:      ctx,
		renderer: *renderer,
		report:   report,
		fetch:    fetch,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		bodyHeight := max(msg.Height-headerHeight-footerHeight, 1)

		if !m.ready {
			m.viewport = viewport.New(msg.Width, bodyHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = bodyHeight
		}
		m.renderer.Width = max(msg.Width, 1)
		m.refreshContent()
		return m, nil

	case reportFetchedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil && msg.report != nil {
			m.report = msg.report
			m.refreshContent()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "r":
			if m.fetch == nil || m.loading {
				return m, nil
			}
			m.loading = true
			m.err = nil
			return m, fetchReport(m.ctx, m.fetch)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.Content())
}

// Content is the sample table and dashboard for the current report at the
// current width.
func (m Model) Content() string {
	if m.report == nil {
		return m.renderer.Document(nil, "")
	}
	return m.renderer.Document(m.report.Records, m.report.City)
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.header(), m.viewport.View(), m.footer())
}

func (m Model) header() string {
	title := "Weather Dashboard"
	if m.report != nil {
		title = fmt.Sprintf("Weather Dashboard – %s (%s, %s)", m.report.City, m.report.Kind, m.report.Units)
	}
	return headerStyle.Render(title)
}

func (m Model) footer() string {
	var parts []string
	switch {
	case m.loading:
		parts = append(parts, "refreshing...")
	case m.err != nil:
		parts = append(parts, errorStyle.Render("refresh failed: "+m.err.Error()))
	}

	help := "↑/↓ scroll • q quit"
	if m.fetch != nil {
		help = "↑/↓ scroll • r refresh • q quit"
	}
	parts = append(parts, fmt.Sprintf("%s • %3.f%%", help, m.viewport.ScrollPercent()*100))

	return statusStyle.Render(strings.Join(parts, "  "))
}

// Run blocks until the user quits. Extra options are applied after the
// defaults. A program failure is reported as a *render.RenderError.
func Run(m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(m.ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		return &render.RenderError{Err: err}
	}
	return nil
}
