package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"weather-dashboard/internal/services/weather"
)

// reportFetchedMsg is sent when a refresh has finished
type reportFetchedMsg struct {
	report *weather.Report
	err    error
}

// FetchFunc fetches a fresh report for the dashboard's city.
type FetchFunc func(ctx context.Context) (*weather.Report, error)

func fetchReport(ctx context.Context, fetch FetchFunc) tea.Cmd {
	return func() tea.Msg {
		report, err := fetch(ctx)
		return reportFetchedMsg{report: report, err: err}
	}
}
