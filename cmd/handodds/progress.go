package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lox/handodds/internal/odds"
)

const maxBarWidth = 60

type progressMsg struct {
	done, total uint64
}

type finishedMsg struct{}

// progressModel draws a progress bar while hands are enumerated
type progressModel struct {
	bar      progress.Model
	done     uint64
	total    uint64
	cancel   context.CancelFunc
	quitting bool
}

func newProgressModel(cancel context.CancelFunc) progressModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = maxBarWidth
	return progressModel{bar: bar, cancel: cancel}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancel()
			m.quitting = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-4, maxBarWidth)
	case progressMsg:
		m.done, m.total = msg.done, msg.total
	case finishedMsg:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m progressModel) fraction() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.done) / float64(m.total)
}

func (m progressModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(m.bar.ViewAs(m.fraction()))
	b.WriteString("\n  ")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%s / %s hands", formatCount(m.done), formatCount(m.total))))
	b.WriteString("\n")
	return b.String()
}

type enumerateFunc func(context.Context, odds.ProgressReporter) (*odds.Report, error)

// runWithProgress runs fn while a progress bar is drawn on out
func runWithProgress(ctx context.Context, out io.Writer, fn enumerateFunc) (*odds.Report, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(newProgressModel(cancel), tea.WithOutput(out), tea.WithContext(ctx))

	type result struct {
		report *odds.Report
		err    error
	}
	results := make(chan result, 1)
	go func() {
		report, err := fn(ctx, func(done, total uint64) {
			p.Send(progressMsg{done: done, total: total})
		})
		p.Send(finishedMsg{})
		results <- result{report, err}
	}()

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		cancel()
		<-results
		return nil, fmt.Errorf("progress display failed: %w", err)
	}

	r := <-results
	return r.report, r.err
}
