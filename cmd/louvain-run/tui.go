package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dd0wney/louvain-engine/pkg/louvain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF")).
			MarginLeft(1)

	statusStyle = lipgloss.NewStyle().
			MarginLeft(1).
			Foreground(lipgloss.Color("#888888"))

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FF00")).
			MarginLeft(1)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000")).
			MarginLeft(1)
)

// runDoneMsg carries the driver's result back into the Bubble Tea loop
// once the blocking run completes on its own goroutine.
type runDoneMsg struct {
	result louvain.Result
	err    error
}

type runModel struct {
	graphName string
	spinner   spinner.Model
	done      bool
	result    louvain.Result
	err       error
	resultCh  <-chan runDoneMsg
}

func newRunModel(graphName string, resultCh <-chan runDoneMsg) runModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF00FF"))
	return runModel{graphName: graphName, spinner: s, resultCh: resultCh}
}

func waitForResult(ch <-chan runDoneMsg) tea.Cmd {
	return func() tea.Msg {
		return <-ch
	}
}

func (m runModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForResult(m.resultCh))
}

func (m runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			return m, tea.Quit
		}
	case runDoneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m runModel) View() string {
	if m.done {
		if m.err != nil {
			return errorStyle.Render(fmt.Sprintf("run failed: %v\n", m.err))
		}
		return successStyle.Render(fmt.Sprintf(
			"done: %d communities, modularity %.4f, %d passes, %d iterations, %s\n",
			m.result.CommunityCount(), m.result.Modularity, m.result.Passes, m.result.Iterations, m.result.Time,
		))
	}
	return fmt.Sprintf(
		"%s %s\n%s",
		m.spinner.View(),
		titleStyle.Render("running louvain on "+m.graphName),
		statusStyle.Render("press q to detach (the run keeps going in the background)"),
	)
}
