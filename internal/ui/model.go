package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Stage is a phase of an analysis run.
type Stage int

const (
	StageLoadConfig Stage = iota
	StageAnalyze
	StageAssess
)

// Messages sent by the ProgressController
type (
	StageMsg        Stage
	ArticleCountMsg int
	ArticleStartMsg string
	ArticleDoneMsg  struct{}
	DoneMsg         struct{ Err error }
)

// Model renders live progress for an analysis run: a spinner per
// stage, the article currently being analyzed, and a progress bar
// across the batch.
type Model struct {
	stage        Stage
	spinner      spinner.Model
	progress     progress.Model
	article      string
	articleCount int
	articlesDone int
	width        int
	quitting     bool
	err          error
}

// NewModel creates a new progress model
func NewModel() Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	p := progress.New(progress.WithDefaultGradient())

	return Model{
		stage:    StageLoadConfig,
		spinner:  s,
		progress: p,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = msg.Width - 4
		if m.progress.Width > 60 {
			m.progress.Width = 60
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case StageMsg:
		m.stage = Stage(msg)
		return m, nil

	case ArticleCountMsg:
		m.articleCount = int(msg)
		return m, nil

	case ArticleStartMsg:
		m.article = string(msg)
		return m, nil

	case ArticleDoneMsg:
		m.articlesDone++
		return m, nil

	case DoneMsg:
		m.err = msg.Err
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sb strings.Builder

	switch m.stage {
	case StageLoadConfig:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Loading configuration...")

	case StageAnalyze:
		if m.articleCount > 0 {
			pct := float64(m.articlesDone) / float64(m.articleCount)
			sb.WriteString(m.progress.ViewAs(pct))
			sb.WriteString("\n")
		}
		sb.WriteString(m.spinner.View())
		if m.article != "" {
			sb.WriteString(" Analyzing " + m.article + "...")
		} else {
			sb.WriteString(" Analyzing articles...")
		}

	case StageAssess:
		sb.WriteString(m.spinner.View())
		sb.WriteString(" Assessing publication risk...")
	}

	return sb.String()
}
