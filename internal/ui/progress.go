package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressController manages the bubbletea program for progress display
type ProgressController struct {
	ui      *UI
	program *tea.Program
}

// StartProgress starts the progress display if in interactive mode
// Returns nil if not in interactive mode
func (u *UI) StartProgress() *ProgressController {
	if u.Mode != ModeInteractive {
		return nil
	}

	m := NewModel()
	p := tea.NewProgram(m, tea.WithOutput(u.ErrWriter))

	ctrl := &ProgressController{
		ui:      u,
		program: p,
	}

	// Run the program in a goroutine
	go func() {
		if _, err := p.Run(); err != nil {
			// Silently handle program errors
			_ = err
		}
	}()

	return ctrl
}

// SetStage updates the current stage
func (pc *ProgressController) SetStage(stage Stage) {
	if pc != nil && pc.program != nil {
		pc.program.Send(StageMsg(stage))
	}
}

// SetArticleCount sets how many articles the run will analyze
func (pc *ProgressController) SetArticleCount(count int) {
	if pc != nil && pc.program != nil {
		pc.program.Send(ArticleCountMsg(count))
	}
}

// ArticleStart indicates analysis of one article has started
func (pc *ProgressController) ArticleStart(path string) {
	if pc != nil && pc.program != nil {
		pc.program.Send(ArticleStartMsg(path))
	}
}

// ArticleDone indicates analysis of one article has completed
func (pc *ProgressController) ArticleDone() {
	if pc != nil && pc.program != nil {
		pc.program.Send(ArticleDoneMsg{})
	}
}

// Done signals that all work is complete
func (pc *ProgressController) Done(err error) {
	if pc != nil && pc.program != nil {
		pc.program.Send(DoneMsg{Err: err})
		pc.program.Wait()
	}
}
