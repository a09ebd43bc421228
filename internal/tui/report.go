package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/JoBlockins/concept2-data-analyzer/internal/report"
	"github.com/JoBlockins/concept2-data-analyzer/internal/tui/theme"
)

type ReportState struct {
	Workout report.Workout

	// Path is the recording file the workout was saved to.
	Path  string
	Empty bool
}

func (m *Model) ReportView() string {
	rep := m.state.report

	saved := m.theme.TextDim().Render("Saved " + rep.Path)
	hint := m.hintView("s: record again   esc: back to monitor   q: quit")

	if rep.Empty {
		empty := lipgloss.NewStyle().
			Foreground(theme.ColorPace).
			Render("No samples recorded.")
		return lipgloss.JoinVertical(lipgloss.Center, empty, "", saved, "", hint)
	}

	body := m.theme.Base().Render(rep.Workout.Text())
	return lipgloss.JoinVertical(lipgloss.Center, body, saved, "", hint)
}
