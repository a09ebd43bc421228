package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/JoBlockins/concept2-data-analyzer/internal/erg"
)

func pollCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return PollTickMsg{At: t}
	})
}

func readCmd(source erg.Source, at time.Time) tea.Cmd {
	return func() tea.Msg {
		sample, err := source.Read(at)
		return SampleMsg{At: at, Sample: sample, Status: source.Status(), Err: err}
	}
}
