// Package tui renders the live rowing monitor. All statistics and
// recording logic lives in the core packages; the model is glue between
// the erg source, the recorder, and the screen.
package tui

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/JoBlockins/concept2-data-analyzer/internal/erg"
	"github.com/JoBlockins/concept2-data-analyzer/internal/report"
	"github.com/JoBlockins/concept2-data-analyzer/internal/tui/theme"
)

var _ tea.Model = (*Model)(nil)

type page uint

const (
	monitorPage page = iota
	reportPage
)

type state struct {
	monitor MonitorState
	report  ReportState
}

type Model struct {
	ready          bool
	page           page
	viewportWidth  int
	viewportHeight int
	theme          theme.Theme
	state          state
	deps           Deps

	hasReport bool
}

func New(deps Deps) Model {
	return Model{
		page:  monitorPage,
		theme: theme.New(),
		deps:  deps,
		state: state{
			monitor: NewMonitorState(),
			report:  ReportState{},
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return pollCmd(m.deps.PollInterval)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewportWidth = msg.Width
		m.viewportHeight = msg.Height
		m.ready = true

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.stopRecording()
			return m, tea.Quit

		case "s":
			m.startRecording()
			m.page = monitorPage

		case "x":
			if m.stopRecording() {
				m.page = reportPage
			}

		case "esc":
			m.page = monitorPage
		}

	case PollTickMsg:
		return m, tea.Batch(
			readCmd(m.deps.Source, msg.At),
			pollCmd(m.deps.PollInterval),
		)

	case SampleMsg:
		m.applySample(msg)
	}

	return m, nil
}

func (m *Model) applySample(msg SampleMsg) {
	mon := &m.state.monitor
	if msg.Err != nil {
		// a no-data poll is normal producer cadence, not a fault
		if !errors.Is(msg.Err, erg.ErrNoData) {
			mon.Err = msg.Err
		}
		return
	}

	mon.Err = nil
	mon.Sample = msg.Sample
	mon.Status = msg.Status
	mon.Tracker.Observe(msg.Sample)

	if m.deps.Recorder.Recording() {
		if err := m.deps.Recorder.Record(msg.At, msg.Sample); err != nil {
			mon.Err = err
		}
	}
}

func (m *Model) startRecording() {
	if m.deps.Recorder.Recording() {
		return
	}

	path, err := m.deps.Recorder.Start("")
	if err != nil {
		m.state.monitor.Err = err
		return
	}
	m.state.monitor.Path = path
}

// stopRecording closes any active recording and builds the report page
// from the recorded session. Reports whether there is a report to show.
func (m *Model) stopRecording() bool {
	if !m.deps.Recorder.Recording() {
		return false
	}

	path, sess, err := m.deps.Recorder.Stop()
	m.state.monitor.Path = ""
	if err != nil {
		m.state.monitor.Err = err
	}
	if sess == nil {
		return false
	}

	workout, ok := report.Build(path, sess.Snapshot(), m.deps.SplitDistance)
	if ok {
		workout.SessionID = sess.ID
	}
	m.state.report = ReportState{Workout: workout, Path: path, Empty: !ok}
	m.hasReport = ok
	return true
}

// FinalReport returns the report of the last completed recording, for
// printing to the terminal once the program exits.
func (m *Model) FinalReport() (report.Workout, bool) {
	return m.state.report.Workout, m.hasReport
}

func (m *Model) View() tea.View {
	view := tea.NewView("")
	view.AltScreen = true

	// the report reads like a printed page, black behind plain text
	if m.page == reportPage {
		view.BackgroundColor = theme.ColorBlack
	} else {
		view.BackgroundColor = m.theme.Background()
	}

	if !m.ready {
		return view
	}

	var content string
	switch m.page {
	case monitorPage:
		metrics := lipgloss.Place(
			m.viewportWidth,
			m.viewportHeight,
			lipgloss.Center,
			lipgloss.Center,
			m.MonitorView(),
		)

		// place the recording indicator at absolute top right
		rec := lipgloss.NewStyle().
			PaddingRight(2).
			PaddingTop(1).
			Render(m.RecIndicatorView())

		recOverlay := lipgloss.Place(
			m.viewportWidth,
			m.viewportHeight,
			lipgloss.Right,
			lipgloss.Top,
			rec,
		)

		content = m.overlayStrings(metrics, recOverlay)
	case reportPage:
		content = lipgloss.Place(
			m.viewportWidth,
			m.viewportHeight,
			lipgloss.Center,
			lipgloss.Center,
			m.ReportView(),
		)
	}

	view.SetContent(content)
	return view
}

func (m *Model) overlayStrings(base, overlay string) string {
	baseLines := splitLines(base)
	overlayLines := splitLines(overlay)

	maxLines := len(baseLines)
	if len(overlayLines) > maxLines {
		maxLines = len(overlayLines)
	}

	result := make([]string, maxLines)
	for i := range maxLines {
		var baseLine, overlayLine string
		if i < len(baseLines) {
			baseLine = baseLines[i]
		}
		if i < len(overlayLines) {
			overlayLine = overlayLines[i]
		}

		baseRunes := []rune(baseLine)
		overlayRunes := []rune(overlayLine)

		maxLen := len(baseRunes)
		if len(overlayRunes) > maxLen {
			maxLen = len(overlayRunes)
		}

		merged := make([]rune, maxLen)
		for j := 0; j < maxLen; j++ {
			baseChar, overlayChar := ' ', ' '
			if j < len(baseRunes) {
				baseChar = baseRunes[j]
			}
			if j < len(overlayRunes) {
				overlayChar = overlayRunes[j]
			}

			if overlayChar != ' ' {
				merged[j] = overlayChar
			} else {
				merged[j] = baseChar
			}
		}
		result[i] = string(merged)
	}

	return joinLines(result)
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := range len(s) {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	result := lines[0]
	for i := 1; i < len(lines); i++ {
		result += "\n" + lines[i]
	}
	return result
}
