package tui

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/JoBlockins/concept2-data-analyzer/internal/analysis"
	"github.com/JoBlockins/concept2-data-analyzer/internal/erg"
	"github.com/JoBlockins/concept2-data-analyzer/internal/monitor"
	"github.com/JoBlockins/concept2-data-analyzer/internal/telemetry"
	"github.com/JoBlockins/concept2-data-analyzer/internal/tui/theme"
)

type MonitorState struct {
	Sample  telemetry.Sample
	Status  string
	Tracker *monitor.StrokeTracker

	// Path is the active recording file, empty while idle.
	Path string
	Err  error
}

func NewMonitorState() MonitorState {
	return MonitorState{
		Status:  erg.StatusReady,
		Tracker: monitor.NewStrokeTracker(monitor.DefaultWindow),
	}
}

func (m *Model) MonitorView() string {
	var (
		mon    = m.state.monitor
		sample = mon.Sample
	)

	rows := []string{
		m.metricRow(
			m.metric("Time", analysis.FormatElapsed(sample.Time), theme.ColorDistance),
			m.metric("Distance", fmt.Sprintf("%.0f m", sample.Distance), theme.ColorDistance),
		),
		m.metricRow(
			m.metric("Stroke Rate", fmt.Sprintf("%.1f spm", sample.StrokeRate), theme.ColorPace),
			m.metric("Pace", analysis.FormatPace(sample.Pace)+" /500m", theme.ColorPace),
		),
		m.metricRow(
			m.metric("Power", fmt.Sprintf("%.0f W", sample.Power), theme.ColorPower),
			m.metric("Calories", fmt.Sprintf("%.1f cal", sample.Calories), theme.ColorPower),
		),
		m.metricRow(
			m.metric("Heart Rate", fmt.Sprintf("%d bpm", sample.HeartRate), theme.ColorHeartRate),
			m.metric("Strokes", fmt.Sprintf("%d", sample.StrokeCount), theme.ColorDistance),
		),
		m.metricRow(
			m.metric("DPS", fmt.Sprintf("%.2f m", mon.Tracker.Current()), theme.ColorAccent),
			m.metric(fmt.Sprintf("DPS avg(%d)", monitor.DefaultWindow), fmt.Sprintf("%.2f m", mon.Tracker.Average()), theme.ColorAccent),
		),
	}

	sections := []string{
		m.LogoView(),
		"",
		m.statusView(),
		"",
	}
	sections = append(sections, rows...)
	sections = append(sections, "", m.hintView("s: record   x: stop + report   q: quit"))

	if mon.Err != nil {
		errStyle := lipgloss.NewStyle().Foreground(theme.ColorRecording)
		sections = append(sections, "", errStyle.Render(mon.Err.Error()))
	}

	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

func (m *Model) RecIndicatorView() string {
	if m.state.monitor.Path == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(theme.ColorRecording).
		Bold(true).
		Render("● REC")
}

func (m *Model) statusView() string {
	c := theme.ColorDim
	if m.state.monitor.Status == erg.StatusRowing {
		c = theme.ColorReady
	}
	return lipgloss.NewStyle().Foreground(c).Render(m.state.monitor.Status)
}

func (m *Model) metric(label, value string, c color.Color) string {
	labelStyle := lipgloss.NewStyle().
		Foreground(theme.ColorDim).
		Width(13)

	valueStyle := lipgloss.NewStyle().
		Foreground(c).
		Bold(true).
		Width(14)

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		labelStyle.Render(label),
		valueStyle.Render(value),
	)
}

func (m *Model) metricRow(left, right string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
}

func (m *Model) hintView(hint string) string {
	return m.theme.TextDim().Render(hint)
}
