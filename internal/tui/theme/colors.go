package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorAccent    = lipgloss.Color("#00B2CA") // Concept2 flywheel blue, titles and highlights
	ColorDistance  = lipgloss.Color("#7DCFB6") // distance and stroke metrics
	ColorPace      = lipgloss.Color("#FBD87F") // pace and rate metrics
	ColorPower     = lipgloss.Color("#F79256") // power and calorie metrics
	ColorHeartRate = lipgloss.Color("#FF4B5C") // heart rate
	ColorRecording = lipgloss.Color("#FF0026") // REC indicator
	ColorReady     = lipgloss.Color("#16EC06") // device ready/rowing status
)

var (
	ColorBgDark = lipgloss.Color("#101518")
)
