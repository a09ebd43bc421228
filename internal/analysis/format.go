package analysis

import "fmt"

// FormatElapsed renders a duration in seconds as M:SS.d.
func FormatElapsed(seconds float64) string {
	mins := int(seconds / 60)
	secs := seconds - float64(mins)*60
	return fmt.Sprintf("%d:%04.1f", mins, secs)
}

// FormatPace renders a 500m pace in seconds as M:SS.d.
func FormatPace(paceSeconds float64) string {
	return FormatElapsed(paceSeconds)
}
