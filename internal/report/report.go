// Package report renders workout analysis for people and for machines.
package report

import (
	"fmt"
	"io"
	"strings"

	go_json "github.com/goccy/go-json"

	"github.com/JoBlockins/concept2-data-analyzer/internal/analysis"
	"github.com/JoBlockins/concept2-data-analyzer/internal/telemetry"
)

// Workout bundles everything known about one analyzed recording.
type Workout struct {
	Source    string           `json:"source,omitempty"`
	SessionID string           `json:"session_id,omitempty"`
	Samples   int              `json:"samples"`
	Summary   analysis.Summary `json:"summary"`
	Splits    []analysis.Split `json:"splits,omitempty"`
}

// Build runs the full analysis over a closed sample sequence. The boolean
// is false when there is nothing to analyze.
func Build(source string, samples []telemetry.Sample, splitDistance float64) (Workout, bool) {
	summary, ok := analysis.Summarize(samples)
	if !ok {
		return Workout{Source: source}, false
	}
	return Workout{
		Source:  source,
		Samples: len(samples),
		Summary: summary,
		Splits:  analysis.Splits(samples, splitDistance),
	}, true
}

const rule = 60

// Text renders the workout the way the monitor prints it at workout end.
func (w Workout) Text() string {
	var b strings.Builder

	line := strings.Repeat("=", rule)
	fmt.Fprintf(&b, "%s\nWORKOUT SUMMARY\n%s\n\n", line, line)

	fmt.Fprintf(&b, "Total Time:     %s\n", analysis.FormatElapsed(w.Summary.TotalTime))
	fmt.Fprintf(&b, "Total Distance: %.0f meters\n", w.Summary.TotalDistance)
	fmt.Fprintf(&b, "Total Strokes:  %d\n", w.Summary.TotalStrokes)

	b.WriteString("\n--- STROKE LENGTH (Custom Metric) ---\n")
	fmt.Fprintf(&b, "Average:        %.2f m/stroke\n", w.Summary.AvgStrokeLength)
	fmt.Fprintf(&b, "Best:           %.2f m/stroke\n", w.Summary.BestStrokeLength)
	fmt.Fprintf(&b, "Worst:          %.2f m/stroke\n", w.Summary.WorstStrokeLength)
	fmt.Fprintf(&b, "Consistency:    %.1f%%\n", w.Summary.StrokeLengthConsistency)

	b.WriteString("\n--- PERFORMANCE METRICS ---\n")
	fmt.Fprintf(&b, "Avg Stroke Rate: %.1f spm\n", w.Summary.AvgStrokeRate)
	fmt.Fprintf(&b, "Avg Pace:        %s /500m\n", analysis.FormatPace(w.Summary.AvgPace))
	fmt.Fprintf(&b, "Avg Power:       %.0f watts\n", w.Summary.AvgPower)
	fmt.Fprintf(&b, "Calories/Hour:   %.0f cal/hr\n", w.Summary.AvgCaloriesPerHour)

	if len(w.Splits) > 0 {
		dash := strings.Repeat("-", rule)
		fmt.Fprintf(&b, "\n%.0fm SPLIT ANALYSIS\n%s\n", w.Splits[0].Distance, dash)
		for _, s := range w.Splits {
			fmt.Fprintf(&b, "Split %d: DPS: %.2fm | Pace: %s | Power: %.0fW | Time: %s\n",
				s.Number,
				s.AvgStrokeLength,
				analysis.FormatPace(s.AvgPace),
				s.AvgPower,
				analysis.FormatElapsed(s.Time),
			)
		}
		b.WriteString(dash + "\n")
	}

	return b.String()
}

// WriteJSON writes the workout as indented JSON.
func (w Workout) WriteJSON(out io.Writer) error {
	enc := go_json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w); err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return nil
}
