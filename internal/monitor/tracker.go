// Package monitor tracks live stroke form over a short trailing window,
// the way a coach watches the last few strokes rather than the whole piece.
package monitor

import "github.com/JoBlockins/concept2-data-analyzer/internal/telemetry"

// DefaultWindow is how many recent strokes the tracker averages over.
const DefaultWindow = 5

// StrokeTracker watches a live sample stream and keeps the stroke lengths
// of the most recent strokes. The window advances only when stroke_count
// does; idle ticks and intra-stroke ticks leave it untouched.
type StrokeTracker struct {
	window          int
	lengths         []float64
	lastStrokeCount int
	current         float64
}

func NewStrokeTracker(window int) *StrokeTracker {
	if window <= 0 {
		window = DefaultWindow
	}
	return &StrokeTracker{window: window}
}

// Observe feeds one live sample to the tracker. Every sample refreshes the
// current reading; a stroke-count increase additionally pushes the sample's
// stroke length into the window, evicting the oldest entry once the window
// is full.
func (t *StrokeTracker) Observe(sample telemetry.Sample) {
	t.current = sample.StrokeLength

	if sample.StrokeCount <= t.lastStrokeCount {
		return
	}
	t.lastStrokeCount = sample.StrokeCount

	t.lengths = append(t.lengths, sample.StrokeLength)
	if len(t.lengths) > t.window {
		t.lengths = t.lengths[1:]
	}
}

// Current returns the stroke length reported by the latest sample.
func (t *StrokeTracker) Current() float64 {
	return t.current
}

// Average returns the mean stroke length across the window, 0 before the
// first stroke.
func (t *StrokeTracker) Average() float64 {
	if len(t.lengths) == 0 {
		return 0
	}
	var sum float64
	for _, v := range t.lengths {
		sum += v
	}
	return sum / float64(len(t.lengths))
}
