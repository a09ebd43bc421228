// Package telemetry defines the sample schema shared by every producer
// (hardware monitor or simulator) and consumer (recorder, analysis, display).
package telemetry

// Sample is one instantaneous reading from the rowing machine.
//
// Zero is the monitor's "no reading" sentinel for stroke_rate, pace, power,
// and stroke_length; it is a legitimate value for the cumulative fields
// (time, distance, calories, stroke_count) and for heart_rate between
// contacts. Consumers must use the Has* predicates instead of comparing
// against zero themselves.
type Sample struct {
	Time         float64 `json:"time"`          // seconds since workout start, non-decreasing
	Distance     float64 `json:"distance"`      // meters, non-decreasing
	StrokeRate   float64 `json:"stroke_rate"`   // strokes per minute; 0 = not rowing
	Pace         float64 `json:"pace"`          // seconds per 500m; 0 = no reading
	Power        float64 `json:"power"`         // watts; 0 = no reading
	Calories     float64 `json:"calories"`      // cumulative, non-decreasing
	HeartRate    int     `json:"heart_rate"`    // beats per minute
	StrokeCount  int     `json:"stroke_count"`  // cumulative, non-decreasing
	StrokeLength float64 `json:"stroke_length"` // meters per stroke; derived, see DerivedStrokeLength
}

// HasStrokeRate reports whether the sample carries a real cadence reading.
func (s Sample) HasStrokeRate() bool { return s.StrokeRate > 0 }

// HasPace reports whether the sample carries a real pace reading.
func (s Sample) HasPace() bool { return s.Pace > 0 }

// HasPower reports whether the sample carries a real power reading.
func (s Sample) HasPower() bool { return s.Power > 0 }

// HasStrokeLength reports whether the sample carries a usable stroke length.
func (s Sample) HasStrokeLength() bool { return s.StrokeLength > 0 }

// DerivedStrokeLength recomputes meters per stroke from the cumulative
// fields. The persisted StrokeLength field is convenience output from the
// producer; anything that cares recomputes rather than trusting it.
func (s Sample) DerivedStrokeLength() float64 {
	if s.StrokeCount <= 0 {
		return 0
	}
	return s.Distance / float64(s.StrokeCount)
}
