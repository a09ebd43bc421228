// Package analysis computes workout statistics over closed sample
// sequences. Everything here is pure: inputs are read-only snapshots,
// outputs are fresh records.
package analysis

import (
	"math"

	"github.com/JoBlockins/concept2-data-analyzer/internal/telemetry"
)

// Summary aggregates one completed workout. Values are unrounded; display
// precision is the renderer's concern.
type Summary struct {
	TotalTime               float64 `json:"total_time"`
	TotalDistance           float64 `json:"total_distance"`
	TotalStrokes            int     `json:"total_strokes"`
	AvgStrokeLength         float64 `json:"avg_stroke_length"`
	BestStrokeLength        float64 `json:"best_stroke_length"`
	WorstStrokeLength       float64 `json:"worst_stroke_length"`
	StrokeLengthConsistency float64 `json:"stroke_length_consistency"`
	AvgStrokeRate           float64 `json:"avg_stroke_rate"`
	AvgPace                 float64 `json:"avg_pace"`
	AvgPower                float64 `json:"avg_power"`
	AvgCaloriesPerHour      float64 `json:"avg_calories_per_hour"`
}

// Summarize computes aggregate statistics for a finished workout. The
// boolean is false when samples is empty; callers check it before
// formatting anything.
//
// Totals are read from the last sample, which carries the cumulative
// fields. Averages are taken over positive readings only: zero is the
// monitor's "no measurement" sentinel, not a data point. Stroke lengths
// are recomputed from the cumulative fields rather than read from the
// persisted column.
func Summarize(samples []telemetry.Sample) (Summary, bool) {
	if len(samples) == 0 {
		return Summary{}, false
	}

	strokeLengths := collectPositive(samples, telemetry.Sample.DerivedStrokeLength)
	strokeRates := collectPositive(samples, func(s telemetry.Sample) float64 { return s.StrokeRate })
	paces := collectPositive(samples, func(s telemetry.Sample) float64 { return s.Pace })
	powers := collectPositive(samples, func(s telemetry.Sample) float64 { return s.Power })

	last := samples[len(samples)-1]

	var caloriesPerHour float64
	if last.Time > 0 {
		caloriesPerHour = last.Calories / (last.Time / 3600)
	}

	return Summary{
		TotalTime:               last.Time,
		TotalDistance:           last.Distance,
		TotalStrokes:            last.StrokeCount,
		AvgStrokeLength:         mean(strokeLengths),
		BestStrokeLength:        maxOf(strokeLengths),
		WorstStrokeLength:       minOf(strokeLengths),
		StrokeLengthConsistency: consistency(strokeLengths),
		AvgStrokeRate:           mean(strokeRates),
		AvgPace:                 mean(paces),
		AvgPower:                mean(powers),
		AvgCaloriesPerHour:      caloriesPerHour,
	}, true
}

// consistency scores how steady a series is: 100 minus the sample standard
// deviation as a percentage of the mean. Under 2 values there is no
// variability to measure, so the series counts as perfectly consistent.
// The score is not clamped; a series with sigma > mu legitimately goes
// negative.
func consistency(values []float64) float64 {
	if len(values) < 2 {
		return 100
	}
	mu := mean(values)
	if mu == 0 {
		return 0
	}
	return (1 - sampleStdDev(values, mu)/mu) * 100
}

func collectPositive(samples []telemetry.Sample, field func(telemetry.Sample) float64) []float64 {
	var out []float64
	for _, s := range samples {
		if v := field(s); v > 0 {
			out = append(out, v)
		}
	}
	return out
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStdDev uses the n-1 denominator. Callers guarantee len >= 2.
func sampleStdDev(values []float64, mu float64) float64 {
	var sum float64
	for _, v := range values {
		d := v - mu
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)-1))
}

func maxOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	out := values[0]
	for _, v := range values[1:] {
		if v > out {
			out = v
		}
	}
	return out
}

func minOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	out := values[0]
	for _, v := range values[1:] {
		if v < out {
			out = v
		}
	}
	return out
}
