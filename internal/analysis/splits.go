package analysis

import "github.com/JoBlockins/concept2-data-analyzer/internal/telemetry"

// DefaultSplitDistance is the conventional erg split length in meters.
const DefaultSplitDistance = 500.0

// Split summarizes one fixed-distance segment of a workout.
type Split struct {
	Number          int     `json:"split_number"`
	Distance        float64 `json:"distance"`
	AvgStrokeLength float64 `json:"avg_stroke_length"`
	AvgPace         float64 `json:"avg_pace"`
	AvgPower        float64 `json:"avg_power"`
	Time            float64 `json:"time"`
}

// Splits partitions a workout into fixed-distance segments and summarizes
// each. A split closes at the first sample whose distance reaches the
// segment target; that boundary sample is both the last sample of the split
// it closes and the first sample of the next one, so consecutive splits
// share their endpoint. Samples after the last boundary never form a
// partial split. Empty input or a non-positive splitDistance yields nil;
// callers validate the distance through configuration, where it defaults
// to DefaultSplitDistance.
func Splits(samples []telemetry.Sample, splitDistance float64) []Split {
	if len(samples) == 0 || splitDistance <= 0 {
		return nil
	}

	var out []Split
	startIdx := 0
	startDistance := samples[0].Distance

	for i, s := range samples {
		if s.Distance < startDistance+splitDistance {
			continue
		}

		seg := samples[startIdx : i+1]
		strokeLengths := collectPositive(seg, telemetry.Sample.DerivedStrokeLength)
		paces := collectPositive(seg, func(s telemetry.Sample) float64 { return s.Pace })
		powers := collectPositive(seg, func(s telemetry.Sample) float64 { return s.Power })

		out = append(out, Split{
			Number:          len(out) + 1,
			Distance:        splitDistance,
			AvgStrokeLength: mean(strokeLengths),
			AvgPace:         mean(paces),
			AvgPower:        mean(powers),
			Time:            seg[len(seg)-1].Time - seg[0].Time,
		})

		startIdx = i
		startDistance = s.Distance
	}

	return out
}
