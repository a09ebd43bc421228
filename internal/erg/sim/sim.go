// Package sim generates plausible rowing telemetry for sessions without a
// physical monitor. One Simulator models one rower holding a steady-state
// piece, with per-tick jitter around the configured targets.
package sim

import (
	"math"
	"math/rand"
	"time"

	"github.com/JoBlockins/concept2-data-analyzer/internal/erg"
	"github.com/JoBlockins/concept2-data-analyzer/internal/telemetry"
)

const (
	DefaultTargetSPM  = 35.0
	DefaultTargetPace = 100.0 // seconds per 500m
	DefaultTick       = 500 * time.Millisecond

	// Chance that a poll catches the rower mid-piece rather than resting.
	defaultActiveChance = 0.8

	// Meters gained per completed stroke.
	strokeMetersMin = 1.3
	strokeMetersMax = 1.55

	// watts = powerK / (pace/500)^3, the ergometer's inverse-cube law.
	powerK = 2.8
	// Pace never enters the power law at or below zero.
	paceFloor = 1.0

	activeHeartRate  = 175
	restingHeartRate = 140

	// Rough calories-from-watts metabolic factor.
	metabolicFactor = 4.0
)

// Simulator produces one sample per Read call. State advances at full
// precision; rounding applies only to the emitted sample. A Simulator is
// owned by a single session and is not safe for concurrent use.
type Simulator struct {
	targetSPM    float64
	targetPace   float64
	tick         time.Duration
	activeChance float64
	rng          *rand.Rand

	workoutTime   float64
	totalDistance float64
	strokeCount   int
	calories      float64
	rowing        bool
	lastStrokeAt  time.Time
}

var _ erg.Source = (*Simulator)(nil)

type Option func(*Simulator)

// WithTargetSPM sets the cadence the rower holds.
func WithTargetSPM(spm float64) Option {
	return func(s *Simulator) { s.targetSPM = spm }
}

// WithTargetPace sets the 500m pace, in seconds, the rower holds.
func WithTargetPace(pace float64) Option {
	return func(s *Simulator) { s.targetPace = pace }
}

// WithTick sets the nominal polling interval that workout time advances by
// on each active tick.
func WithTick(d time.Duration) Option {
	return func(s *Simulator) { s.tick = d }
}

// WithActiveChance overrides the probability that a poll catches the rower
// mid-piece. Tests pin it to 0 or 1.
func WithActiveChance(p float64) Option {
	return func(s *Simulator) { s.activeChance = p }
}

// WithRand injects a deterministic random source.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) { s.rng = rng }
}

func New(opts ...Option) *Simulator {
	s := &Simulator{
		targetSPM:    DefaultTargetSPM,
		targetPace:   DefaultTargetPace,
		tick:         DefaultTick,
		activeChance: defaultActiveChance,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Read generates the next sample. The caller supplies the wall clock, which
// drives stroke timing: a stroke completes whenever 60/targetSPM seconds
// have passed since the last one. Idle ticks report zero for the
// instantaneous fields and leave every cumulative counter untouched.
func (s *Simulator) Read(now time.Time) (telemetry.Sample, error) {
	var (
		strokeRate float64
		pace       float64
		power      float64
		heartRate  = restingHeartRate
	)

	if s.rng.Float64() < s.activeChance {
		if !s.rowing {
			s.rowing = true
			s.lastStrokeAt = now
		}

		s.workoutTime += s.tick.Seconds()

		if now.Sub(s.lastStrokeAt).Seconds() >= 60.0/s.targetSPM {
			s.strokeCount++
			s.lastStrokeAt = now
			s.totalDistance += strokeMetersMin + s.rng.Float64()*(strokeMetersMax-strokeMetersMin)
		}

		strokeRate = s.targetSPM + s.uniform(-3, 5)
		pace = s.targetPace + s.uniform(-5, 5)
		if pace < paceFloor {
			pace = paceFloor
		}
		power = powerK / math.Pow(pace/500.0, 3)
		s.calories += s.tick.Seconds() / 3600.0 * power * metabolicFactor
		heartRate = activeHeartRate + s.rng.Intn(31) - 15
	}

	var strokeLength float64
	if s.strokeCount > 0 {
		strokeLength = s.totalDistance / float64(s.strokeCount)
	}

	return telemetry.Sample{
		Time:         round1(s.workoutTime),
		Distance:     s.totalDistance,
		StrokeRate:   round1(strokeRate),
		Pace:         round1(pace),
		Power:        round1(power),
		Calories:     round1(s.calories),
		HeartRate:    heartRate,
		StrokeCount:  s.strokeCount,
		StrokeLength: round2(strokeLength),
	}, nil
}

// Status reports erg.StatusRowing once rowing has started, else
// erg.StatusReady. Derived read, no state change.
func (s *Simulator) Status() string {
	if s.rowing {
		return erg.StatusRowing
	}
	return erg.StatusReady
}

func (s *Simulator) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
