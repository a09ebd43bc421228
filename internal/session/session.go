// Package session holds the in-memory workout session: an ordered,
// append-only sequence of telemetry samples with a stable identity.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/JoBlockins/concept2-data-analyzer/internal/telemetry"
)

// Session is owned by a single recording loop during capture. Analysis
// consumers never read it directly; they work on a Snapshot taken after
// the recording is closed.
type Session struct {
	ID        string
	StartedAt time.Time

	samples []telemetry.Sample
}

func New() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// Append adds one sample to the end of the session. Samples arrive from a
// single producer in time order; the session does not re-sort.
func (s *Session) Append(sample telemetry.Sample) {
	s.samples = append(s.samples, sample)
}

func (s *Session) Len() int {
	return len(s.samples)
}

// Last returns the most recent sample, if any.
func (s *Session) Last() (telemetry.Sample, bool) {
	if len(s.samples) == 0 {
		return telemetry.Sample{}, false
	}
	return s.samples[len(s.samples)-1], true
}

// Snapshot returns a copy of the recorded sequence. Mutating the returned
// slice never affects the session, so callers can hand it to analysis while
// a new recording starts.
func (s *Session) Snapshot() []telemetry.Sample {
	if len(s.samples) == 0 {
		return nil
	}
	out := make([]telemetry.Sample, len(s.samples))
	copy(out, s.samples)
	return out
}
