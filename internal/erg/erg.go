// Package erg defines the contract between the telemetry core and whatever
// produces samples: a physical monitor adapter or the built-in simulator.
package erg

import (
	"errors"
	"time"

	"github.com/JoBlockins/concept2-data-analyzer/internal/telemetry"
)

// ErrNoData reports that the producer has nothing fresh to hand out this
// poll. Callers skip the tick and ask again on their own cadence.
var ErrNoData = errors.New("erg: no data available")

// Device status strings as the PM5 reports them.
const (
	StatusRowing = "Rowing"
	StatusReady  = "Ready"
)

// Source is a pull-based telemetry producer. The caller owns the polling
// cadence; implementations never block, sleep, or run background work of
// their own.
type Source interface {
	// Read returns the next sample. The caller passes the current
	// wall-clock time so implementations stay clock-free and testable.
	Read(now time.Time) (telemetry.Sample, error)

	// Status reports the device state, StatusRowing or StatusReady.
	Status() string
}
