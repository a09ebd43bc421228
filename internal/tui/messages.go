package tui

import (
	"time"

	"github.com/JoBlockins/concept2-data-analyzer/internal/telemetry"
)

type PollTickMsg struct {
	At time.Time
}

type SampleMsg struct {
	At     time.Time
	Sample telemetry.Sample
	Status string
	Err    error
}
