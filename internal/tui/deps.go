package tui

import (
	"time"

	"github.com/JoBlockins/concept2-data-analyzer/internal/erg"
	"github.com/JoBlockins/concept2-data-analyzer/internal/recorder"
)

type Deps struct {
	Source        erg.Source
	Recorder      *recorder.Recorder
	PollInterval  time.Duration
	SplitDistance float64
}
