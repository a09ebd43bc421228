package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/JoBlockins/concept2-data-analyzer/internal/paths"
	"github.com/JoBlockins/concept2-data-analyzer/internal/xslog"
)

type Config struct {
	// DataDir is where recordings land. Empty means the per-user default
	// under ~/.config/c2/workouts.
	DataDir       string        `env:"C2_DATA_DIR"`
	SplitDistance float64       `env:"C2_SPLIT_DISTANCE" envDefault:"500"`
	PollInterval  time.Duration `env:"C2_POLL_INTERVAL" envDefault:"500ms"`
	TargetSPM     float64       `env:"C2_TARGET_SPM" envDefault:"35"`
	TargetPace    float64       `env:"C2_TARGET_PACE" envDefault:"100"`
	LogLevel      string        `env:"C2_LOG_LEVEL" envDefault:"info"`
}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}

	if cfg.DataDir == "" {
		dir, err := paths.Workouts()
		if err != nil {
			return Config{}, err
		}
		cfg.DataDir = dir
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.SplitDistance <= 0 {
		return fmt.Errorf("split distance must be positive, got %v", c.SplitDistance)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %v", c.PollInterval)
	}
	if c.TargetSPM <= 0 {
		return fmt.Errorf("target stroke rate must be positive, got %v", c.TargetSPM)
	}
	if c.TargetPace <= 0 {
		return fmt.Errorf("target pace must be positive, got %v", c.TargetPace)
	}
	if _, err := xslog.Parse(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the configured log level. Validate catches bad values
// before anything reads this.
func (c Config) Level() xslog.Level {
	level, err := xslog.Parse(c.LogLevel)
	if err != nil {
		return xslog.Default
	}
	return level
}
