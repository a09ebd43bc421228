package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	dotConfig   = ".config"
	appName     = "c2"
	workoutsDir = "workouts"
)

// Workouts returns the default directory recordings are written to.
func Workouts() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, dotConfig, appName, workoutsDir), nil
}
