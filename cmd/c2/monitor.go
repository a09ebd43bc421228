package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/JoBlockins/concept2-data-analyzer/internal/config"
	"github.com/JoBlockins/concept2-data-analyzer/internal/erg/sim"
	"github.com/JoBlockins/concept2-data-analyzer/internal/recorder"
	"github.com/JoBlockins/concept2-data-analyzer/internal/tui"
	"github.com/JoBlockins/concept2-data-analyzer/internal/xslog"
)

func runMonitor(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Read()
	if err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	logger := xslog.NewLogger(os.Stderr, cfg.Level())
	slog.SetDefault(logger)

	logger.Debug("starting monitor",
		xslog.Version(),
		xslog.Path(cfg.DataDir),
		xslog.SplitDistance(cfg.SplitDistance),
		xslog.Duration(cfg.PollInterval),
	)

	source := sim.New(
		sim.WithTargetSPM(cfg.TargetSPM),
		sim.WithTargetPace(cfg.TargetPace),
		sim.WithTick(cfg.PollInterval),
	)

	deps := tui.Deps{
		Source:        source,
		Recorder:      recorder.New(cfg.DataDir),
		PollInterval:  cfg.PollInterval,
		SplitDistance: cfg.SplitDistance,
	}
	model := tui.New(deps)

	p := tea.NewProgram(&model)

	finalModel, err := p.Run()
	if err != nil {
		logger.Error("failed to run monitor", xslog.Error(err))
		return err
	}

	// leave the last workout's report in the terminal scrollback
	if m, ok := finalModel.(*tui.Model); ok {
		if workout, done := m.FinalReport(); done {
			logger.Debug("workout complete",
				xslog.SessionID(workout.SessionID),
				xslog.Samples(workout.Samples),
			)
			fmt.Print(workout.Text())
		}
	}

	return nil
}
