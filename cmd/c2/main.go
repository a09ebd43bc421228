package main

import (
	"context"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JoBlockins/concept2-data-analyzer/internal/version"
)

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:     "c2",
		Short:   "Concept2 rowing telemetry in your terminal",
		Version: version.Get(),
		RunE:    runMonitor,
	}

	rootCmd.AddCommand(analyzeCmd())

	if err := fang.Execute(context.Background(), rootCmd, fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM)); err != nil {
		os.Exit(1)
	}
}
