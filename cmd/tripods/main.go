package main

import (
	"os"

	"github.com/katalvlaran/tripods/internal/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logging.NewLogger(os.Stderr, logging.LevelFromString("error")).Error("Command execution failed", "error", err)
		os.Exit(1)
	}
}
