// Command gridpath finds a shortest path across an occupancy grid and shows
// it in the terminal. Settings come from GRIDPATH_* environment variables or
// a .env file; see package config.
package main

import (
	"os"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/internal/app"
	"github.com/katalvlaran/gridpath/internal/logging"
)

func main() {
	appLogger := logging.New("APP", logging.ColorGreen, os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		appLogger.Errorf("%v", err)
		os.Exit(2)
	}
	if err := app.Run(cfg, appLogger, os.Stdout); err != nil {
		appLogger.Errorf("%v", err)
		os.Exit(1)
	}
}
