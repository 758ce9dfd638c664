package cmd

import (
	"fmt"
	"os"

	"github.com/estateworks/estates-go/internal/config"
	"github.com/estateworks/estates-go/internal/loader"
	"github.com/estateworks/estates-go/internal/output"
	"github.com/estateworks/estates-go/internal/portfolio"
)

// loadStore resolves configuration and loads the workbook into a store.
// Shared by every command that reads the portfolio.
func loadStore() (*portfolio.Store, *config.Config, error) {
	if noColor {
		output.DisableColor()
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	var cfg *config.Config
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromDir(cwd)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := loader.Open(cfg.WorkbookPath(cwd))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load workbook: %w", err)
	}

	return store, cfg, nil
}
