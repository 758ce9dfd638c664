package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/estateworks/estates-go/internal/config"
	"github.com/estateworks/estates-go/internal/loader"
	"github.com/estateworks/estates-go/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard JSON API",
	Long: `Load the workbook and serve the query engine over HTTP for the browser
dashboard. The workbook can be reloaded at runtime via POST /api/reload.

Environment overrides (also read from a .env file):
  ESTATES_ADDR      listen address
  ESTATES_WORKBOOK  workbook path`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	var cfg *config.Config
	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromDir(cwd)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if wb := os.Getenv("ESTATES_WORKBOOK"); wb != "" {
		cfg.Estates.Workbook = wb
	}
	workbookPath := cfg.WorkbookPath(cwd)

	store, err := loader.Open(workbookPath)
	if err != nil {
		return fmt.Errorf("failed to load workbook: %w", err)
	}

	addr := cfg.Estates.Server.Addr
	if env := os.Getenv("ESTATES_ADDR"); env != "" {
		addr = env
	}
	if serveAddr != "" {
		addr = serveAddr
	}

	srv := server.New(store, cfg, func() error {
		return loader.Reload(store, workbookPath)
	})
	r := server.NewRouter(srv)

	log.Printf("serving estate dashboard on %s (workbook %s)", addr, workbookPath)
	if err := r.Run(addr); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
