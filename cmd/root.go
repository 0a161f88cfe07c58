package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/NIRMALT04/bunker-locate/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "bunker-locate",
	Short: "Resolve free-text place descriptions to coordinates",
	Long:  "Resolves a free-text description of a place into a coordinate with a calibrated confidence score, using curated registries, a gazetteer, and external geocoding providers in a staged fallback chain.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
