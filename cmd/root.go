package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loganko83/realcare/internal/config"
	"github.com/loganko83/realcare/internal/reality"
	"github.com/loganko83/realcare/internal/region"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "realcare",
	Short: "Reality Check feasibility engine and API",
	Long:  "Scores Korean property purchase plans against zone-based LTV ceilings and DSR lending rules, compares buying now against waiting, and serves the result API.",
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

// loadCatalog resolves the zone table: the configured file if set, the
// built-in table otherwise.
func loadCatalog() (*region.Catalog, error) {
	if cfg.Regions.CatalogPath == "" {
		return region.DefaultCatalog(), nil
	}
	return region.LoadCatalog(cfg.Regions.CatalogPath)
}

func buildCalculator(engineCfg reality.Config) (*reality.Calculator, error) {
	catalog, err := loadCatalog()
	if err != nil {
		return nil, err
	}
	return reality.NewCalculator(catalog, engineCfg)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
