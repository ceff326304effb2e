package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"satkit/internal/config"
	"satkit/internal/gdal"
	"satkit/internal/logging"
)

var cfg *config.Config

var cfgPath string
var logLevel string
var logFormat string
var gdalMode string
var timeout time.Duration

var rootCmd = &cobra.Command{
	Use:   "satkit",
	Short: "satellite imagery toolkit",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	SilenceUsage: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Log.Format = logFormat
		}
		if cmd.Flags().Changed("gdal-mode") {
			cfg.GDAL.Mode = gdalMode
		}
		logging.Setup(cfg.Log.Level, cfg.Log.Format)

		if err := gdal.Initialize(cmd.Context(), gdal.Options{
			Mode:        gdal.Mode(cfg.GDAL.Mode),
			DockerImage: cfg.GDAL.DockerImage,
			WorkDir:     cfg.GDAL.WorkDir,
		}); err != nil {
			return fmt.Errorf("initialize gdal: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, _ []string) {
		gdal.Shutdown()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format (text, json)")
	rootCmd.PersistentFlags().StringVar(&gdalMode, "gdal-mode", "auto", "gdal execution mode (auto, local, docker)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "per-command timeout")
}

func opTimeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}
