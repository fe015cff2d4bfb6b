package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/OpenTraceLab/OpenTraceFPW/internal/config"
)

var (
	// Global flags
	verbose    bool
	configFile string

	// Set up by the root command before any subcommand runs
	cfg    *config.Config
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "fpw",
	Short: "OpenTraceFPW - footprint wizard for gEDA PCB",
	Long: `OpenTraceFPW (fpw) turns a set of package parameters into a pcb footprint:
  - generate footprints from wizard files, spreadsheets or built-in presets
  - check parameters against the design rules without writing anything
  - browse and export the preset library

Settings are read from fpw.toml in the working directory (or --config) and
may be overridden by FPW_* environment variables.

Examples:
  fpw generate --type SO --name ?SOIC127P600X175-8N   # Generate from a preset
  fpw generate part.fpw                               # Regenerate from a wizard file
  fpw check --sheet parts.xlsx                        # Design rule check only
  fpw presets list QFN                                # List QFN presets`,
	Version:           "0.9.0",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default ./fpw.toml)")
}

// setup loads the configuration and builds the logger shared by all
// subcommands.
func setup(cmd *cobra.Command, args []string) error {
	c, path, err := config.Load(config.LoadOptions{File: configFile})
	if err != nil {
		return err
	}
	level, err := c.Level()
	if err != nil {
		return err
	}
	if verbose {
		level = log.DebugLevel
	}

	cfg = c
	logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "fpw",
		Level:  level,
	})
	if path != "" {
		logger.Debug("loaded config", "path", path)
	}
	return nil
}
