package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/mosaic/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "mosaic",
	Short:         "Mosaic renders grid scenes through typed process pipelines",
	Long:          `Mosaic loads a YAML scene (grid, range, palette, steps) and renders it cell by cell to the terminal.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("scene", "scene.yaml", "Scene file to load")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// scenePath resolves the scene from the first argument or the --scene flag.
func scenePath(cmd *cobra.Command, args []string) string {
	path, _ := cmd.Flags().GetString("scene")
	if !cmd.Flags().Changed("scene") && len(args) > 0 {
		path = args[0]
	}
	return path
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return logging.NewWithWriter(cmd.ErrOrStderr(), level)
}
