package main

import (
	"fmt"
	"os"

	"github.com/aretw0/mosaic"
	"github.com/aretw0/mosaic/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of mosaic",
	Run: func(cmd *cobra.Command, args []string) {
		if f, ok := cmd.OutOrStdout().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			tui.PrintBanner(f, mosaic.Version)
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "mosaic version %s\n", mosaic.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
