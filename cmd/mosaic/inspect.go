package main

import (
	"fmt"

	"github.com/aretw0/mosaic"
	"github.com/aretw0/mosaic/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [scene]",
	Short: "Summarize a scene",
	Long:  `Prints the grid size, render range, palette legend and effective pipeline of a scene.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, err := mosaic.New(scenePath(cmd, args), mosaic.WithLogger(newLogger(cmd)))
		if err != nil {
			return err
		}

		md := eng.Legend()
		if raw, _ := cmd.Flags().GetBool("raw"); raw {
			fmt.Fprint(cmd.OutOrStdout(), md)
			return nil
		}

		style, _ := cmd.Flags().GetString("style")
		render, err := tui.NewRenderer(style)
		if err != nil {
			return err
		}
		out, err := render(md)
		if err != nil {
			return fmt.Errorf("failed to render legend: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)

	inspectCmd.Flags().Bool("raw", false, "Print the markdown source instead of rendering it")
	inspectCmd.Flags().String("style", "", "Glamour style (dark, light, notty); auto-detected when empty")
}
