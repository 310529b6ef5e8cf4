package main

import (
	"os"

	"github.com/aretw0/mosaic"
	"github.com/aretw0/mosaic/pkg/observability"
	"github.com/aretw0/mosaic/pkg/screen"
	"github.com/muesli/termenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var renderCmd = &cobra.Command{
	Use:   "render [scene]",
	Short: "Render a scene",
	Long:  `Runs the scene pipeline over every coordinate of the range and prints one line per row.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Bool("plain", false, "Print raw values without colour")
	renderCmd.Flags().Bool("color", false, "Force colour output even when stdout is not a terminal")
	renderCmd.Flags().String("x", "", "Override the x range, as start:end")
	renderCmd.Flags().String("y", "", "Override the y range, as start:end")
	renderCmd.Flags().Bool("metrics", false, "Log render metrics when done")

	rootCmd.RunE = renderCmd.RunE
	rootCmd.Args = renderCmd.Args
}

func runRender(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	opts := []mosaic.Option{mosaic.WithLogger(logger)}

	if useColor(cmd) {
		profile := termenv.EnvColorProfile()
		if profile == termenv.Ascii {
			profile = termenv.ANSI256
		}
		opts = append(opts, mosaic.WithColor(profile))
	}

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	opts = append(opts, mosaic.WithMetrics(metrics))

	eng, err := mosaic.New(scenePath(cmd, args), opts...)
	if err != nil {
		return err
	}

	rng, err := rangeOverride(cmd, eng.Range())
	if err != nil {
		return err
	}
	if rng != eng.Range() {
		eng = eng.Within(rng)
	}

	renderErr := eng.Render(cmd.OutOrStdout())

	if show, _ := cmd.Flags().GetBool("metrics"); show {
		families, err := reg.Gather()
		if err != nil {
			return err
		}
		for _, mf := range families {
			for _, m := range mf.GetMetric() {
				logger.Warn("metric", "name", mf.GetName(), "value", m.GetCounter().GetValue())
			}
		}
	}
	return renderErr
}

func useColor(cmd *cobra.Command) bool {
	if plain, _ := cmd.Flags().GetBool("plain"); plain {
		return false
	}
	if force, _ := cmd.Flags().GetBool("color"); force {
		return true
	}
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func rangeOverride(cmd *cobra.Command, rng screen.Range) (screen.Range, error) {
	for _, axis := range []struct {
		flag string
		span *screen.Span
	}{
		{"x", &rng.X},
		{"y", &rng.Y},
	} {
		text, _ := cmd.Flags().GetString(axis.flag)
		if text == "" {
			continue
		}
		s, err := screen.ParseSpan(text)
		if err != nil {
			return rng, err
		}
		*axis.span = s
	}
	return rng, nil
}
