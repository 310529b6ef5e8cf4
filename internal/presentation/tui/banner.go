package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the mosaic banner with the version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{"  _ __ ___   ___  ___  __ _(_) ___", "#818cf8"},
		{" | '_ ` _ \\ / _ \\/ __|/ _` | |/ __|", "#a78bfa"},
		{" | | | | | | (_) \\__ \\ (_| | | (__", "#c084fc"},
		{" |_| |_| |_|\\___/|___/\\__,_|_|\\___|", "#e879f9"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String(" v"+version).Faint())
	fmt.Fprintln(w)
}
