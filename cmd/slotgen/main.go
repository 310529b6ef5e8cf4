// Command slotgen writes channel slot declarations for a struct type.
//
//	//go:generate go run github.com/aretw0/mosaic/cmd/slotgen --type Cell --file cell.go --out cell_slots.go
package main

import (
	"fmt"
	"os"

	"github.com/aretw0/mosaic/internal/slotgen"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var typeName, file, out string

	cmd := &cobra.Command{
		Use:   "slotgen",
		Short: "Generate channel slots for the fields of a struct",
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := slotgen.GenerateFile(file, typeName)
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(code)
				return err
			}
			if err := os.WriteFile(out, code, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&typeName, "type", "", "Struct type to generate slots for")
	cmd.Flags().StringVar(&file, "file", os.Getenv("GOFILE"), "Source file declaring the type")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (default stdout)")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}
