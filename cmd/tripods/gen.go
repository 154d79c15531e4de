package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/tripods/gridfile"
)

func newGenCmd() *cobra.Command {
	var (
		rows, cols, maxValue int
		seed                 int64
		output               string
	)
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a random grid file",
		Long: `Generate a random grid in the tripods input format. The same seed always
produces the same grid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := gridfile.Random(rows, cols, maxValue, seed)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return gridfile.Write(cmd.OutOrStdout(), values)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := gridfile.Write(f, values); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 10, "Number of rows")
	cmd.Flags().IntVar(&cols, "cols", 10, "Number of columns")
	cmd.Flags().IntVar(&maxValue, "max", 9, "Largest cell value")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 uses a fixed default)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
