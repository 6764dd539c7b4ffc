package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neozi12/portfolio/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the project catalog",
}

var catalogValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a catalog file, or the built-in catalog when no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			c   *catalog.Catalog
			err error
		)
		if len(args) == 1 {
			c, err = catalog.LoadFile(args[0])
		} else {
			c, err = catalog.Default()
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, p := range c.Projects() {
			fmt.Fprintf(out, "%-12s %-10s %2d screenshots, %d snippets\n",
				p.Key, p.Number, len(p.Screenshots), len(p.Snippets))
		}
		fmt.Fprintf(out, "OK: %d projects\n", c.Len())
		return nil
	},
}

func init() {
	catalogCmd.AddCommand(catalogValidateCmd)
	rootCmd.AddCommand(catalogCmd)
}
