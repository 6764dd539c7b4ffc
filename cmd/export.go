package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neozi12/portfolio/internal/site"
)

var exportCmd = &cobra.Command{
	Use:   "export <output-dir>",
	Short: "Write the portfolio as static files",
	Long: `Renders the page once and writes index.html, the static assets and the
screenshots directory to output-dir. Project links point straight at their
repositories since there is no server to count clicks.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		r := site.NewRenderer(site.Hero{
			Owner:   cfg.Owner,
			Welcome: cfg.WelcomeText,
			Intro:   cfg.IntroText,
		}, int(cfg.AutoplayPeriod().Milliseconds()))
		page, err := r.Page(cat)
		if err != nil {
			return err
		}
		tmpl, err := site.Templates()
		if err != nil {
			return err
		}

		n, err := site.Export(args[0], tmpl, page, cfg.ScreenshotsDir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d projects (%d files) to %s\n", cat.Len(), n, args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
