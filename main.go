package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/phravins/pagecraft/internal/ai"
	"github.com/phravins/pagecraft/internal/ai/providers"
	"github.com/phravins/pagecraft/internal/config"
	"github.com/phravins/pagecraft/internal/content"
	"github.com/phravins/pagecraft/internal/export"
	"github.com/phravins/pagecraft/internal/history"
	"github.com/phravins/pagecraft/internal/layout"
	"github.com/phravins/pagecraft/internal/tui"
	"github.com/phravins/pagecraft/pkg/logger"
	"github.com/phravins/pagecraft/pkg/utils"
)

var rootCmd = &cobra.Command{
	Use:     "pagecraft",
	Version: config.Version,
	Short:   "Generate landing page layouts from a brand description",
	Long: `Pagecraft turns a short brand description into a landing page layout:
- AI written title, tagline and call to action (with keyword fallbacks)
- Colors, fonts, spacing and enter animations
- Export as React, Shopify Liquid or static HTML, or as export.zip
- Live browser preview with 'pagecraft serve'`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return tui.Run(layout.NewStore(), a.gen, a.format, a.cfg.OutputDir, a.log)
	},
}

// app holds what every command needs: settings, logger and the content generator.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	provider ai.Provider
	gen      *content.Generator
	format   export.Format
}

func newApp() (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	log := logger.NewLogger()

	provider, err := providers.GetProvider(cfg)
	if err != nil {
		// Generation still works from keyword defaults.
		log.Warn("text generation backend unavailable", logger.Error(err))
		provider = nil
	}

	format, err := export.ParseFormat(cfg.DefaultFormat)
	if err != nil {
		log.Warn("invalid default_format, using react", slog.String("value", cfg.DefaultFormat))
		format = export.FormatReact
	}

	return &app{
		cfg:      cfg,
		log:      log,
		provider: provider,
		gen:      content.NewGenerator(provider, log),
		format:   format,
	}, nil
}

// record adds a written export to the history log. Failures are only logged.
func (a *app) record(cfg layout.Configuration, format export.Format, path string) {
	h, err := history.Default()
	if err == nil {
		err = h.Add(cfg.Content.PromptText, string(format), path)
	}
	if err != nil {
		a.log.Warn("could not record export", logger.Error(err))
	}
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(ai.AICmd)
	ai.AICmd.AddCommand(aiInfoCmd)
	ai.AICmd.AddCommand(aiTestCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		utils.PrintError(err.Error())
		os.Exit(1)
	}
}
