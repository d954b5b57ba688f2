package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/phravins/pagecraft/internal/ai"
	"github.com/phravins/pagecraft/internal/archive"
	"github.com/phravins/pagecraft/internal/config"
	"github.com/phravins/pagecraft/internal/content"
	"github.com/phravins/pagecraft/internal/export"
	"github.com/phravins/pagecraft/internal/history"
	"github.com/phravins/pagecraft/internal/layout"
	"github.com/phravins/pagecraft/internal/tui"
	"github.com/phravins/pagecraft/internal/updater"
	"github.com/phravins/pagecraft/internal/web"
	"github.com/phravins/pagecraft/pkg/logger"
	"github.com/phravins/pagecraft/pkg/utils"
)

// layoutFlags are the configuration overrides shared by export, show and copy.
type layoutFlags struct {
	prompt      string
	title       string
	tagline     string
	cta         string
	primary     string
	secondary   string
	background  string
	headingFont string
	bodyFont    string
	animation   string
	duration    string
	easing      string
	brand       string
	images      []string
	bgImage     string
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.prompt, "prompt", "p", "", "Brand description to generate copy from")
	fl.StringVar(&f.title, "title", "", "Hero title")
	fl.StringVar(&f.tagline, "tagline", "", "Hero tagline")
	fl.StringVar(&f.cta, "cta", "", "Call to action text")
	fl.StringVar(&f.primary, "primary", "", "Primary color")
	fl.StringVar(&f.secondary, "secondary", "", "Secondary color")
	fl.StringVar(&f.background, "background", "", "Background color")
	fl.StringVar(&f.headingFont, "heading-font", "", "Heading font family")
	fl.StringVar(&f.bodyFont, "body-font", "", "Body font family")
	fl.StringVar(&f.animation, "animation", "", "Animation preset (fade-in, slide-in, scale-in, slide-up, slide-down)")
	fl.StringVar(&f.duration, "duration", "", "Animation duration, e.g. 0.5s")
	fl.StringVar(&f.easing, "easing", "", "Animation easing, e.g. ease-out")
	fl.StringVar(&f.brand, "brand", "", "Brand type (food, fashion, tech, beauty, fitness)")
	fl.StringVar(&f.bgImage, "background-image", "", "Hero background image URL")
	fl.StringSliceVar(&f.images, "image", nil, "Product image file (repeatable)")
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return layout.Str(s)
}

func (f *layoutFlags) patch() layout.Patch {
	p := layout.Patch{
		ColorTheme: &layout.ColorPatch{
			Primary:    optional(f.primary),
			Secondary:  optional(f.secondary),
			Background: optional(f.background),
		},
		FontStyle: &layout.FontPatch{
			Heading: optional(f.headingFont),
			Body:    optional(f.bodyFont),
		},
		Animation: &layout.AnimationPatch{
			Style:    optional(f.animation),
			Duration: optional(f.duration),
			Easing:   optional(f.easing),
		},
		Content: &layout.ContentPatch{
			Title:           optional(f.title),
			Tagline:         optional(f.tagline),
			CTA:             optional(f.cta),
			BackgroundImage: optional(f.bgImage),
		},
	}
	if f.brand != "" {
		b := layout.Brand(strings.ToLower(f.brand))
		p.Brand = &b
	}
	return p.ResolveFonts()
}

// build resolves defaults, generated copy, flag overrides and images into one
// configuration, in that order.
func (f *layoutFlags) build(ctx context.Context, a *app) (layout.Configuration, error) {
	store := layout.NewStore()

	if f.prompt != "" {
		prompt, err := content.ValidatePrompt(f.prompt)
		if err != nil {
			return layout.Configuration{}, err
		}
		res := a.gen.Generate(ctx, prompt)
		store.Update(res.Patch(prompt))
	}

	if f.animation != "" && !layout.IsAnimationStyle(f.animation) {
		a.log.Warn("unknown animation preset, using fade-in", slog.String("animation", f.animation))
	}
	store.Update(f.patch())

	if len(f.images) > 0 {
		sources := make([]layout.ImageSource, len(f.images))
		for i, p := range f.images {
			sources[i] = layout.FileImage(p)
		}
		images, skipped := layout.ReadImages(ctx, a.log, sources)
		for _, s := range skipped {
			utils.PrintError(fmt.Sprintf("skipped %s: %s", s.Name, s.Reason))
		}
		store.Update(layout.AddImages(images...))
	}

	return store.Snapshot(), nil
}

func formatFlag(cmd *cobra.Command, a *app) (export.Format, error) {
	name, _ := cmd.Flags().GetString("format")
	if name == "" {
		return a.format, nil
	}
	return export.ParseFormat(name)
}

var generateCmd = &cobra.Command{
	Use:   "generate [description]",
	Short: "Generate title, tagline and CTA copy for a brand",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		prompt, err := content.ValidatePrompt(strings.Join(args, " "))
		if err != nil {
			return err
		}
		res := a.gen.Generate(cmd.Context(), prompt)
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		}
		fmt.Printf("Title:   %s\nTagline: %s\nCTA:     %s\nBrand:   %s\nSource:  %s\n",
			res.Title, res.Tagline, res.CTA, res.Brand, res.Source)
		return nil
	},
}

var exportFlags layoutFlags

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the layout as React, Shopify Liquid or static HTML",
	Example: `  pagecraft export --format html --prompt "a cozy restaurant"
  pagecraft export --format react --image shoe.png --zip ./dist`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		format, err := formatFlag(cmd, a)
		if err != nil {
			return err
		}
		cfg, err := exportFlags.build(cmd.Context(), a)
		if err != nil {
			return err
		}

		if dir, _ := cmd.Flags().GetString("zip"); dir != "" {
			path, err := archive.Save(dir, cfg, format)
			if err != nil {
				return err
			}
			a.record(cfg, format, path)
			utils.PrintSuccess("Saved " + path)
			return nil
		}

		src, err := export.Render(cfg, format)
		if err != nil {
			return err
		}

		if out, _ := cmd.Flags().GetString("out"); out != "" {
			if info, err := os.Stat(out); err == nil && info.IsDir() {
				out = filepath.Join(out, export.FileName(format))
			}
			if err := utils.EnsureDir(filepath.Dir(out)); err != nil {
				return err
			}
			if err := os.WriteFile(out, []byte(src), 0644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.record(cfg, format, out)
			utils.PrintSuccess("Wrote " + out)
			return nil
		}

		if hl, _ := cmd.Flags().GetBool("highlight"); hl {
			src = tui.HighlightSource(src, format.Lexer())
		}
		fmt.Println(src)
		return nil
	},
}

var showFlags layoutFlags

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the resolved layout configuration as YAML",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		cfg, err := showFlags.build(cmd.Context(), a)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	},
}

var copyFlags layoutFlags

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy the rendered source to the clipboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		format, err := formatFlag(cmd, a)
		if err != nil {
			return err
		}
		cfg, err := copyFlags.build(cmd.Context(), a)
		if err != nil {
			return err
		}
		src, err := export.Render(cfg, format)
		if err != nil {
			return err
		}
		if err := clipboard.WriteAll(src); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		utils.PrintSuccess(fmt.Sprintf("Copied %s source (%s) to clipboard", format.Label(), export.FileName(format)))
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the generator web UI with a live preview",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = a.cfg.ServerPort
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := web.NewServer(layout.NewStore(), a.gen, a.log, web.WithDefaultFormat(a.format))
		if open, _ := cmd.Flags().GetBool("open"); open {
			if err := utils.OpenBrowser("http://localhost:" + port); err != nil {
				a.log.Warn("could not open browser", logger.Error(err))
			}
		}
		return web.StartServer(ctx, port, srv)
	},
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Edit backend and export settings interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		return tui.RunSettings(cfg)
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write settings in ~/.pagecraft.yaml",
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if !config.IsKey(key) {
			return fmt.Errorf("unknown key %q (known: %s)", key, strings.Join(config.Keys(), ", "))
		}
		if key == "default_format" {
			f, err := export.ParseFormat(value)
			if err != nil {
				return err
			}
			value = string(f)
		}
		if _, err := config.LoadConfig(); err != nil {
			return err
		}
		if err := config.SaveConfig(key, value); err != nil {
			return err
		}
		utils.PrintSuccess(fmt.Sprintf("%s updated", key))
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print a setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !config.IsKey(args[0]) {
			return fmt.Errorf("unknown key %q", args[0])
		}
		if _, err := config.LoadConfig(); err != nil {
			return err
		}
		fmt.Println(config.GetString(args[0]))
		return nil
	},
}

var aiInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the configured text generation backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if a.provider == nil {
			fmt.Printf("Backend: %s (unavailable, keyword defaults only)\n", a.cfg.AIBackend)
			return nil
		}
		location := "remote"
		if a.provider.IsLocal() {
			location = "local"
		}
		fmt.Printf("Backend: %s\nModel:   %s\nRuns:    %s\nTimeout: %s\n",
			a.provider.Name(), a.provider.Model(), location, a.cfg.RequestTimeout)
		return nil
	},
}

var aiTestCmd = &cobra.Command{
	Use:   "test [description]",
	Short: "Send one generation request and print the raw reply",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		if a.provider == nil {
			return errors.New("no text generation backend configured")
		}
		prompt, err := content.ValidatePrompt(strings.Join(args, " "))
		if err != nil {
			return err
		}
		reply, err := a.provider.Send(cmd.Context(), []ai.Message{{Role: "user", Content: content.Instruction(prompt)}})
		if err != nil {
			return err
		}
		fmt.Println(reply)
		return nil
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List exports written to disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := history.Default()
		if err != nil {
			return err
		}
		if clear, _ := cmd.Flags().GetBool("clear"); clear {
			if err := h.Clear(); err != nil {
				return err
			}
			utils.PrintSuccess("History cleared")
			return nil
		}
		if days, _ := cmd.Flags().GetInt("older-than"); days > 0 {
			n, err := h.DeleteOld(days)
			if err != nil {
				return err
			}
			utils.PrintSuccess(fmt.Sprintf("Removed %d entries older than %d days", n, days))
			return nil
		}

		entries, err := h.Load()
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No exports yet.")
			return nil
		}
		for _, e := range entries {
			fmt.Printf("%s  %-8s %s\n    %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Format, e.Path, e.Prompt)
		}
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer pagecraft release",
	RunE: func(cmd *cobra.Command, args []string) error {
		info, err := updater.CheckForUpdates(cmd.Context())
		if err != nil {
			return err
		}
		if !info.IsUpdateAvailable {
			utils.PrintSuccess(fmt.Sprintf("pagecraft %s is up to date", info.CurrentVersion))
			return nil
		}
		fmt.Printf("Update available: %s -> %s\n%s\n", info.CurrentVersion, info.LatestVersion, info.ReleaseURL)
		if install, _ := cmd.Flags().GetBool("install"); !install {
			fmt.Println("Run 'pagecraft update --install' to upgrade.")
			return nil
		}
		version, err := updater.PerformUpdate(cmd.Context())
		if err != nil {
			return err
		}
		utils.PrintSuccess(fmt.Sprintf("Updated to %s", version))
		return nil
	},
}

func init() {
	generateCmd.Flags().Bool("json", false, "Print the result as JSON")

	exportFlags.register(exportCmd)
	exportCmd.Flags().StringP("format", "f", "", "Output format: react, shopify or html")
	exportCmd.Flags().StringP("out", "o", "", "Write to this file or directory instead of stdout")
	exportCmd.Flags().String("zip", "", "Save export.zip into this directory")
	exportCmd.Flags().Bool("highlight", false, "Syntax highlight terminal output")

	showFlags.register(showCmd)

	copyFlags.register(copyCmd)
	copyCmd.Flags().StringP("format", "f", "", "Output format: react, shopify or html")

	serveCmd.Flags().String("port", "", "Port to listen on (default from server_port)")
	serveCmd.Flags().Bool("open", false, "Open the browser")

	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)

	historyCmd.Flags().Bool("clear", false, "Remove every entry")
	historyCmd.Flags().Int("older-than", 0, "Remove entries older than this many days")

	updateCmd.Flags().Bool("install", false, "Download and install the latest release")
}
