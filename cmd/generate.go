package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brogergvhs/hqnews/internal/comic"
	"github.com/brogergvhs/hqnews/internal/config"
	"github.com/brogergvhs/hqnews/internal/news"
	"github.com/brogergvhs/hqnews/internal/render"
	"github.com/brogergvhs/hqnews/internal/ui"
	"github.com/brogergvhs/hqnews/internal/util"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	// selection
	flagMode  string
	flagTitle string
	flagLink  string
	flagURL   string

	// runtime
	flagAI     bool
	flagOutput string
)

func init() {
	generateCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate one comic and write hq_noticia.html. Uses the defaults from the selected config, overwritten by CLI flags",
		RunE:  runGenerate,
	}

	// selection
	generateCmd.Flags().StringVar(&flagMode, "mode", "", "news source: auto, manual or url (asks when omitted)")
	generateCmd.Flags().StringVar(&flagTitle, "title", "", "headline for manual mode")
	generateCmd.Flags().StringVar(&flagLink, "link", "", "optional link for manual mode")
	generateCmd.Flags().StringVar(&flagURL, "url", "", "article URL for url mode")

	// runtime
	generateCmd.Flags().BoolVar(&flagAI, "ai", false, "write the script with an AI model (key from OPENAI_API_KEY or ANTHROPIC_API_KEY)")
	generateCmd.Flags().StringVar(&flagOutput, "output", "", "output folder for hq_noticia.html")
	addSourceFlags(generateCmd)

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	opts := sourceOptions()
	opts.Output = flagOutput

	cfg, usedPath, err := config.LoadMerged(opts)
	if err != nil {
		return err
	}
	printConfigSource(usedPath)

	mode, err := pickMode(cmd)
	if err != nil {
		return err
	}

	req, err := buildRequest(mode)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(cfg.Output, 0755); err != nil {
		return fmt.Errorf("cannot create output folder: %w", err)
	}
	if n := util.CleanupTempFiles(cfg.Output); n > 0 {
		fmt.Printf("Removed %d leftover temp files\n", n)
	}

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	var apiKey string
	if flagAI {
		apiKey = envAPIKey(cfg.AIProvider)
		if apiKey == "" {
			a.log.Warnf("--ai set but no API key found for %s; using template script", cfg.AIProvider)
		}
	}

	ctx, stop := util.ShutdownContext(context.Background())
	defer stop()

	start := time.Now()
	pm := ui.NewProgressManager(os.Stderr)
	steps := pm.Steps("hqnews", "build", "render", "write")

	res, err := a.service.Build(ctx, req, comic.Options{UseAI: flagAI, APIKey: apiKey})
	if err != nil {
		steps.Abort()
		pm.Close()
		return err
	}
	steps.Next()

	html, err := render.ExportString(res)
	if err != nil {
		steps.Abort()
		pm.Close()
		return fmt.Errorf("render export: %w", err)
	}
	steps.Next()

	out := filepath.Join(cfg.Output, render.ExportFilename)
	if err := util.WriteFileAtomic(out, []byte(html)); err != nil {
		steps.Abort()
		pm.Close()
		return fmt.Errorf("write %s: %w", out, err)
	}
	steps.Next()
	pm.Close()

	printResult(res)

	fmt.Println()
	fmt.Println("Export Summary:")
	fmt.Printf("File:      %s\n", out)
	fmt.Printf("Size:      %s\n", util.Human(int64(len(html))))
	fmt.Printf("Generator: %s\n", res.Generator)
	fmt.Printf("Time:      %s\n", elapsed(start))

	return nil
}

func pickMode(cmd *cobra.Command) (news.Mode, error) {
	if cmd.Flags().Changed("mode") {
		return news.ParseMode(flagMode)
	}

	items := make([]string, len(news.Modes))
	for i, m := range news.Modes {
		items[i] = m.Label()
	}

	prompt := promptui.Select{
		Label: "Escolha a fonte da notícia",
		Items: items,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selection cancelled")
	}

	return news.Modes[idx], nil
}

func buildRequest(mode news.Mode) (news.Request, error) {
	req := news.Request{Mode: mode, Title: flagTitle, Link: flagLink, URL: flagURL}

	switch mode {
	case news.ModeManual:
		if strings.TrimSpace(req.Title) == "" {
			title, err := ask("Título da notícia", true)
			if err != nil {
				return req, err
			}
			req.Title = title

			link, err := ask("Link (opcional)", false)
			if err != nil {
				return req, err
			}
			req.Link = link
		}
	case news.ModeURL:
		if strings.TrimSpace(req.URL) == "" {
			u, err := ask("URL da notícia", true)
			if err != nil {
				return req, err
			}
			req.URL = u
		}
	}

	return req, nil
}

func ask(label string, required bool) (string, error) {
	prompt := promptui.Prompt{Label: label}
	if required {
		prompt.Validate = func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("campo obrigatório")
			}
			return nil
		}
	}

	v, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled")
	}

	return strings.TrimSpace(v), nil
}

func printResult(res *comic.GenerationResult) {
	fmt.Println()
	for _, w := range res.Warnings {
		fmt.Printf("! %s\n", w)
	}

	fmt.Println(res.DisplayTitle)
	fmt.Println()

	for _, row := range res.Rows() {
		for _, p := range row {
			fmt.Printf("Quadro %d: %s\n", p.Index, p.Caption)
			fmt.Printf("    %s\n", p.ImagePrompt)
		}
	}

	fmt.Println()
	fmt.Printf("Fonte: %s\n", res.Item.Source)
	fmt.Printf("Link:  %s\n", res.Item.Link)
}
