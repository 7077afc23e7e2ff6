package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/brogergvhs/hqnews/internal/comic"
	"github.com/brogergvhs/hqnews/internal/config"
	"github.com/brogergvhs/hqnews/internal/news"
	"github.com/brogergvhs/hqnews/internal/script"
	"github.com/brogergvhs/hqnews/internal/ui"
	"github.com/brogergvhs/hqnews/internal/util"

	"github.com/spf13/cobra"
)

var (
	// source
	flagSourceURL     string
	flagSourceLabel   string
	flagHeadlineClass string

	// headers/auth
	flagCookie     string
	flagCookieFile string
	flagUserAgent  string
	flagTimeout    int
	flagCloudflare bool

	// ai
	flagAIProvider string
	flagAIModel    string

	flagLogFile string
)

// addSourceFlags registers the flags shared by serve and generate.
func addSourceFlags(c *cobra.Command) {
	c.Flags().StringVar(&flagSourceURL, "source-url", "", "news homepage scraped in automatic mode")
	c.Flags().StringVar(&flagSourceLabel, "source-label", "", "source name shown for scraped headlines")
	c.Flags().StringVar(&flagHeadlineClass, "headline-class", "", "CSS class of the headline anchors")

	c.Flags().StringVar(&flagCookie, "cookie", "", "cookie string, e.g. \"key=value; other=123\"")
	c.Flags().StringVar(&flagCookieFile, "cookie-file", "", "path to a text file with cookies (one header line)")
	c.Flags().StringVar(&flagUserAgent, "user-agent", "", "override User-Agent")
	c.Flags().IntVar(&flagTimeout, "timeout", 0, "HTTP timeout in seconds")
	c.Flags().BoolVar(&flagCloudflare, "cloudflare-bypass", false, "wrap the HTTP transport with the Cloudflare bypass")

	c.Flags().StringVar(&flagAIProvider, "ai-provider", "", "AI provider for scripts (openai|anthropic)")
	c.Flags().StringVar(&flagAIModel, "ai-model", "", "AI model, empty for the provider default")

	c.Flags().StringVar(&flagLogFile, "log-file", "", "also write logs to this file (rotated)")
}

func sourceOptions() config.Options {
	return config.Options{
		IgnoreConfig:     flagIgnoreConfig,
		Debug:            flagDebug,
		LogFile:          flagLogFile,
		SourceURL:        flagSourceURL,
		SourceLabel:      flagSourceLabel,
		HeadlineClass:    flagHeadlineClass,
		Cookie:           flagCookie,
		CookieFile:       flagCookieFile,
		UserAgent:        flagUserAgent,
		TimeoutSeconds:   flagTimeout,
		CloudflareBypass: flagCloudflare,
		AIProvider:       flagAIProvider,
		AIModel:          flagAIModel,
	}
}

type app struct {
	cfg     *config.Config
	log     *ui.Logger
	service *comic.Service
}

func newApp(cfg *config.Config) (*app, error) {
	logSvc := ui.NewLogger(ui.LoggerOptions{Debug: cfg.Debug, LogFile: cfg.LogFile})

	client, err := util.NewHTTPClient(util.HTTPClientOptions{
		Timeout:          cfg.Timeout(),
		UserAgent:        cfg.UserAgent,
		Cookie:           cfg.Cookie,
		CookieFile:       cfg.CookieFile,
		CloudflareBypass: cfg.CloudflareBypass,
		DebugLogger:      logSvc,
	})
	if err != nil {
		_ = logSvc.Close()
		return nil, err
	}

	scr := news.NewScraper(client, news.ScraperOptions{
		Homepage:      cfg.SourceURL,
		Label:         cfg.SourceLabel,
		HeadlineClass: cfg.HeadlineClass,
		Attempts:      cfg.Retries,
		Log:           logSvc,
	})

	provider, model := cfg.AIProvider, cfg.AIModel
	aiFactory := func(apiKey string) (script.Generator, error) {
		llm, err := script.NewLLMClient(provider, apiKey, model)
		if err != nil {
			return nil, err
		}
		return script.NewAIGenerator(llm, logSvc), nil
	}

	return &app{
		cfg:     cfg,
		log:     logSvc,
		service: comic.NewService(news.NewResolver(scr, logSvc), aiFactory),
	}, nil
}

func (a *app) Close() {
	_ = a.log.Close()
}

// envAPIKey returns the key for provider from the environment (or .env).
func envAPIKey(provider string) string {
	if strings.EqualFold(strings.TrimSpace(provider), "anthropic") {
		return os.Getenv("ANTHROPIC_API_KEY")
	}
	return os.Getenv("OPENAI_API_KEY")
}

func printConfigSource(used string) {
	if used != "" {
		fmt.Printf("Config file: %s\n", used)
	}
}

func elapsed(start time.Time) time.Duration {
	return time.Since(start).Round(time.Millisecond)
}
