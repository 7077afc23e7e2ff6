package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultListen        = ":8501"
	DefaultSourceURL     = "https://g1.globo.com"
	DefaultSourceLabel   = "G1"
	DefaultHeadlineClass = "feed-post-link"
	DefaultUserAgent     = "Mozilla/5.0"
	DefaultTimeout       = 15
	DefaultAIProvider    = "openai"
)

type Config struct {
	Listen  string `yaml:"listen"`
	Debug   bool   `yaml:"debug"`
	LogFile string `yaml:"log_file"`
	Output  string `yaml:"output"`

	SourceURL     string `yaml:"source_url"`
	SourceLabel   string `yaml:"source_label"`
	HeadlineClass string `yaml:"headline_class"`

	Cookie           string `yaml:"cookie"`
	CookieFile       string `yaml:"cookie_file"`
	UserAgent        string `yaml:"user_agent"`
	TimeoutSeconds   int    `yaml:"timeout_seconds"`
	Retries          int    `yaml:"retries"`
	CloudflareBypass bool   `yaml:"cloudflare_bypass"`

	AIProvider string `yaml:"ai_provider"`
	AIModel    string `yaml:"ai_model"`
}

type Options struct {
	IgnoreConfig     bool
	Debug            bool
	Listen           string
	LogFile          string
	Output           string
	SourceURL        string
	SourceLabel      string
	HeadlineClass    string
	Cookie           string
	CookieFile       string
	UserAgent        string
	TimeoutSeconds   int
	CloudflareBypass bool
	AIProvider       string
	AIModel          string
}

func DefaultConfig() *Config {
	return &Config{
		Listen:           DefaultListen,
		Debug:            false,
		LogFile:          "",
		Output:           ".",
		SourceURL:        DefaultSourceURL,
		SourceLabel:      DefaultSourceLabel,
		HeadlineClass:    DefaultHeadlineClass,
		Cookie:           "",
		CookieFile:       "",
		UserAgent:        DefaultUserAgent,
		TimeoutSeconds:   DefaultTimeout,
		Retries:          1,
		CloudflareBypass: false,
		AIProvider:       DefaultAIProvider,
		AIModel:          "",
	}
}

// Timeout is the per-request deadline of the outbound HTTP client.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := DefaultConfig()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}

	return c, nil
}

func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)\nRun `hqnews config init` to create an actual config\n", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Debug {
		c.Debug = true
	}
	if o.Listen != "" {
		c.Listen = o.Listen
	}
	if o.LogFile != "" {
		c.LogFile = o.LogFile
	}
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.SourceURL != "" {
		c.SourceURL = o.SourceURL
	}
	if o.SourceLabel != "" {
		c.SourceLabel = o.SourceLabel
	}
	if o.HeadlineClass != "" {
		c.HeadlineClass = o.HeadlineClass
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.TimeoutSeconds != 0 {
		c.TimeoutSeconds = o.TimeoutSeconds
	}
	if o.CloudflareBypass {
		c.CloudflareBypass = true
	}
	if o.AIProvider != "" {
		c.AIProvider = o.AIProvider
	}
	if o.AIModel != "" {
		c.AIModel = o.AIModel
	}
}

func normalizeDefaults(c *Config) {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
	if c.Output == "" {
		c.Output = "."
	}
	if c.SourceURL == "" {
		c.SourceURL = DefaultSourceURL
	}
	if c.SourceLabel == "" {
		c.SourceLabel = DefaultSourceLabel
	}
	if c.HeadlineClass == "" {
		c.HeadlineClass = DefaultHeadlineClass
	}
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeout
	}
	if c.Retries < 1 {
		c.Retries = 1
	}
	if c.AIProvider == "" {
		c.AIProvider = DefaultAIProvider
	}
}

func (c *Config) Print() {
	fmt.Printf(" -listen: %s\n", c.Listen)
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	if c.LogFile != "" {
		fmt.Printf(" -log_file: %s\n", c.LogFile)
	}
	if c.Output != "" {
		fmt.Printf(" -output: %s\n", c.Output)
	}
	fmt.Printf(" -source_url: %s\n", c.SourceURL)
	fmt.Printf(" -source_label: %s\n", c.SourceLabel)
	fmt.Printf(" -headline_class: %s\n", c.HeadlineClass)
	fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	fmt.Printf(" -timeout_seconds: %d\n", c.TimeoutSeconds)
	if c.Retries > 1 {
		fmt.Printf(" -retries: %d\n", c.Retries)
	}
	if c.CookieFile != "" {
		fmt.Printf(" -cookie_file: %s\n", c.CookieFile)
	}
	if c.CloudflareBypass {
		fmt.Printf(" -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
	fmt.Printf(" -ai_provider: %s\n", c.AIProvider)
	if c.AIModel != "" {
		fmt.Printf(" -ai_model: %s\n", c.AIModel)
	}
}
