package config

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/adrianliechti/briefing/pkg/limiter"
	"github.com/adrianliechti/briefing/pkg/provider"
	"github.com/adrianliechti/briefing/pkg/provider/anthropic"
	"github.com/adrianliechti/briefing/pkg/provider/bedrock"
	"github.com/adrianliechti/briefing/pkg/provider/google"
	"github.com/adrianliechti/briefing/pkg/provider/openai"
	"github.com/adrianliechti/briefing/pkg/summarizer"
	"github.com/adrianliechti/briefing/pkg/summarizer/adapter"
)

const (
	defaultModel = "anthropic.claude-3-haiku-20240307-v1:0"

	defaultSummarizerTimeout = 1000 * time.Second
)

type summarizerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Model  string `yaml:"model"`
	Region string `yaml:"region"`

	Timeout   time.Duration `yaml:"timeout"`
	MaxTokens int           `yaml:"max_tokens"`

	Limit *int `yaml:"limit"`
}

func createSummarizer(cfg summarizerConfig) (summarizer.Provider, error) {
	timeout := cfg.Timeout

	if timeout <= 0 {
		timeout = defaultSummarizerTimeout
	}

	client := &http.Client{
		Timeout: timeout,
	}

	completer, err := createCompleter(cfg, client)

	if err != nil {
		return nil, err
	}

	if l := createLimiter(cfg.Limit); l != nil {
		completer = limiter.NewCompleter(l, completer)
	}

	return adapter.FromCompleter(completer, adapter.WithTimeout(timeout)), nil
}

func createCompleter(cfg summarizerConfig, client *http.Client) (provider.Completer, error) {
	model := cfg.Model

	switch strings.ToLower(cfg.Type) {
	case "", "bedrock":
		if model == "" {
			model = defaultModel
		}

		options := []bedrock.Option{
			bedrock.WithClient(client),
		}

		if cfg.Region != "" {
			options = append(options, bedrock.WithRegion(cfg.Region))
		}

		if cfg.URL != "" {
			options = append(options, bedrock.WithURL(cfg.URL))
		}

		return bedrock.NewCompleter(model, options...)

	case "anthropic":
		options := []anthropic.Option{
			anthropic.WithClient(client),
		}

		if cfg.Token != "" {
			options = append(options, anthropic.WithToken(cfg.Token))
		}

		return anthropic.NewCompleter(cfg.URL, model, options...)

	case "openai":
		options := []openai.Option{
			openai.WithClient(client),
		}

		if cfg.Token != "" {
			options = append(options, openai.WithToken(cfg.Token))
		}

		return openai.NewCompleter(cfg.URL, model, options...)

	case "google", "gemini":
		options := []google.Option{
			google.WithClient(client),
		}

		if cfg.Token != "" {
			options = append(options, google.WithToken(cfg.Token))
		}

		if cfg.URL != "" {
			options = append(options, google.WithURL(cfg.URL))
		}

		return google.NewCompleter(model, options...)

	default:
		return nil, errors.New("invalid summarizer type: " + cfg.Type)
	}
}
