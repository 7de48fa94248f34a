package config

import (
	"time"

	"github.com/adrianliechti/briefing/pkg/document"
	"github.com/adrianliechti/briefing/pkg/exporter"
	"github.com/adrianliechti/briefing/pkg/exporter/chrome"
)

type exporterConfig struct {
	Chrome string `yaml:"chrome"`
	Dir    string `yaml:"dir"`

	Sandbox *bool         `yaml:"sandbox"`
	Timeout time.Duration `yaml:"timeout"`
}

type documentConfig struct {
	Attribution string `yaml:"attribution"`
}

func createExporter(cfg exporterConfig) (*exporter.Exporter, error) {
	var options []chrome.Option

	if cfg.Chrome != "" {
		options = append(options, chrome.WithPath(cfg.Chrome))
	}

	if cfg.Sandbox != nil {
		options = append(options, chrome.WithSandbox(*cfg.Sandbox))
	}

	if cfg.Timeout > 0 {
		options = append(options, chrome.WithTimeout(cfg.Timeout))
	}

	var exporterOptions []exporter.Option

	if cfg.Dir != "" {
		exporterOptions = append(exporterOptions, exporter.WithDir(cfg.Dir))
	}

	return exporter.New(chrome.New(options...), exporterOptions...), nil
}

func createComposer(cfg documentConfig) *document.Composer {
	var options []document.Option

	if cfg.Attribution != "" {
		options = append(options, document.WithAttribution(cfg.Attribution))
	}

	return document.NewComposer(options...)
}
