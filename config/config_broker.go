package config

import (
	"errors"
	"time"

	"github.com/adrianliechti/briefing/pkg/broker"
	"github.com/adrianliechti/briefing/pkg/broker/sts"
)

type brokerConfig struct {
	Role string `yaml:"role"`

	URL    string `yaml:"url"`
	Region string `yaml:"region"`

	Duration time.Duration `yaml:"duration"`
}

func createBroker(cfg brokerConfig) (broker.Provider, error) {
	if cfg.Role == "" {
		return nil, errors.New("broker role is required")
	}

	var options []sts.Option

	if cfg.URL != "" {
		options = append(options, sts.WithURL(cfg.URL))
	}

	if cfg.Region != "" {
		options = append(options, sts.WithRegion(cfg.Region))
	}

	if cfg.Duration > 0 {
		options = append(options, sts.WithDuration(cfg.Duration))
	}

	return sts.New(cfg.Role, options...)
}
