package config

import (
	"errors"
	"time"

	"github.com/adrianliechti/briefing/pkg/storage"
	"github.com/adrianliechti/briefing/pkg/storage/s3"
)

type storageConfig struct {
	Bucket string `yaml:"bucket"`

	URL    string `yaml:"url"`
	Region string `yaml:"region"`

	Timeout time.Duration `yaml:"timeout"`
}

func createStorage(cfg storageConfig) (storage.Provider, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket is required")
	}

	var options []s3.Option

	if cfg.URL != "" {
		options = append(options, s3.WithURL(cfg.URL))
	}

	if cfg.Region != "" {
		options = append(options, s3.WithRegion(cfg.Region))
	}

	if cfg.Timeout > 0 {
		options = append(options, s3.WithTimeout(cfg.Timeout))
	}

	return s3.New(cfg.Bucket, options...)
}
