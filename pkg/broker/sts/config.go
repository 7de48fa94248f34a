package sts

import (
	"net/http"
	"time"
)

type Config struct {
	role string

	url    string
	region string

	duration time.Duration

	client *http.Client
}

type Option func(*Config)

func WithClient(client *http.Client) Option {
	return func(c *Config) {
		c.client = client
	}
}

func WithRegion(region string) Option {
	return func(c *Config) {
		c.region = region
	}
}

func WithURL(url string) Option {
	return func(c *Config) {
		c.url = url
	}
}

// WithDuration sets the lifetime of issued credentials. Zero keeps the
// service default of one hour.
func WithDuration(duration time.Duration) Option {
	return func(c *Config) {
		c.duration = duration
	}
}
