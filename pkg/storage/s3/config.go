package s3

import (
	"net/http"
	"time"
)

type Config struct {
	bucket string

	url    string
	region string

	pathStyle bool
	timeout   time.Duration

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

// WithURL points the client at an S3 compatible endpoint such as MinIO or
// LocalStack. Path-style addressing is switched on with it.
func WithURL(url string) Option {
	return func(c *Config) {
		c.url = url
		c.pathStyle = true
	}
}

// WithTimeout bounds each upload.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.timeout = timeout
	}
}
