package bedrock

import (
	"context"
	"net/http"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

type Config struct {
	url    string
	model  string
	region string

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

// WithURL overrides the Bedrock Runtime endpoint.
func WithURL(url string) Option {
	return func(c *Config) {
		c.url = url
	}
}

func (c *Config) newClient(ctx context.Context) (*bedrockruntime.Client, error) {
	options := []func(*config.LoadOptions) error{
		config.WithRetryer(func() aws.Retryer {
			return aws.NopRetryer{}
		}),
	}

	if c.region != "" {
		options = append(options, config.WithRegion(c.region))
	}

	if c.client != nil {
		options = append(options, config.WithHTTPClient(c.client))
	}

	cfg, err := config.LoadDefaultConfig(ctx, options...)

	if err != nil {
		return nil, err
	}

	return bedrockruntime.NewFromConfig(cfg, func(o *bedrockruntime.Options) {
		if c.url != "" {
			o.BaseEndpoint = aws.String(c.url)
		}
	}), nil
}

func isClaudeModel(model string) bool {
	model = strings.ToLower(model)

	return strings.Contains(model, "anthropic") || strings.Contains(model, "claude")
}
