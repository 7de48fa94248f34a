package sts

import (
	"context"
	"errors"
	"fmt"

	"github.com/adrianliechti/briefing/pkg/broker"
	"github.com/adrianliechti/briefing/pkg/fault"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/aws/smithy-go"
)

var _ broker.Provider = (*Client)(nil)

type roleAPI interface {
	AssumeRole(ctx context.Context, params *sts.AssumeRoleInput, optFns ...func(*sts.Options)) (*sts.AssumeRoleOutput, error)
}

type Client struct {
	*Config

	roles roleAPI
}

func New(role string, options ...Option) (*Client, error) {
	if role == "" {
		return nil, errors.New("role is required")
	}

	cfg := &Config{
		role: role,
	}

	for _, option := range options {
		option(cfg)
	}

	loadOptions := []func(*config.LoadOptions) error{
		config.WithRetryer(func() aws.Retryer {
			return aws.NopRetryer{}
		}),
	}

	if cfg.region != "" {
		loadOptions = append(loadOptions, config.WithRegion(cfg.region))
	}

	if cfg.client != nil {
		loadOptions = append(loadOptions, config.WithHTTPClient(cfg.client))
	}

	awsConfig, err := config.LoadDefaultConfig(context.Background(), loadOptions...)

	if err != nil {
		return nil, err
	}

	if cfg.region == "" {
		cfg.region = awsConfig.Region
	}

	client := sts.NewFromConfig(awsConfig, func(o *sts.Options) {
		if cfg.url != "" {
			o.BaseEndpoint = aws.String(cfg.url)
		}
	})

	return &Client{
		Config: cfg,

		roles: client,
	}, nil
}

func (c *Client) Credentials(ctx context.Context) (*broker.Credentials, error) {
	input := &sts.AssumeRoleInput{
		RoleArn:         aws.String(c.role),
		RoleSessionName: aws.String(broker.SessionName),
	}

	if c.duration > 0 {
		input.DurationSeconds = aws.Int32(int32(c.duration.Seconds()))
	}

	output, err := c.roles.AssumeRole(ctx, input)

	if err != nil {
		return nil, fault.Dependency("assume role", convertError(err))
	}

	if output.Credentials == nil {
		return nil, fault.Dependency("assume role", errors.New("no credentials returned"))
	}

	creds := output.Credentials

	return &broker.Credentials{
		AccessKeyID:     aws.ToString(creds.AccessKeyId),
		SecretAccessKey: aws.ToString(creds.SecretAccessKey),
		SessionToken:    aws.ToString(creds.SessionToken),

		Expiration: aws.ToTime(creds.Expiration),
		Region:     c.region,
	}, nil
}

func convertError(err error) error {
	var apiErr smithy.APIError

	if errors.As(err, &apiErr) {
		return fmt.Errorf("sts %s: %s: %w", apiErr.ErrorCode(), apiErr.ErrorMessage(), err)
	}

	return fmt.Errorf("sts: %w", err)
}
