package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/adrianliechti/briefing/pkg/fault"
	"github.com/adrianliechti/briefing/pkg/storage"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

var _ storage.Provider = (*Client)(nil)

type objectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type presignAPI interface {
	PresignGetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

type Client struct {
	*Config

	objects objectAPI
	presign presignAPI
}

func New(bucket string, options ...Option) (*Client, error) {
	if bucket == "" {
		return nil, errors.New("bucket is required")
	}

	cfg := &Config{
		bucket: bucket,

		timeout: 60 * time.Second,
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

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.url != "" {
			o.BaseEndpoint = aws.String(cfg.url)
		}

		o.UsePathStyle = cfg.pathStyle
	})

	return &Client{
		Config: cfg,

		objects: client,
		presign: s3.NewPresignClient(client),
	}, nil
}

func (c *Client) Publish(ctx context.Context, key string, body io.ReadSeeker, contentType string) (*storage.Artifact, error) {
	if err := c.put(ctx, key, body, contentType); err != nil {
		return nil, fault.Dependency("upload "+key, err)
	}

	req, err := c.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(storage.URLExpiry))

	if err != nil {
		return nil, fault.Dependency("presign "+key, err)
	}

	return &storage.Artifact{
		Key: key,
		URL: req.URL,

		Expires: storage.URLExpiry,
	}, nil
}

func (c *Client) put(ctx context.Context, key string, body io.ReadSeeker, contentType string) error {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	_, err := c.objects.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),

		Body:        body,
		ContentType: aws.String(contentType),
	})

	return convertError(err)
}

func convertError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr smithy.APIError

	if errors.As(err, &apiErr) {
		return fmt.Errorf("s3 %s: %s: %w", apiErr.ErrorCode(), apiErr.ErrorMessage(), err)
	}

	return fmt.Errorf("s3: %w", err)
}
