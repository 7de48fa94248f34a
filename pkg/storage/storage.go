package storage

import (
	"context"
	"io"
	"time"
)

// URLExpiry is how long a published artifact's URL stays valid.
const URLExpiry = 24 * time.Hour

type Provider interface {
	// Publish writes body under key and returns a time-limited URL for it.
	// The URL is only signed after the write succeeded.
	Publish(ctx context.Context, key string, body io.ReadSeeker, contentType string) (*Artifact, error)
}

type Artifact struct {
	Key string
	URL string

	Expires time.Duration
}
