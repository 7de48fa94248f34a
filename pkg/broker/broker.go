package broker

import (
	"context"
	"time"
)

// SessionName is the role session name used for every credential request.
const SessionName = "TranscribeSession"

type Provider interface {
	Credentials(ctx context.Context) (*Credentials, error)
}

type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string

	Expiration time.Time
	Region     string
}
