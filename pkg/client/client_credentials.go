package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

type CredentialService struct {
	Options []RequestOption
}

func NewCredentialService(opts ...RequestOption) CredentialService {
	return CredentialService{
		Options: opts,
	}
}

type Credentials struct {
	AccessKeyID     string `json:"AccessKeyId"`
	SecretAccessKey string `json:"SecretAccessKey"`
	SessionToken    string `json:"SessionToken"`

	Expiration time.Time `json:"Expiration"`
	Region     string    `json:"Region"`
}

func (r *CredentialService) Get(ctx context.Context, opts ...RequestOption) (*Credentials, error) {
	c := newRequestConfig(append(r.Options, opts...)...)

	req, _ := http.NewRequestWithContext(ctx, "GET", c.URL+"/credentials", nil)

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}

	var result Credentials

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
