package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type Client struct {
	Summaries   SummaryService
	Credentials CredentialService
}

func New(url string, opts ...RequestOption) *Client {
	opts = append(opts, WithURL(url))

	return &Client{
		Summaries:   NewSummaryService(opts...),
		Credentials: NewCredentialService(opts...),
	}
}

type RequestConfig struct {
	URL   string
	Token string

	Client *http.Client
}

type RequestOption func(*RequestConfig)

func WithURL(url string) RequestOption {
	return func(c *RequestConfig) {
		c.URL = strings.TrimRight(url, "/")
	}
}

func WithToken(token string) RequestOption {
	return func(c *RequestConfig) {
		c.Token = token
	}
}

func WithClient(client *http.Client) RequestOption {
	return func(c *RequestConfig) {
		c.Client = client
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Error is a failure reported by the server.
type Error struct {
	StatusCode int

	Message string `json:"message"`
	Detail  string `json:"error"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d", e.StatusCode)
	}

	if e.Detail == "" {
		return e.Message
	}

	return e.Message + ": " + e.Detail
}

func decodeError(resp *http.Response) error {
	e := &Error{
		StatusCode: resp.StatusCode,
	}

	json.NewDecoder(resp.Body).Decode(e)

	return e
}
