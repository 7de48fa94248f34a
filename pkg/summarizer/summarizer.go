package summarizer

import (
	"context"

	"github.com/adrianliechti/briefing/pkg/provider"
)

type Provider interface {
	Summarize(ctx context.Context, question, text string, options *SummarizerOptions) (*Summary, error)
}

type SummarizerOptions struct {
	MaxTokens int
}

type Summary struct {
	Text string

	Usage *provider.Usage
}
