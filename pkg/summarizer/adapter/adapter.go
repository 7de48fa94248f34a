package adapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/adrianliechti/briefing/pkg/fault"
	"github.com/adrianliechti/briefing/pkg/provider"
	"github.com/adrianliechti/briefing/pkg/summarizer"
)

var _ summarizer.Provider = (*Adapter)(nil)

const (
	DefaultMaxTokens = 2048
	DefaultTimeout   = 1000 * time.Second
)

type Adapter struct {
	completer provider.Completer

	timeout time.Duration
	logger  *slog.Logger
}

type Option func(*Adapter)

// WithTimeout bounds a single model call. Generation is slow, so this is
// usually far above ordinary request timeouts.
func WithTimeout(timeout time.Duration) Option {
	return func(a *Adapter) {
		a.timeout = timeout
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

func FromCompleter(completer provider.Completer, options ...Option) *Adapter {
	a := &Adapter{
		completer: completer,

		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}

	for _, option := range options {
		option(a)
	}

	return a
}

func (a *Adapter) Summarize(ctx context.Context, question, text string, options *summarizer.SummarizerOptions) (*summarizer.Summary, error) {
	if options == nil {
		options = new(summarizer.SummarizerOptions)
	}

	maxTokens := options.MaxTokens

	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	messages := []provider.Message{
		provider.SystemMessage(systemPrompt),
		provider.UserMessage(userPrompt(question, []string{text})),
	}

	completion, err := a.completer.Complete(ctx, messages, &provider.CompleteOptions{
		Stop: []string{stopSequence},

		MaxTokens:   provider.Ptr(maxTokens),
		Temperature: provider.Ptr[float32](0),

		TopP: provider.Ptr[float32](1),
		TopK: provider.Ptr(50),
	})

	if err != nil {
		return nil, fault.Dependency("invoke model", err)
	}

	if completion.Message == nil {
		return nil, fault.Parse("parse summary", errors.New("model returned no message"))
	}

	output := completion.Message.Text()

	summary, err := parseSummary(output)

	if err != nil {
		a.logger.DebugContext(ctx, "failed to parse summary",
			"error", err,
			"output", output,
			"reason", completion.Reason)

		return nil, fault.Parse("parse summary", err)
	}

	return &summarizer.Summary{
		Text:  summary,
		Usage: completion.Usage,
	}, nil
}
