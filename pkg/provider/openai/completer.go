package openai

import (
	"context"
	"fmt"
	"strings"

	"github.com/adrianliechti/briefing/pkg/provider"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/responses"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	responses responses.ResponseService
}

func NewCompleter(url, model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		url:   url,
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	return &Completer{
		Config:    cfg,
		responses: responses.NewResponseService(cfg.Options()...),
	}, nil
}

// Complete sends the conversation through the Responses API. Stop sequences
// and top-k are not supported there and are ignored.
func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req := responses.ResponseNewParams{
		Model: c.model,

		Input: responses.ResponseNewParamsInputUnion{
			OfString: openai.String(convertInput(messages)),
		},
	}

	if system := provider.SystemText(messages); system != "" {
		req.Instructions = openai.String(system)
	}

	if options.MaxTokens != nil {
		req.MaxOutputTokens = openai.Int(int64(*options.MaxTokens))
	}

	if options.Temperature != nil {
		req.Temperature = openai.Float(float64(*options.Temperature))
	}

	if options.TopP != nil {
		req.TopP = openai.Float(float64(*options.TopP))
	}

	resp, err := c.responses.New(ctx, req)

	if err != nil {
		return nil, fmt.Errorf("openai: %w", err)
	}

	result := &provider.Completion{
		ID:    resp.ID,
		Model: c.model,

		Reason: provider.CompletionReasonStop,

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: []provider.Content{
				provider.TextContent(resp.OutputText()),
			},
		},

		Usage: &provider.Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
		},
	}

	if resp.Status == "incomplete" {
		result.Reason = provider.CompletionReasonLength
	}

	return result, nil
}

func convertInput(messages []provider.Message) string {
	var parts []string

	for _, m := range messages {
		if m.Role == provider.MessageRoleSystem {
			continue
		}

		if text := m.Text(); text != "" {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, "\n\n")
}
