package anthropic

import (
	"context"
	"errors"
	"strings"

	"github.com/adrianliechti/briefing/pkg/provider"

	"github.com/anthropics/anthropic-sdk-go"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config
	messages anthropic.MessageService
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
		Config:   cfg,
		messages: anthropic.NewMessageService(cfg.Options()...),
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	req, err := c.convertMessageRequest(messages, options)

	if err != nil {
		return nil, err
	}

	message, err := c.messages.New(ctx, *req)

	if err != nil {
		return nil, err
	}

	var parts []provider.Content

	for _, block := range message.Content {
		if block.Type == "text" && block.Text != "" {
			parts = append(parts, provider.TextContent(block.Text))
		}
	}

	return &provider.Completion{
		ID:    message.ID,
		Model: c.model,

		Reason: toCompletionResult(message.StopReason),

		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: parts,
		},

		Usage: &provider.Usage{
			InputTokens:  int(message.Usage.InputTokens),
			OutputTokens: int(message.Usage.OutputTokens),
		},
	}, nil
}

func (c *Completer) convertMessageRequest(input []provider.Message, options *provider.CompleteOptions) (*anthropic.MessageNewParams, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	req := &anthropic.MessageNewParams{
		Model: anthropic.Model(c.model),

		MaxTokens: 4096,
	}

	if options.Stop != nil {
		req.StopSequences = options.Stop
	}

	if options.MaxTokens != nil {
		req.MaxTokens = int64(*options.MaxTokens)
	}

	if options.Temperature != nil {
		req.Temperature = anthropic.Float(float64(*options.Temperature))
	}

	if options.TopP != nil {
		req.TopP = anthropic.Float(float64(*options.TopP))
	}

	if options.TopK != nil {
		req.TopK = anthropic.Int(int64(*options.TopK))
	}

	if system := provider.SystemText(input); system != "" {
		req.System = []anthropic.TextBlockParam{
			{Text: system},
		}
	}

	for _, m := range input {
		text := strings.TrimRight(m.Text(), " \t\n\r")

		switch m.Role {
		case provider.MessageRoleSystem:
			continue

		case provider.MessageRoleUser:
			req.Messages = append(req.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(text)))

		case provider.MessageRoleAssistant:
			req.Messages = append(req.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(text)))

		default:
			return nil, errors.New("unsupported message role")
		}
	}

	return req, nil
}

func toCompletionResult(val anthropic.StopReason) provider.CompletionReason {
	switch val {
	case anthropic.StopReasonEndTurn, anthropic.StopReasonStopSequence:
		return provider.CompletionReasonStop

	case anthropic.StopReasonMaxTokens:
		return provider.CompletionReasonLength

	case anthropic.StopReasonRefusal:
		return provider.CompletionReasonFilter

	default:
		return ""
	}
}
