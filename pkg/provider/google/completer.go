package google

import (
	"context"
	"errors"
	"fmt"

	"github.com/adrianliechti/briefing/pkg/provider"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config

	client *genai.Client
}

func NewCompleter(model string, options ...Option) (*Completer, error) {
	cfg := &Config{
		model: model,
	}

	for _, option := range options {
		option(cfg)
	}

	client, err := cfg.newClient(context.Background())

	if err != nil {
		return nil, err
	}

	return &Completer{
		Config: cfg,

		client: client,
	}, nil
}

func (c *Completer) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	if options == nil {
		options = new(provider.CompleteOptions)
	}

	contents, err := convertContents(messages)

	if err != nil {
		return nil, err
	}

	config := &genai.GenerateContentConfig{
		StopSequences: options.Stop,
	}

	if system := provider.SystemText(messages); system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	if options.MaxTokens != nil {
		config.MaxOutputTokens = int32(*options.MaxTokens)
	}

	if options.Temperature != nil {
		config.Temperature = genai.Ptr(*options.Temperature)
	}

	if options.TopP != nil {
		config.TopP = genai.Ptr(*options.TopP)
	}

	if options.TopK != nil {
		config.TopK = genai.Ptr(float32(*options.TopK))
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)

	if err != nil {
		return nil, fmt.Errorf("google: %w", err)
	}

	result := &provider.Completion{
		ID:    uuid.NewString(),
		Model: c.model,

		Reason: provider.CompletionReasonStop,

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: []provider.Content{
				provider.TextContent(resp.Text()),
			},
		},
	}

	if len(resp.Candidates) > 0 {
		result.Reason = toCompletionResult(resp.Candidates[0].FinishReason)
	}

	if resp.UsageMetadata != nil {
		result.Usage = &provider.Usage{
			InputTokens:  int(resp.UsageMetadata.PromptTokenCount),
			OutputTokens: int(resp.UsageMetadata.CandidatesTokenCount),
		}
	}

	return result, nil
}

func convertContents(messages []provider.Message) ([]*genai.Content, error) {
	var result []*genai.Content

	for _, m := range messages {
		switch m.Role {
		case provider.MessageRoleSystem:
			continue

		case provider.MessageRoleUser:
			result = append(result, genai.NewContentFromText(m.Text(), genai.RoleUser))

		case provider.MessageRoleAssistant:
			result = append(result, genai.NewContentFromText(m.Text(), genai.RoleModel))

		default:
			return nil, errors.New("unsupported message role")
		}
	}

	return result, nil
}

func toCompletionResult(val genai.FinishReason) provider.CompletionReason {
	switch val {
	case genai.FinishReasonStop:
		return provider.CompletionReasonStop

	case genai.FinishReasonMaxTokens:
		return provider.CompletionReasonLength

	case genai.FinishReasonSafety, genai.FinishReasonRecitation:
		return provider.CompletionReasonFilter

	default:
		return ""
	}
}
