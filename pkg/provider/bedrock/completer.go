package bedrock

import (
	"context"
	"errors"
	"fmt"

	"github.com/adrianliechti/briefing/pkg/provider"

	"github.com/google/uuid"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/document"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime/types"
	"github.com/aws/smithy-go"
)

var _ provider.Completer = (*Completer)(nil)

type Completer struct {
	*Config

	client *bedrockruntime.Client
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

	req, err := c.convertConverseInput(messages, options)

	if err != nil {
		return nil, err
	}

	resp, err := c.client.Converse(ctx, req)

	if err != nil {
		return nil, convertError(err)
	}

	return &provider.Completion{
		ID:    uuid.New().String(),
		Model: c.model,

		Reason: toCompletionResult(resp.StopReason),

		Message: &provider.Message{
			Role: provider.MessageRoleAssistant,

			Content: toContent(resp.Output),
		},

		Usage: toUsage(resp.Usage),
	}, nil
}

func (c *Completer) convertConverseInput(input []provider.Message, options *provider.CompleteOptions) (*bedrockruntime.ConverseInput, error) {
	messages, err := convertMessages(input)

	if err != nil {
		return nil, err
	}

	req := &bedrockruntime.ConverseInput{
		ModelId: aws.String(c.model),

		Messages: messages,
		System:   convertSystem(input),

		InferenceConfig: convertInferenceConfig(options),
	}

	if options.TopK != nil && isClaudeModel(c.model) {
		req.AdditionalModelRequestFields = document.NewLazyDocument(map[string]any{
			"top_k": *options.TopK,
		})
	}

	return req, nil
}

func convertInferenceConfig(options *provider.CompleteOptions) *types.InferenceConfiguration {
	config := &types.InferenceConfiguration{
		StopSequences: options.Stop,
	}

	if options.MaxTokens != nil {
		config.MaxTokens = aws.Int32(int32(*options.MaxTokens))
	}

	if options.Temperature != nil {
		config.Temperature = aws.Float32(*options.Temperature)
	}

	if options.TopP != nil {
		config.TopP = aws.Float32(*options.TopP)
	}

	return config
}

func convertSystem(messages []provider.Message) []types.SystemContentBlock {
	var result []types.SystemContentBlock

	for _, m := range messages {
		if m.Role != provider.MessageRoleSystem {
			continue
		}

		for _, c := range m.Content {
			if c.Text == "" {
				continue
			}

			system := &types.SystemContentBlockMemberText{
				Value: c.Text,
			}

			result = append(result, system)
		}
	}

	if len(result) == 0 {
		return nil
	}

	return result
}

func convertMessages(messages []provider.Message) ([]types.Message, error) {
	var result []types.Message

	for _, m := range messages {
		var role types.ConversationRole

		switch m.Role {
		case provider.MessageRoleSystem:
			continue

		case provider.MessageRoleUser:
			role = types.ConversationRoleUser

		case provider.MessageRoleAssistant:
			role = types.ConversationRoleAssistant

		default:
			return nil, errors.New("unsupported message role")
		}

		message := types.Message{
			Role: role,
		}

		for _, c := range m.Content {
			if c.Text == "" {
				continue
			}

			message.Content = append(message.Content, &types.ContentBlockMemberText{
				Value: c.Text,
			})
		}

		result = append(result, message)
	}

	return result, nil
}

func convertError(err error) error {
	var apiErr smithy.APIError

	if errors.As(err, &apiErr) {
		return fmt.Errorf("bedrock %s: %s: %w", apiErr.ErrorCode(), apiErr.ErrorMessage(), err)
	}

	return fmt.Errorf("bedrock: %w", err)
}

func toCompletionResult(val types.StopReason) provider.CompletionReason {
	switch val {
	case types.StopReasonEndTurn, types.StopReasonStopSequence:
		return provider.CompletionReasonStop

	case types.StopReasonMaxTokens:
		return provider.CompletionReasonLength

	case types.StopReasonGuardrailIntervened, types.StopReasonContentFiltered:
		return provider.CompletionReasonFilter

	default:
		return ""
	}
}

func toContent(val types.ConverseOutput) []provider.Content {
	message, ok := val.(*types.ConverseOutputMemberMessage)

	if !ok {
		return nil
	}

	var parts []provider.Content

	for _, b := range message.Value.Content {
		if block, ok := b.(*types.ContentBlockMemberText); ok {
			parts = append(parts, provider.TextContent(block.Value))
		}
	}

	return parts
}

func toUsage(val *types.TokenUsage) *provider.Usage {
	if val == nil {
		return nil
	}

	return &provider.Usage{
		InputTokens:  int(aws.ToInt32(val.InputTokens)),
		OutputTokens: int(aws.ToInt32(val.OutputTokens)),
	}
}
