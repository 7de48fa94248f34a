package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/adrianliechti/briefing/pkg/limiter"
	"github.com/adrianliechti/briefing/pkg/provider"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

type echoCompleter struct {
	calls int
}

func (c *echoCompleter) Complete(ctx context.Context, messages []provider.Message, options *provider.CompleteOptions) (*provider.Completion, error) {
	c.calls++

	return &provider.Completion{
		Message: &provider.Message{
			Role:    provider.MessageRoleAssistant,
			Content: []provider.Content{provider.TextContent("ok")},
		},
	}, nil
}

func TestCompleterPassesThrough(t *testing.T) {
	inner := &echoCompleter{}
	c := limiter.NewCompleter(nil, inner)

	completion, err := c.Complete(context.Background(), []provider.Message{provider.UserMessage("hi")}, nil)

	require.NoError(t, err)
	require.Equal(t, "ok", completion.Message.Text())
	require.Equal(t, 1, inner.calls)
}

func TestCompleterHonoursContext(t *testing.T) {
	inner := &echoCompleter{}

	l := rate.NewLimiter(rate.Every(time.Hour), 1)
	c := limiter.NewCompleter(l, inner)

	_, err := c.Complete(context.Background(), nil, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err = c.Complete(ctx, nil, nil)
	require.Error(t, err)
	require.Equal(t, 1, inner.calls)
}
