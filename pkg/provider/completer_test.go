package provider_test

import (
	"testing"

	"github.com/adrianliechti/briefing/pkg/provider"

	"github.com/stretchr/testify/require"
)

func TestMessageText(t *testing.T) {
	m := provider.Message{
		Role: provider.MessageRoleAssistant,

		Content: []provider.Content{
			provider.TextContent("first"),
			provider.TextContent(""),
			provider.TextContent("second"),
		},
	}

	require.Equal(t, "first\n\nsecond", m.Text())
}

func TestSystemText(t *testing.T) {
	messages := []provider.Message{
		provider.SystemMessage("be brief"),
		provider.UserMessage("hello"),
		provider.SystemMessage("use markdown"),
	}

	require.Equal(t, "be brief\n\nuse markdown", provider.SystemText(messages))
}
