package chrome_test

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/adrianliechti/briefing/pkg/exporter/chrome"

	"github.com/stretchr/testify/require"
)

func findChrome(t *testing.T) string {
	for _, name := range []string{"headless-shell", "chromium", "chromium-browser", "google-chrome", "google-chrome-stable"} {
		if path, err := exec.LookPath(name); err == nil {
			return path
		}
	}

	t.Skip("no chrome executable found")
	return ""
}

func TestRender(t *testing.T) {
	path := findChrome(t)

	r := chrome.New(
		chrome.WithPath(path),
		chrome.WithSandbox(false),
		chrome.WithTimeout(time.Minute),
	)

	data, err := r.Render(context.Background(), `<!DOCTYPE html><html><body><h1>Report</h1><p>Item A failed.</p></body></html>`)

	require.NoError(t, err)
	require.True(t, len(data) > 4)
	require.Equal(t, "%PDF", string(data[:4]))
}
