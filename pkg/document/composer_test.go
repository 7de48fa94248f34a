package document_test

import (
	"testing"
	"time"

	"github.com/adrianliechti/briefing/pkg/document"

	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time {
		return t
	}
}

func TestCompose(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)

	c := document.NewComposer(document.WithClock(fixedClock(at)))

	html, err := c.Compose(document.Spec{
		Title: "What happened?",
		Body:  "<p>Item <strong>A</strong> failed.</p>",
	})

	require.NoError(t, err)

	require.Contains(t, html, "<!DOCTYPE html>")
	require.Contains(t, html, `<h1 style="text-align: center;"><u>What happened?</u></h1>`)
	require.Contains(t, html, "<p>Item <strong>A</strong> failed.</p>")

	require.Contains(t, html, "size: Letter portrait;")
	require.Contains(t, html, "margin-top: 3cm;")
	require.Contains(t, html, "content: '03-05-2024 14:07:09';")
	require.Contains(t, html, "content: counter(page);")
	require.Contains(t, html, "content: 'Document generated using AWS Bedrock Service';")
}

func TestComposeEscapesTitle(t *testing.T) {
	c := document.NewComposer()

	html, err := c.Compose(document.Spec{
		Title: "<script>alert(1)</script>",
	})

	require.NoError(t, err)
	require.NotContains(t, html, "<script>")
	require.Contains(t, html, "&lt;script&gt;")
}

func TestComposeAttribution(t *testing.T) {
	c := document.NewComposer(document.WithAttribution("Team's summary"))

	html, err := c.Compose(document.Spec{Title: "t"})

	require.NoError(t, err)
	require.Contains(t, html, `content: 'Team\'s summary';`)
}

func TestComposeSameInstantIsIdentical(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)
	spec := document.Spec{Title: "report", Body: "<p>body</p>"}

	c := document.NewComposer(document.WithClock(fixedClock(at)))

	first, err := c.Compose(spec)
	require.NoError(t, err)

	second, err := c.Compose(spec)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestComposeDifferentInstantDiffers(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)
	spec := document.Spec{Title: "report", Body: "<p>body</p>"}

	first, err := document.NewComposer(document.WithClock(fixedClock(at))).Compose(spec)
	require.NoError(t, err)

	second, err := document.NewComposer(document.WithClock(fixedClock(at.Add(time.Second)))).Compose(spec)
	require.NoError(t, err)

	require.NotEqual(t, first, second)
}
