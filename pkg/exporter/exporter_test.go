package exporter_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/adrianliechti/briefing/pkg/exporter"
	"github.com/adrianliechti/briefing/pkg/fault"

	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	data []byte
	err  error
}

func (r *fakeRenderer) Render(ctx context.Context, html string) ([]byte, error) {
	return r.data, r.err
}

func TestExport(t *testing.T) {
	dir := t.TempDir()
	data := []byte("%PDF-1.7 fake")

	e := exporter.New(&fakeRenderer{data: data}, exporter.WithDir(dir))

	artifact, err := e.Export(context.Background(), "<html></html>")
	require.NoError(t, err)

	require.Equal(t, int64(len(data)), artifact.Size)

	content, err := os.ReadFile(artifact.Path)
	require.NoError(t, err)
	require.Equal(t, data, content)

	f, err := artifact.Open()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, artifact.Remove())
	require.NoFileExists(t, artifact.Path)

	require.NoError(t, artifact.Remove())
}

func TestExportRenderError(t *testing.T) {
	dir := t.TempDir()

	e := exporter.New(&fakeRenderer{err: errors.New("chrome crashed")}, exporter.WithDir(dir))

	artifact, err := e.Export(context.Background(), "<html></html>")

	require.Nil(t, artifact)
	require.Error(t, err)
	require.Equal(t, fault.KindRender, fault.KindOf(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestExportEmptyOutput(t *testing.T) {
	dir := t.TempDir()

	e := exporter.New(&fakeRenderer{}, exporter.WithDir(dir))

	_, err := e.Export(context.Background(), "<html></html>")

	require.Error(t, err)
	require.Equal(t, fault.KindRender, fault.KindOf(err))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestExportMissingDir(t *testing.T) {
	e := exporter.New(&fakeRenderer{data: []byte("%PDF")}, exporter.WithDir(t.TempDir()+"/missing"))

	_, err := e.Export(context.Background(), "<html></html>")

	require.Error(t, err)
	require.Equal(t, fault.KindRender, fault.KindOf(err))
}

func TestRemoveNil(t *testing.T) {
	var artifact *exporter.Artifact
	require.NoError(t, artifact.Remove())
}
