package exporter

import (
	"context"
	"errors"
	"os"

	"github.com/adrianliechti/briefing/pkg/fault"
)

// Renderer turns a complete HTML document into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, html string) ([]byte, error)
}

// Artifact is a rendered PDF on local disk. It is owned by the caller,
// who must call Remove once done with it.
type Artifact struct {
	Path string
	Size int64
}

func (a *Artifact) Open() (*os.File, error) {
	return os.Open(a.Path)
}

func (a *Artifact) Remove() error {
	if a == nil || a.Path == "" {
		return nil
	}

	if err := os.Remove(a.Path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	return nil
}

type Exporter struct {
	renderer Renderer

	dir string
}

type Option func(*Exporter)

// WithDir sets the directory for temporary files. Defaults to os.TempDir.
func WithDir(dir string) Option {
	return func(e *Exporter) {
		e.dir = dir
	}
}

func New(renderer Renderer, options ...Option) *Exporter {
	e := &Exporter{
		renderer: renderer,
	}

	for _, option := range options {
		option(e)
	}

	return e
}

// Export renders the document and writes it to a fresh temporary file. The
// file is fully written and closed when Export returns; on error no file is
// left behind.
func (e *Exporter) Export(ctx context.Context, html string) (*Artifact, error) {
	data, err := e.renderer.Render(ctx, html)

	if err != nil {
		return nil, fault.Render("render pdf", err)
	}

	if len(data) == 0 {
		return nil, fault.Render("render pdf", errors.New("renderer returned no data"))
	}

	path, err := writeTemp(e.dir, data)

	if err != nil {
		return nil, fault.Render("write pdf", err)
	}

	return &Artifact{
		Path: path,
		Size: int64(len(data)),
	}, nil
}

func writeTemp(dir string, data []byte) (path string, err error) {
	f, err := os.CreateTemp(dir, "document-*.pdf")

	if err != nil {
		return "", err
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}

		if err != nil {
			os.Remove(f.Name())
		}
	}()

	if _, err := f.Write(data); err != nil {
		return "", err
	}

	if err := f.Sync(); err != nil {
		return "", err
	}

	return f.Name(), nil
}
