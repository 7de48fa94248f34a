package chrome

import (
	"context"
	"time"

	"github.com/adrianliechti/briefing/pkg/exporter"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

var _ exporter.Renderer = (*Renderer)(nil)

// Renderer prints HTML to PDF with a headless Chrome. Every call runs in its
// own browser process so runs never share state.
type Renderer struct {
	path    string
	timeout time.Duration

	sandbox bool
}

type Option func(*Renderer)

// WithPath sets the Chrome or Chromium executable. Empty means lookup on PATH.
func WithPath(path string) Option {
	return func(r *Renderer) {
		r.path = path
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(r *Renderer) {
		r.timeout = timeout
	}
}

// WithSandbox toggles the Chrome sandbox. Containers usually need it off.
func WithSandbox(sandbox bool) Option {
	return func(r *Renderer) {
		r.sandbox = sandbox
	}
}

func New(options ...Option) *Renderer {
	r := &Renderer{
		timeout: 60 * time.Second,
		sandbox: true,
	}

	for _, option := range options {
		option(r)
	}

	return r
}

func (r *Renderer) Render(ctx context.Context, html string) ([]byte, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.DisableGPU,
	)

	if r.path != "" {
		opts = append(opts, chromedp.ExecPath(r.path))
	}

	if !r.sandbox {
		opts = append(opts, chromedp.NoSandbox)
	}

	actx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	bctx, cancelBrowser := chromedp.NewContext(actx)
	defer cancelBrowser()

	var data []byte

	err := chromedp.Run(bctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)

			if err != nil {
				return err
			}

			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)

			if err != nil {
				return err
			}

			data = buf
			return nil
		}),
	)

	if err != nil {
		return nil, err
	}

	return data, nil
}
