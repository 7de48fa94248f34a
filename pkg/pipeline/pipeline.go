package pipeline

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/adrianliechti/briefing/pkg/document"
	"github.com/adrianliechti/briefing/pkg/exporter"
	"github.com/adrianliechti/briefing/pkg/fault"
	"github.com/adrianliechti/briefing/pkg/storage"
	"github.com/adrianliechti/briefing/pkg/summarizer"
	"github.com/adrianliechti/briefing/pkg/text"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	ContentTypePDF  = "application/pdf"
	ContentTypeWebM = "audio/webm"
)

type Stage string

const (
	StageReceived   Stage = "received"
	StageValidated  Stage = "validated"
	StageSummarized Stage = "summarized"
	StageRendered   Stage = "rendered"
	StagePublished  Stage = "published"
	StageCompleted  Stage = "completed"

	StageRejected Stage = "rejected"
	StageFailed   Stage = "failed"
)

type Composer interface {
	Compose(spec document.Spec) (string, error)
}

type Exporter interface {
	Export(ctx context.Context, html string) (*exporter.Artifact, error)
}

type Response struct {
	PdfURL    *string  `json:"pdfFileS3Uri"`
	AudioURLs []string `json:"audioS3Uris"`

	DocumentName string `json:"documentName"`
}

type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Result is the terminal outcome of a run.
type Result struct {
	Stage  Stage
	Status int

	Response *Response
	Err      error
}

// Body is the payload returned to the caller.
func (r *Result) Body() any {
	if r.Err == nil {
		return r.Response
	}

	message := "Error generating document"

	if fault.KindOf(r.Err) == fault.KindValidation {
		message = "Invalid request"
	}

	return &ErrorResponse{
		Message: message,
		Error:   r.Err.Error(),
	}
}

type Pipeline struct {
	summarizer summarizer.Provider
	composer   Composer
	exporter   Exporter
	storage    storage.Provider

	logger *slog.Logger

	maxTokens   int
	concurrency int

	now   func() time.Time
	newID func() string
}

type Option func(*Pipeline)

func WithComposer(composer Composer) Option {
	return func(p *Pipeline) {
		p.composer = composer
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(p *Pipeline) {
		p.maxTokens = maxTokens
	}
}

// WithConcurrency bounds parallel audio uploads. The default of 1 uploads
// clips one after another.
func WithConcurrency(concurrency int) Option {
	return func(p *Pipeline) {
		p.concurrency = concurrency
	}
}

func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(p *Pipeline) {
		p.newID = newID
	}
}

func New(summarizer summarizer.Provider, exporter Exporter, storage storage.Provider, options ...Option) *Pipeline {
	p := &Pipeline{
		summarizer: summarizer,
		composer:   document.NewComposer(),
		exporter:   exporter,
		storage:    storage,

		logger: slog.Default(),

		concurrency: 1,

		now:   time.Now,
		newID: uuid.NewString,
	}

	for _, option := range options {
		option(p)
	}

	if p.concurrency < 1 {
		p.concurrency = 1
	}

	return p
}

// Handle runs the pipeline for a raw request body.
func (p *Pipeline) Handle(ctx context.Context, data []byte) *Result {
	req, err := ParseRequest(data)

	if err != nil {
		return p.fail(ctx, p.logger, StageReceived, err)
	}

	return p.Execute(ctx, req)
}

// Execute runs a validated request to completion. It never returns a
// partial set of URLs: either every artifact was published or the run failed.
func (p *Pipeline) Execute(ctx context.Context, req *Request) *Result {
	start := time.Now()

	logger := p.logger.With("document", req.DocumentName)

	if req.DocumentText == "" {
		logger.InfoContext(ctx, "no document text, request rejected")

		return &Result{
			Stage:  StageRejected,
			Status: http.StatusBadRequest,

			Response: &Response{
				DocumentName: req.DocumentName,
			},
		}
	}

	clips, err := decodeAudio(req.AudioFiles)

	if err != nil {
		return p.fail(ctx, logger, StageValidated, err)
	}

	summary, err := p.summarize(ctx, logger, req)

	if err != nil {
		return p.fail(ctx, logger, StageValidated, err)
	}

	artifact, err := p.render(ctx, req.QuestionText, summary)

	if err != nil {
		return p.fail(ctx, logger, StageSummarized, err)
	}

	defer func() {
		if err := artifact.Remove(); err != nil {
			logger.WarnContext(ctx, "failed to remove temporary document", "path", artifact.Path, "error", err)
		}
	}()

	logger.DebugContext(ctx, "document rendered", "size", artifact.Size)

	response, err := p.publish(ctx, req, artifact, clips)

	if err != nil {
		return p.fail(ctx, logger, StageRendered, err)
	}

	logger.InfoContext(ctx, "document generated", "audio", len(clips), "duration", time.Since(start))

	return &Result{
		Stage:  StageCompleted,
		Status: http.StatusOK,

		Response: response,
	}
}

func (p *Pipeline) fail(ctx context.Context, logger *slog.Logger, stage Stage, err error) *Result {
	status := fault.Status(err)

	if status == http.StatusBadRequest {
		logger.InfoContext(ctx, "invalid request", "stage", stage, "error", err)
	} else {
		logger.ErrorContext(ctx, "pipeline failed", "stage", stage, "kind", fault.KindOf(err), "error", err)
	}

	return &Result{
		Stage:  StageFailed,
		Status: status,

		Err: err,
	}
}

func (p *Pipeline) summarize(ctx context.Context, logger *slog.Logger, req *Request) (string, error) {
	start := time.Now()

	summary, err := p.summarizer.Summarize(ctx, req.QuestionText, req.DocumentText, &summarizer.SummarizerOptions{
		MaxTokens: p.maxTokens,
	})

	if err != nil {
		return "", fault.Dependency("summarize", err)
	}

	logger.DebugContext(ctx, "summary generated", "duration", time.Since(start), "summary", summary.Text)

	return summary.Text, nil
}

func (p *Pipeline) render(ctx context.Context, title, summary string) (*exporter.Artifact, error) {
	body := text.ToHTML(text.Unescape(summary))

	html, err := p.composer.Compose(document.Spec{
		Title: title,
		Body:  body,
	})

	if err != nil {
		return nil, fault.Render("compose document", err)
	}

	return p.exporter.Export(ctx, html)
}

func (p *Pipeline) publish(ctx context.Context, req *Request, artifact *exporter.Artifact, clips []AudioClip) (*Response, error) {
	session := p.sessionID(len(clips) > 0)

	f, err := artifact.Open()

	if err != nil {
		return nil, fault.Render("open document", err)
	}

	defer f.Close()

	pdf, err := p.storage.Publish(ctx, documentKey(session, req.DocumentName), f, ContentTypePDF)

	if err != nil {
		return nil, err
	}

	urls := make([]string, len(clips))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for _, clip := range clips {
		g.Go(func() error {
			key := audioKey(session, req.DocumentName, clip.Index)

			audio, err := p.storage.Publish(ctx, key, bytes.NewReader(clip.Data), ContentTypeWebM)

			if err != nil {
				return err
			}

			urls[clip.Index] = audio.URL
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Response{
		PdfURL:    &pdf.URL,
		AudioURLs: urls,

		DocumentName: req.DocumentName,
	}, nil
}
