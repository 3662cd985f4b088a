package service

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"

	"github.com/bianlab/landscape/internal/core/model"
	"github.com/bianlab/landscape/internal/core/port"
	"github.com/bianlab/landscape/internal/log"
	"github.com/bianlab/landscape/internal/metrics"
)

type RenderPipelineOptions struct {
	ReadinessChecker port.ReadinessChecker
	CacheSize        int
}

type RenderPipelineOptionFunc func(opts *RenderPipelineOptions)

func NewRenderPipelineOptions(funcs ...RenderPipelineOptionFunc) *RenderPipelineOptions {
	opts := &RenderPipelineOptions{
		CacheSize: 0,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func WithRenderPipelineReadinessChecker(checker port.ReadinessChecker) RenderPipelineOptionFunc {
	return func(opts *RenderPipelineOptions) {
		opts.ReadinessChecker = checker
	}
}

// WithRenderPipelineCacheSize enables an in-memory LRU cache of successful
// render results, keyed by the rendered content and format. A size of 0
// disables caching.
func WithRenderPipelineCacheSize(size int) RenderPipelineOptionFunc {
	return func(opts *RenderPipelineOptions) {
		opts.CacheSize = size
	}
}

// RenderPipeline turns a selection of catalogue documents into a single
// renderable document, submits it to the external renderer and translates
// the response into a render result.
type RenderPipeline struct {
	store     *ContentStore
	renderer  port.Renderer
	readiness port.ReadinessChecker
	cache     *lru.Cache[string, *model.RenderResult]
}

func NewRenderPipeline(store *ContentStore, renderer port.Renderer, funcs ...RenderPipelineOptionFunc) *RenderPipeline {
	opts := NewRenderPipelineOptions(funcs...)

	var cache *lru.Cache[string, *model.RenderResult]
	if opts.CacheSize > 0 {
		// lru.New only fails on a non-positive size
		cache, _ = lru.New[string, *model.RenderResult](opts.CacheSize)
	}

	return &RenderPipeline{
		store:     store,
		renderer:  renderer,
		readiness: opts.ReadinessChecker,
		cache:     cache,
	}
}

// BuildDocument composes the documents of the selection into a single
// renderable text. A single-member selection returns the document body
// unchanged; a larger selection is merged into one well-formed document
// wrapped in exactly one marker pair, in selection order.
func (p *RenderPipeline) BuildDocument(session *RenderSession) (string, error) {
	session.transition(StateBuilding)

	selection := session.Selection()

	if selection.Len() == 0 {
		return "", errors.New("empty selection")
	}

	ids := selection.IDs()

	if len(ids) == 1 {
		doc, err := p.store.Get(ids[0])
		if err != nil {
			return "", errors.WithStack(err)
		}

		return doc.Body(), nil
	}

	documents := make([]*model.Document, 0, len(ids))
	for _, id := range ids {
		doc, err := p.store.Get(id)
		if err != nil {
			return "", errors.WithStack(err)
		}

		documents = append(documents, doc)
	}

	return Combine(documents), nil
}

// Render submits the given content to the external renderer. The format is
// validated before any external call; a failure never falls back to a
// default image. A single external invocation per call, no retry.
func (p *RenderPipeline) Render(ctx context.Context, session *RenderSession, content string, format model.Format) (*model.RenderResult, error) {
	ctx = log.WithAttrs(ctx, slog.String("sessionID", session.ID()))

	metrics.TotalRenderRequests.WithLabelValues(string(format)).Add(1)

	req, err := model.NewRenderRequest(content, format)
	if err != nil {
		session.transition(StateFailed)
		return nil, errors.WithStack(err)
	}

	cacheKey := renderCacheKey(content, format)

	if p.cache != nil {
		if result, ok := p.cache.Get(cacheKey); ok {
			slog.DebugContext(ctx, "render cache hit")
			session.transition(StateSucceeded)
			return result, nil
		}
	}

	session.transition(StateSubmitting)

	start := time.Now()

	result, err := p.renderer.Render(ctx, req)
	if err != nil {
		session.transition(StateFailed)
		metrics.FailedRenders.WithLabelValues(string(format)).Add(1)
		return nil, errors.WithStack(err)
	}

	metrics.RenderDuration.WithLabelValues(string(format)).Observe(time.Since(start).Seconds())

	if !result.Succeeded() {
		session.transition(StateFailed)
		metrics.FailedRenders.WithLabelValues(string(format)).Add(1)

		slog.ErrorContext(ctx, "renderer reported failure",
			slog.String("category", string(result.Failure().Category)),
			slog.String("message", result.Failure().Message),
		)

		return result, nil
	}

	session.transition(StateSucceeded)

	slog.DebugContext(ctx, "render succeeded",
		slog.String("contentType", result.ContentType()),
		slog.String("size", humanize.Bytes(uint64(len(result.Payload())))),
		slog.Duration("duration", time.Since(start)),
	)

	if p.cache != nil {
		p.cache.Add(cacheKey, result)
	}

	return result, nil
}

// Execute runs the full build-then-render flow for the session.
func (p *RenderPipeline) Execute(ctx context.Context, session *RenderSession, format model.Format) (*model.RenderResult, error) {
	content, err := p.BuildDocument(session)
	if err != nil {
		session.transition(StateFailed)
		return nil, errors.WithStack(err)
	}

	result, err := p.Render(ctx, session, content, format)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return result, nil
}

// CheckReadiness reports the composite status of the renderer
// prerequisites. Diagnostics only; it never gates Render.
func (p *RenderPipeline) CheckReadiness(ctx context.Context) (*model.Readiness, error) {
	if p.readiness == nil {
		return nil, errors.New("no readiness checker configured")
	}

	readiness, err := p.readiness.CheckReadiness(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return readiness, nil
}

func renderCacheKey(content string, format model.Format) string {
	sum := sha256.Sum256([]byte(string(format) + "\x00" + content))
	return fmt.Sprintf("%x", sum)
}
