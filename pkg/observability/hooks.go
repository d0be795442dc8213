// Package observability lets callers watch heatgrid work as it happens.
//
// The pipeline and cache announce each stage to process-wide listeners. By
// default nobody listens. The CLI installs [LogHooks] when run with -v:
//
//	h := observability.NewLogHooks(logger)
//	observability.SetPipelineHooks(h)
//	observability.SetCacheHooks(h)
//
// Emitters fetch the current listener at the call site, so swapping hooks
// takes effect for the next event:
//
//	observability.Pipeline().OnLayoutStart(ctx, cols, rows)
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// PipelineHooks observes the import, layout and render stages. Every Start
// is followed by exactly one Complete carrying the stage's error, if any.
type PipelineHooks interface {
	OnImportStart(ctx context.Context, source string)
	OnImportComplete(ctx context.Context, source string, points int, duration time.Duration, err error)

	OnLayoutStart(ctx context.Context, cols, rows int)
	OnLayoutComplete(ctx context.Context, width, height int, duration time.Duration, err error)

	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks observes artifact cache traffic. keyType is the artifact
// format ("png", "svg", "json").
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnImportStart(context.Context, string)                               {}
func (NoopPipelineHooks) OnImportComplete(context.Context, string, int, time.Duration, error) {}
func (NoopPipelineHooks) OnLayoutStart(context.Context, int, int)                             {}
func (NoopPipelineHooks) OnLayoutComplete(context.Context, int, int, time.Duration, error)    {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                             {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error)    {}

type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// Listeners are boxed so atomic.Pointer can hold interface values.
type (
	pipelineBox struct{ PipelineHooks }
	cacheBox    struct{ CacheHooks }
)

var (
	pipelineHooks atomic.Pointer[pipelineBox]
	cacheHooks    atomic.Pointer[cacheBox]
)

func init() { Reset() }

// SetPipelineHooks installs h as the pipeline listener. Nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		pipelineHooks.Store(&pipelineBox{h})
	}
}

// SetCacheHooks installs h as the cache listener. Nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		cacheHooks.Store(&cacheBox{h})
	}
}

func Pipeline() PipelineHooks { return pipelineHooks.Load().PipelineHooks }

func Cache() CacheHooks { return cacheHooks.Load().CacheHooks }

// Reset reinstalls the no-op listeners.
func Reset() {
	pipelineHooks.Store(&pipelineBox{NoopPipelineHooks{}})
	cacheHooks.Store(&cacheBox{NoopCacheHooks{}})
}
