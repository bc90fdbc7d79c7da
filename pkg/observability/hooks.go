// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about generator stages and output writes.
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGeneratorHooks(&myGeneratorHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Generator().OnBuildStart(ctx, panelCount)
//	// ... build panels ...
//	observability.Generator().OnBuildComplete(ctx, panelCount, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// GeneratorHooks receives events from the panel generation pipeline.
type GeneratorHooks interface {
	// Resolve events
	OnResolveStart(ctx context.Context)
	OnResolveComplete(ctx context.Context, faceCount int, duration time.Duration, err error)

	// Build events
	OnBuildStart(ctx context.Context, faceCount int)
	OnBuildComplete(ctx context.Context, panelCount int, duration time.Duration, err error)

	// Arrange events
	OnArrangeStart(ctx context.Context, layout string, panelCount int)
	OnArrangeComplete(ctx context.Context, layout string, duration time.Duration, err error)
}

// SinkHooks receives events from output writers.
type SinkHooks interface {
	// OnWriteStart records the start of an output write.
	OnWriteStart(ctx context.Context, format string)

	// OnWriteComplete records a finished output write.
	OnWriteComplete(ctx context.Context, format string, duration time.Duration, err error)
}

// NoopGeneratorHooks is a no-op implementation of GeneratorHooks.
type NoopGeneratorHooks struct{}

func (NoopGeneratorHooks) OnResolveStart(context.Context)                                {}
func (NoopGeneratorHooks) OnResolveComplete(context.Context, int, time.Duration, error)  {}
func (NoopGeneratorHooks) OnBuildStart(context.Context, int)                             {}
func (NoopGeneratorHooks) OnBuildComplete(context.Context, int, time.Duration, error)    {}
func (NoopGeneratorHooks) OnArrangeStart(context.Context, string, int)                   {}
func (NoopGeneratorHooks) OnArrangeComplete(context.Context, string, time.Duration, error) {
}

// NoopSinkHooks is a no-op implementation of SinkHooks.
type NoopSinkHooks struct{}

func (NoopSinkHooks) OnWriteStart(context.Context, string)                          {}
func (NoopSinkHooks) OnWriteComplete(context.Context, string, time.Duration, error) {}

var (
	generatorHooks GeneratorHooks = NoopGeneratorHooks{}
	sinkHooks      SinkHooks      = NoopSinkHooks{}
	hooksMu        sync.RWMutex
)

// SetGeneratorHooks registers custom generator hooks.
// This should be called once at application startup before any generation.
func SetGeneratorHooks(h GeneratorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		generatorHooks = h
	}
}

// SetSinkHooks registers custom sink hooks.
// This should be called once at application startup before any writes.
func SetSinkHooks(h SinkHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		sinkHooks = h
	}
}

// Generator returns the registered generator hooks.
func Generator() GeneratorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return generatorHooks
}

// Sink returns the registered sink hooks.
func Sink() SinkHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return sinkHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	generatorHooks = NoopGeneratorHooks{}
	sinkHooks = NoopSinkHooks{}
}
