package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Translator converts one natural-language request into a dork query.
// *translate.Translator satisfies it.
type Translator interface {
	Translate(input string) string
}

// Result is the translation of one input.
type Result struct {
	Index int
	Input string
	Query string
}

// Runner translates batches of inputs on a worker pool.
type Runner struct {
	translator Translator
	config     Config
	progress   io.Writer
	logger     *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a runner. progress receives status lines and may be nil.
func NewRunner(translator Translator, cfg *Config, progress io.Writer, opts ...Option) (*Runner, error) {
	if translator == nil {
		return nil, ErrTranslatorRequired
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		translator: translator,
		config:     *cfg,
		progress:   progress,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Run translates every input and returns results in input order.
// If ctx is cancelled before all inputs are submitted, Run waits for the
// submitted work to drain and returns ctx.Err().
func (r *Runner) Run(ctx context.Context, inputs []string) ([]Result, error) {
	pool, err := ants.NewPool(r.config.PoolSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	tracker := NewProgressTracker(r.progress, len(inputs), r.config.ReportInterval)
	tracker.Start()

	results := make([]Result, len(inputs))
	var wg sync.WaitGroup

	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			wg.Wait()
			tracker.Finish()
			r.logger.Warn("batch cancelled", "submitted", i, "total", len(inputs))
			return nil, err
		}

		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			results[i] = Result{
				Index: i,
				Input: input,
				Query: r.translator.Translate(input),
			}
			tracker.Increment(1)
		})
		if err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("failed to submit translation %d: %w", i, err)
		}
	}

	wg.Wait()
	tracker.Finish()

	r.logger.Info("batch complete",
		"count", len(inputs),
		"workers", r.config.PoolSize,
		"elapsed", tracker.Elapsed())
	return results, nil
}
