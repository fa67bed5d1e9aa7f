package filter

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/disgo/models"
)

// Apply evaluates filter against txs in order and returns the matches.
// Transactions whose evaluation fails are skipped; their errors are joined
// into the returned error.
func Apply(filter Filter, txs []models.Transaction) ([]models.Transaction, error) {
	matches := make([]models.Transaction, 0, len(txs))
	var errs []error
	for _, tx := range txs {
		ok, err := filter.Evaluate(tx)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if ok {
			matches = append(matches, tx)
		}
	}
	return matches, errors.Join(errs...)
}

// EvaluatorOption configures a ConcurrentEvaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of concurrent chunks
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if workers > 0 {
			e.workers = workers
		}
	}
}

// WithBatchSize sets the list size below which evaluation stays sequential
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		if size > 0 {
			e.batchSize = size
		}
	}
}

// ConcurrentEvaluator splits large lists into chunks evaluated in parallel.
// Match order follows the input order.
type ConcurrentEvaluator struct {
	workers   int
	batchSize int
}

var _ Evaluator = (*ConcurrentEvaluator)(nil)

// NewConcurrentEvaluator creates an evaluator with GOMAXPROCS workers
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workers:   runtime.GOMAXPROCS(0),
		batchSize: 100,
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate returns the transactions matching filter
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter Filter, txs []models.Transaction) ([]models.Transaction, error) {
	if len(txs) < e.batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return Apply(filter, txs)
	}

	chunkSize := max(len(txs)/e.workers, e.batchSize)
	chunks := (len(txs) + chunkSize - 1) / chunkSize

	type chunkResult struct {
		matches []models.Transaction
		err     error
	}
	results := make([]chunkResult, chunks)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i := range chunks {
		start := i * chunkSize
		end := min(start+chunkSize, len(txs))

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			matches, err := Apply(filter, txs[start:end])
			results[i] = chunkResult{matches: matches, err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var (
		all  []models.Transaction
		errs []error
	)
	for _, r := range results {
		all = append(all, r.matches...)
		if r.err != nil {
			errs = append(errs, r.err)
		}
	}
	return all, errors.Join(errs...)
}
