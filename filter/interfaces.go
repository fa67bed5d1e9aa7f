// Package filter evaluates expr-lang expressions against transactions on the
// client side, e.g. `isTransfer() and Value > 1000 and not olderThan(7)`.
package filter

import (
	"context"

	"github.com/s0up4200/disgo/models"
)

// Filter decides whether a transaction matches
type Filter interface {
	// Evaluate reports whether tx matches the filter criteria
	Evaluate(tx models.Transaction) (bool, error)
}

// CompiledFilter is a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// Evaluator applies a filter to a list of transactions
type Evaluator interface {
	Evaluate(ctx context.Context, filter Filter, txs []models.Transaction) ([]models.Transaction, error)
}
