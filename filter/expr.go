package filter

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/disgo/models"
)

// DefaultCacheSize is the number of compiled programs NewCompiler keeps
const DefaultCacheSize = 100

// CompilerOption configures an ExprCompiler
type CompilerOption func(*ExprCompiler)

// WithCache sets the size of the compiled program cache. Zero disables it.
func WithCache(size int) CompilerOption {
	return func(c *ExprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[*exprFilter](size)
		} else {
			c.cache = nil
		}
	}
}

// WithFunctions adds custom helper functions available to every expression
func WithFunctions(funcs map[string]any) CompilerOption {
	return func(c *ExprCompiler) {
		maps.Copy(c.extra, funcs)
	}
}

// WithClock replaces time.Now for the date helpers
func WithClock(now func() time.Time) CompilerOption {
	return func(c *ExprCompiler) {
		c.now = now
	}
}

// ExprCompiler compiles expr-lang expressions over transactions
type ExprCompiler struct {
	extra map[string]any
	now   func() time.Time
	cache *lruCache[*exprFilter]
}

var _ CachingCompiler = (*ExprCompiler)(nil)

// NewCompiler creates an expr compiler with a cache of DefaultCacheSize
func NewCompiler(opts ...CompilerOption) *ExprCompiler {
	c := &ExprCompiler{
		extra: make(map[string]any),
		now:   time.Now,
		cache: newLRUCache[*exprFilter](DefaultCacheSize),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile checks an expression against the transaction environment and
// returns an executable filter. The result must be boolean.
func (c *ExprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.environment(models.Transaction{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{expression: expression, program: program, compiler: c}
	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *ExprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *ExprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

func (c *ExprCompiler) environment(tx models.Transaction) map[string]any {
	env := newEnvironment(tx, c.now())
	maps.Copy(env, c.extra)
	return env
}

// exprFilter is a compiled expression; it is safe for concurrent use
type exprFilter struct {
	expression string
	program    *vm.Program
	compiler   *ExprCompiler
}

// Evaluate runs the program against tx
func (f *exprFilter) Evaluate(tx models.Transaction) (bool, error) {
	result, err := expr.Run(f.program, f.compiler.environment(tx))
	if err != nil {
		return false, &EvaluationError{
			Expression:      f.expression,
			TransactionHash: tx.Hash,
			Reason:          "failed to run expression",
			Err:             err,
		}
	}

	matched, ok := result.(bool)
	if !ok {
		return false, &EvaluationError{
			Expression:      f.expression,
			TransactionHash: tx.Hash,
			Reason:          fmt.Sprintf("expected bool result, got %T", result),
		}
	}
	return matched, nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}
