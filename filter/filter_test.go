package filter

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/disgo/models"
	"github.com/s0up4200/disgo/optional"
)

var testNow = time.Date(2018, time.July, 1, 12, 0, 0, 0, time.UTC)

func testCompiler(opts ...CompilerOption) *ExprCompiler {
	return NewCompiler(append([]CompilerOption{WithClock(func() time.Time { return testNow })}, opts...)...)
}

func testTransaction() models.Transaction {
	return models.Transaction{
		Hash:      "8f0a",
		Type:      models.TransactionTypeTransfer,
		From:      "3ED2",
		To:        "c296",
		Value:     1500,
		Time:      testNow.AddDate(0, 0, -10).UnixMilli(),
		Signature: "e2c1",
		FromName:  optional.Of("genesis"),
		ToName:    optional.Null[string](),
	}
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{name: "valid expression", expression: `isTransfer() and Value > 1000`},
		{name: "surrounding whitespace", expression: `  isDeploy()  `},
		{name: "empty expression", expression: "   ", wantErr: true, errContains: "empty expression"},
		{name: "invalid syntax", expression: `from("unclosed`, wantErr: true},
		{name: "unknown variable", expression: `Balance > 10`, wantErr: true},
		{name: "non boolean result", expression: `Value + 1`, wantErr: true},
		{name: "wrong argument type", expression: `olderThan("seven")`, wantErr: true},
		{name: "complex expression", expression: `(isExecute() or isDeploy()) and not olderThan(30) and Method != ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := testCompiler().Compile(tt.expression)

			if tt.wantErr {
				var compErr *CompilationError
				require.ErrorAs(t, err, &compErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.expression), filter.Expression())
		})
	}
}

func TestEvaluate(t *testing.T) {
	tx := testTransaction()

	tests := []struct {
		name       string
		expression string
		want       bool
	}{
		{"transfer", `isTransfer()`, true},
		{"deploy", `isDeploy()`, false},
		{"type name", `Type == "TRANSFER"`, true},
		{"from is case insensitive", `from("3ed2")`, true},
		{"to", `to("C296")`, true},
		{"to other", `to("ffff")`, false},
		{"value", `Value >= 1500 and Value < 2000`, true},
		{"older than a week", `olderThan(7)`, true},
		{"older than a month", `olderThan(30)`, false},
		{"newer than a month", `newerThan(30)`, true},
		{"days since", `daysSince(Time) == 10`, true},
		{"time before days ago", `Time < daysAgo(5)`, true},
		{"present name", `FromName == "genesis"`, true},
		{"null name is empty", `ToName == ""`, true},
		{"absent hertz is zero", `Hertz == 0`, true},
		{"contract", `IsContract`, false},
		{"builtin lower", `lower(From) == "3ed2"`, true},
	}

	compiler := testCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := compiler.Compile(tt.expression)
			require.NoError(t, err)

			got, err := filter.Evaluate(tx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvaluateRuntimeError(t *testing.T) {
	filter, err := testCompiler().Compile(`Value % Hertz == 0`)
	require.NoError(t, err)

	_, err = filter.Evaluate(testTransaction())

	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "8f0a", evalErr.TransactionHash)
	assert.Equal(t, `Value % Hertz == 0`, evalErr.Expression)
}

func TestCompilerCache(t *testing.T) {
	compiler := testCompiler(WithCache(2))

	first, err := compiler.Compile(`isTransfer()`)
	require.NoError(t, err)
	again, err := compiler.Compile(` isTransfer() `)
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, 1, compiler.Size())

	_, err = compiler.Compile(`isDeploy()`)
	require.NoError(t, err)
	_, err = compiler.Compile(`isExecute()`)
	require.NoError(t, err)
	assert.Equal(t, 2, compiler.Size())

	compiler.Clear()
	assert.Equal(t, 0, compiler.Size())

	uncached := testCompiler(WithCache(0))
	_, err = uncached.Compile(`isTransfer()`)
	require.NoError(t, err)
	assert.Equal(t, 0, uncached.Size())
}

func TestCustomFunctions(t *testing.T) {
	compiler := testCompiler(WithFunctions(map[string]any{
		"isWhale": func(value int) bool { return value > 1000 },
	}))

	filter, err := compiler.Compile(`isWhale(Value)`)
	require.NoError(t, err)

	got, err := filter.Evaluate(testTransaction())
	require.NoError(t, err)
	assert.True(t, got)
}

func TestLRUCacheEviction(t *testing.T) {
	cache := newLRUCache[int](2)
	cache.Put("a", 1)
	cache.Put("b", 2)

	_, ok := cache.Get("a")
	require.True(t, ok)

	cache.Put("c", 3)

	_, ok = cache.Get("b")
	assert.False(t, ok, "least recently used entry is evicted")
	v, ok := cache.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	cache.Put("a", 10)
	v, _ = cache.Get("a")
	assert.Equal(t, 10, v)
	assert.Equal(t, 2, cache.Size())
}
