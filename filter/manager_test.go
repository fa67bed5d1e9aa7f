package filter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRegisterAll(t *testing.T) {
	m := NewManager(WithCompiler(testCompiler()))

	err := m.RegisterAll(map[string]string{
		"deploys": `isDeploy()`,
		"large":   `Value > 990`,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"deploys", "large"}, m.Names())

	matches, err := m.Evaluate(context.Background(), "large", generateTransactions(1000))
	require.NoError(t, err)
	assert.Len(t, matches, 9)
}

func TestManagerRegisterAllIsAtomic(t *testing.T) {
	m := NewManager(WithCompiler(testCompiler()))

	err := m.RegisterAll(map[string]string{
		"good": `isDeploy()`,
		"bad":  `isDeploy(`,
	})

	var compErr *CompilationError
	require.ErrorAs(t, err, &compErr)
	assert.Contains(t, err.Error(), "bad")
	assert.Empty(t, m.Names())
}

func TestManagerUnknownFilter(t *testing.T) {
	m := NewManager()

	_, err := m.Evaluate(context.Background(), "missing", nil)
	assert.ErrorIs(t, err, ErrUnknownFilter)

	_, ok := m.Get("missing")
	assert.False(t, ok)
}

func TestManagerRegisterReplaces(t *testing.T) {
	m := NewManager(WithCompiler(testCompiler()))
	require.NoError(t, m.Register("f", `isDeploy()`))
	require.NoError(t, m.Register("f", `isExecute()`))

	filter, ok := m.Get("f")
	require.True(t, ok)
	assert.Equal(t, `isExecute()`, filter.Expression())
}
