package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseURL(t *testing.T) {
	for _, env := range All() {
		t.Run(env.String(), func(t *testing.T) {
			u, err := BaseURL(env)
			require.NoError(t, err)
			assert.True(t, u.IsAbs(), "base URL must be absolute")
			assert.NotEmpty(t, u.Host)
			assert.Contains(t, []string{"http", "https"}, u.Scheme)
		})
	}
}

func TestBaseURLIsDeterministic(t *testing.T) {
	first, err := BaseURL(Production)
	require.NoError(t, err)
	second, err := BaseURL(Production)
	require.NoError(t, err)

	assert.Equal(t, first.String(), second.String())
	// callers get their own copy
	first.Path = "/mutated"
	third, err := BaseURL(Production)
	require.NoError(t, err)
	assert.Empty(t, third.Path)
}

func TestBaseURLUnknown(t *testing.T) {
	_, err := BaseURL(Environment("staging"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownEnvironment)
	assert.Contains(t, err.Error(), "staging")
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Environment
		wantErr bool
	}{
		{input: "production", want: Production},
		{input: "Production", want: Production},
		{input: " SANDBOX ", want: Sandbox},
		{input: "", wantErr: true},
		{input: "devnet", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrUnknownEnvironment)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
