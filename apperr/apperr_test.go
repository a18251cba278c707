package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	cause := errors.New("connection refused")
	err := Storage("load rows", cause)
	assert.Equal(t, "load rows: connection refused", err.Error())

	noCause := Input("bad origin %q", "xyz")
	assert.Equal(t, `bad origin "xyz"`, noCause.Error())
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Upstream("fetch failed", cause)
	assert.Same(t, cause, errors.Unwrap(err))
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(Timeout("deadline exceeded", nil))
	require.True(t, ok)
	assert.Equal(t, KindTimeout, kind)

	_, ok = KindOf(errors.New("plain error"))
	assert.False(t, ok)
}

func TestKindOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", ModelUnavailable("no rows"))
	kind, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindModelUnavailable, kind)
}

func TestRetryable(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want bool
	}{
		{"upstream retryable", Upstream("x", nil), true},
		{"timeout retryable", Timeout("x", nil), true},
		{"storage retryable", Storage("x", nil), true},
		{"input not retryable", Input("x"), false},
		{"model unavailable not retryable", ModelUnavailable("x"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Retryable())
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestIsMatchesByKind(t *testing.T) {
	a := Storage("first failure", nil)
	b := Storage("second failure", nil)
	assert.True(t, a.Is(b))

	c := Input("bad input")
	assert.False(t, a.Is(c))
}
