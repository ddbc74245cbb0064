package prefixid

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouteDispatchesByPrefix(t *testing.T) {
	id, err := Generate("user")
	require.NoError(t, err)
	want, err := Parse(id)
	require.NoError(t, err)

	var called uuid.UUID
	handlers := map[string]Handler[string]{
		"user": func(u uuid.UUID) (string, error) {
			called = u
			return "user:" + u.String(), nil
		},
		"admin": func(uuid.UUID) (string, error) {
			t.Fatal("admin handler must not run")
			return "", nil
		},
	}

	got, ok, err := Route(Default, id, handlers)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want.UUID, called)
	assert.Equal(t, "user:"+want.UUIDString(), got)
}

func TestRouteNoMatch(t *testing.T) {
	handlers := map[string]Handler[int]{
		"user": func(uuid.UUID) (int, error) { return 1, nil },
	}

	id, err := Generate("unknown")
	require.NoError(t, err)

	for _, in := range []string{id, "invalid", "user_!!!", ""} {
		got, ok, err := Route(Default, in, handlers)
		assert.NoError(t, err, in)
		assert.False(t, ok, in)
		assert.Zero(t, got, in)
	}
}

func TestRouteHandlerErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	handlers := map[string]Handler[struct{}]{
		"job": func(uuid.UUID) (struct{}, error) { return struct{}{}, boom },
	}

	id, err := Generate("job")
	require.NoError(t, err)

	_, ok, err := Route(Default, id, handlers)
	assert.True(t, ok)
	assert.Same(t, boom, err)
}
