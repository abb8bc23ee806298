package foodkey

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockChecker reports existence for a fixed number of calls before freeing up.
type mockChecker struct {
	takenCalls int
	err        error
	calls      int
}

func (m *mockChecker) PublicKeyExists(ctx context.Context, key string) (bool, error) {
	m.calls++
	if m.err != nil {
		return false, m.err
	}
	return m.calls <= m.takenCalls, nil
}

func TestGenerateReturnsValidUUID(t *testing.T) {
	gen := NewGenerator(&mockChecker{}, &mockChecker{})

	key, err := gen.Generate(context.Background())

	require.NoError(t, err)
	_, parseErr := uuid.Parse(key)
	assert.NoError(t, parseErr)
}

func TestGenerateRetriesOnCollision(t *testing.T) {
	foods := &mockChecker{takenCalls: 2}
	recipes := &mockChecker{}
	gen := NewGenerator(foods, recipes)

	key, err := gen.Generate(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, key)
	assert.Equal(t, 3, foods.calls)
}

func TestGenerateChecksAllKeySpaces(t *testing.T) {
	foods := &mockChecker{}
	recipes := &mockChecker{takenCalls: 1}
	gen := NewGenerator(foods, recipes)

	_, err := gen.Generate(context.Background())

	require.NoError(t, err)
	assert.GreaterOrEqual(t, recipes.calls, 1)
}

func TestGenerateExhaustsAttempts(t *testing.T) {
	gen := NewGenerator(&mockChecker{takenCalls: maxAttempts})

	_, err := gen.Generate(context.Background())

	assert.ErrorIs(t, err, ErrKeyGenerationFailed)
}

func TestGeneratePropagatesCheckerError(t *testing.T) {
	boom := errors.New("connection refused")
	gen := NewGenerator(&mockChecker{err: boom})

	_, err := gen.Generate(context.Background())

	assert.ErrorIs(t, err, boom)
}
