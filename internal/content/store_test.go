package content

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetByIDWithoutDatabase(t *testing.T) {
	s := NewStore(nil, nil, slog.Default())

	c, err := s.GetByID(context.Background(), 42)

	require.Error(t, err)
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNoDatabase)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestCacheKey(t *testing.T) {
	assert.Equal(t, "content:meta:42", cacheKey(42))
}
