//go:build unit

package rating

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScore(t *testing.T) {
	for v := 1; v <= 5; v++ {
		score, err := NewScore(v)
		require.NoError(t, err)
		assert.Equal(t, v, score.Value())
	}

	for _, v := range []int{0, -1, 6, 100} {
		_, err := NewScore(v)
		assert.ErrorIs(t, err, ErrInvalidScore, "score %d", v)
	}
}

func TestNewComment(t *testing.T) {
	c, err := NewComment("  great court  ")
	require.NoError(t, err)
	assert.Equal(t, "great court", c.String())

	c, err = NewComment("")
	require.NoError(t, err)
	assert.Empty(t, c.String())

	_, err = NewComment(strings.Repeat("x", MaxCommentLength+1))
	assert.ErrorIs(t, err, ErrCommentTooLong)
}

func TestNewRating(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	courtID := uuid.New()

	r, err := NewRating(courtID, "player@example.com", 4, "solid surface", now)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Score().Value())
	assert.True(t, r.IsOwnedBy("player@example.com"))
	assert.False(t, r.IsOwnedBy("other@example.com"))

	_, err = NewRating(uuid.Nil, "player@example.com", 4, "", now)
	assert.ErrorIs(t, err, ErrCourtRequired)

	_, err = NewRating(courtID, "", 4, "", now)
	assert.ErrorIs(t, err, ErrRaterRequired)
}

func TestRevise(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	r, err := NewRating(uuid.New(), "player@example.com", 2, "bumpy", now)
	require.NoError(t, err)

	later := now.Add(time.Hour)
	require.NoError(t, r.Revise(5, "resurfaced, much better", later))
	assert.Equal(t, 5, r.Score().Value())
	assert.Equal(t, "resurfaced, much better", r.Comment().String())
	assert.Equal(t, later, r.UpdatedAt())
	assert.Equal(t, now, r.CreatedAt())

	// A rejected revision leaves the rating untouched.
	assert.ErrorIs(t, r.Revise(9, "", later), ErrInvalidScore)
	assert.Equal(t, 5, r.Score().Value())
}
