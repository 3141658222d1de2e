//go:build unit

package user

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	u, err := NewUser("Shila", "shila@example.com", nil, now)
	require.NoError(t, err)
	assert.Equal(t, RoleUser, u.Role())
	assert.Nil(t, u.MemberSince())

	_, err = NewUser("NoEmail", "  ", nil, now)
	assert.ErrorIs(t, err, ErrEmailRequired)
}

func TestPromote(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	u, err := NewUser("Shila", "shila@example.com", nil, now)
	require.NoError(t, err)

	changed := u.Promote(now)
	assert.True(t, changed)
	assert.Equal(t, RoleMember, u.Role())
	require.NotNil(t, u.MemberSince())
	assert.Equal(t, now, *u.MemberSince())
}

// A second promotion must not move the original membership date.
func TestPromoteIsIdempotent(t *testing.T) {
	first := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	later := first.AddDate(0, 3, 0)

	u, err := NewUser("Shila", "shila@example.com", nil, first)
	require.NoError(t, err)

	require.True(t, u.Promote(first))
	changed := u.Promote(later)

	assert.False(t, changed)
	assert.Equal(t, RoleMember, u.Role())
	require.NotNil(t, u.MemberSince())
	assert.Equal(t, first, *u.MemberSince())
}

func TestPromoteKeepsAdminRole(t *testing.T) {
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	admin := ReconstructUser(uuid.New(), "Admin", "admin@example.com", nil, RoleAdmin, nil, now, now)

	changed := admin.Promote(now)
	assert.False(t, changed)
	assert.Equal(t, RoleAdmin, admin.Role())
	assert.Nil(t, admin.MemberSince())
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"user", "member", "admin"} {
		role, err := NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := NewRole("superuser")
	assert.Error(t, err)
}
