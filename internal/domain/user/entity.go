package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmailRequired = errors.New("email is required")
	ErrNotFound      = errors.New("user not found")
)

type User struct {
	id          uuid.UUID
	name        string
	email       string
	photoURL    *string
	role        Role
	memberSince *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

func NewUser(name, email string, photoURL *string, now time.Time) (*User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrEmailRequired
	}

	return &User{
		id:        uuid.New(),
		name:      name,
		email:     email,
		photoURL:  photoURL,
		role:      RoleUser,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	name, email string,
	photoURL *string,
	role Role,
	memberSince *time.Time,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:          id,
		name:        name,
		email:       email,
		photoURL:    photoURL,
		role:        role,
		memberSince: memberSince,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Promote elevates the user to member. Idempotent on the role field: a user
// who is already a member (or an admin) keeps their role and, critically,
// their original memberSince timestamp. Returns whether anything changed.
func (u *User) Promote(now time.Time) bool {
	if u.role == RoleMember || u.role == RoleAdmin {
		return false
	}
	u.role = RoleMember
	if u.memberSince == nil {
		t := now
		u.memberSince = &t
	}
	u.updatedAt = now
	return true
}

func (u *User) IsAdmin() bool {
	return u.role == RoleAdmin
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) Name() string            { return u.name }
func (u *User) Email() string           { return u.email }
func (u *User) PhotoURL() *string       { return u.photoURL }
func (u *User) Role() Role              { return u.role }
func (u *User) MemberSince() *time.Time { return u.memberSince }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }
