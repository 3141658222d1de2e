//go:build unit

package pgconv

import (
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestNullableStringRoundTrip(t *testing.T) {
	assert.False(t, StringPtrToPgtype(nil).Valid)
	assert.Nil(t, StringPtrFromPgtype(pgtype.Text{Valid: false}))

	s := "SAVE15"
	pt := StringPtrToPgtype(&s)
	assert.True(t, pt.Valid)
	got := StringPtrFromPgtype(pt)
	assert.Equal(t, &s, got)
}

func TestNullableTimeRoundTrip(t *testing.T) {
	assert.False(t, TimePtrToPgtype(nil).Valid)
	assert.Nil(t, TimePtrFromPgtype(pgtype.Timestamptz{Valid: false}))

	ts := time.Date(2031, 6, 8, 0, 0, 0, 0, time.UTC)
	pt := TimePtrToPgtype(&ts)
	assert.True(t, pt.Valid)
	got := TimePtrFromPgtype(pt)
	assert.Equal(t, &ts, got)
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, IsNoRows(sql.ErrNoRows))
	assert.True(t, IsNoRows(pgx.ErrNoRows))
	assert.False(t, IsNoRows(assert.AnError))
}
