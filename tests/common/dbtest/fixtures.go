//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, "Test User", email, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestCourt(t *testing.T, db DBLike, name, courtType string, priceCents int64, slots []string) uuid.UUID {
	t.Helper()

	courtID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO courts (id, name, court_type, price_cents, slots) VALUES ($1, $2, $3, $4, $5)",
		courtID, name, courtType, priceCents, slots)
	require.NoError(t, err)

	return courtID
}

func CreateTestCoupon(t *testing.T, db DBLike, code string, discountCents int64) uuid.UUID {
	t.Helper()

	couponID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO coupons (id, code, discount_cents) VALUES ($1, $2, $3) ON CONFLICT (code) DO NOTHING",
		couponID, code, discountCents)
	require.NoError(t, err)

	return couponID
}

// CreateTestRating inserts a rating with an explicit created_at so ranking
// tie-breaks are deterministic.
func CreateTestRating(t *testing.T, db DBLike, courtID uuid.UUID, email string, score int, ratedAt time.Time) uuid.UUID {
	t.Helper()

	ratingID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO ratings (id, court_id, user_email, score, comment, created_at, updated_at) VALUES ($1, $2, $3, $4, '', $5, $5)",
		ratingID, courtID, email, score, ratedAt)
	require.NoError(t, err)

	return ratingID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
