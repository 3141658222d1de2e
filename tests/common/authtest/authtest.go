//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"scms/internal/pkg/config"
	"scms/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

// TokenFor mints an access token for email using the suite's JWT settings,
// the same way sign-in does. The role is never in the token; it is read from
// the store on each request.
func TokenFor(t *testing.T, cfg config.Config, email string) string {
	t.Helper()

	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err, "invalid JWT duration in test config")

	token, err := jwt.NewService(cfg.JWT.Secret, duration).GenerateToken(email)
	require.NoError(t, err, "failed to mint test token")
	return token
}
