//go:build e2e

package rating_test

import (
	"net/http"
	"testing"
	"time"

	"scms/internal/handler/dto/response"
	"scms/tests/common/dbtest"
	"scms/tests/common/httptest"
	"scms/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const popularCourtsURL = "/popular-courts"

type popularCourtsBody struct {
	Courts []response.PopularCourtResponse `json:"courts"`
}

type RatingSuite struct {
	e2e.SharedSuite
}

func (s *RatingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestRatingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RatingSuite))
}

// Three courts: Alpha averages 4.0 over two ratings, Bravo also averages 4.0
// over two but rated later, Charlie trails with a single 1.
func (s *RatingSuite) seedRatedCourts(t *testing.T) (alpha, bravo, charlie uuid.UUID) {
	alpha = dbtest.CreateTestCourt(t, s.DB, "Alpha Court", "Tennis", 150000, []string{"9:00 AM - 10:00 AM"})
	bravo = dbtest.CreateTestCourt(t, s.DB, "Bravo Court", "Tennis", 150000, []string{"9:00 AM - 10:00 AM"})
	charlie = dbtest.CreateTestCourt(t, s.DB, "Charlie Court", "Tennis", 150000, []string{"9:00 AM - 10:00 AM"})

	base := time.Date(2031, 1, 1, 12, 0, 0, 0, time.UTC)
	dbtest.CreateTestRating(t, s.DB, alpha, "one@example.com", 5, base)
	dbtest.CreateTestRating(t, s.DB, alpha, "two@example.com", 3, base.Add(1*time.Hour))
	dbtest.CreateTestRating(t, s.DB, bravo, "one@example.com", 4, base.Add(2*time.Hour))
	dbtest.CreateTestRating(t, s.DB, bravo, "two@example.com", 4, base.Add(3*time.Hour))
	dbtest.CreateTestRating(t, s.DB, charlie, "one@example.com", 1, base.Add(4*time.Hour))
	return alpha, bravo, charlie
}

func (s *RatingSuite) TestPopularCourts() {
	s.Run("ranks by average then breaks ties by earliest rating", func() {
		t := s.T()
		s.seedRatedCourts(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, popularCourtsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body popularCourtsBody
		httptest.DecodeResponseBody(t, w.Body, &body)
		require.Len(t, body.Courts, 3)
		require.Equal(t, "Alpha Court", body.Courts[0].Name)
		require.Equal(t, "Bravo Court", body.Courts[1].Name)
		require.Equal(t, "Charlie Court", body.Courts[2].Name)

		require.InDelta(t, 4.0, body.Courts[0].AverageRating, 0.001)
		require.Equal(t, int64(2), body.Courts[0].TotalRatings)
		require.InDelta(t, 1.0, body.Courts[2].AverageRating, 0.001)
	})

	s.Run("limit truncates the ranking", func() {
		t := s.T()
		s.seedRatedCourts(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, popularCourtsURL+"?limit=2", nil, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var body popularCourtsBody
		httptest.DecodeResponseBody(t, w.Body, &body)
		require.Len(t, body.Courts, 2)
		require.Equal(t, "Alpha Court", body.Courts[0].Name)
		require.Equal(t, "Bravo Court", body.Courts[1].Name)
	})

	s.Run("no ratings means an empty ranking", func() {
		t := s.T()
		dbtest.CreateTestCourt(t, s.DB, "Unrated Court", "Tennis", 150000, []string{"9:00 AM - 10:00 AM"})

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, popularCourtsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var body popularCourtsBody
		httptest.DecodeResponseBody(t, w.Body, &body)
		require.Empty(t, body.Courts)
	})
}
