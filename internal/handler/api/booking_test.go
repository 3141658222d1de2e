//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"scms/internal/domain/booking"
	"scms/internal/handler/api"
	resdto "scms/internal/handler/dto/response"
	"scms/internal/usecase"
	"scms/internal/usecase/readmodel"
	"scms/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type mockBookingUseCase struct {
	mock.Mock
}

func (m *mockBookingUseCase) Create(ctx context.Context, input usecase.CreateBookingInput, requester string) (*readmodel.BookingRM, error) {
	args := m.Called(ctx, input, requester)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.BookingRM), args.Error(1)
}

func (m *mockBookingUseCase) Get(ctx context.Context, id uuid.UUID, principal string, isAdmin bool) (*readmodel.BookingRM, error) {
	args := m.Called(ctx, id, principal, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readmodel.BookingRM), args.Error(1)
}

func (m *mockBookingUseCase) List(ctx context.Context, filter usecase.BookingFilter, principal string, isAdmin bool) ([]*readmodel.BookingRM, error) {
	args := m.Called(ctx, filter, principal, isAdmin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*readmodel.BookingRM), args.Error(1)
}

func (m *mockBookingUseCase) Transition(ctx context.Context, id uuid.UUID, newStatus string, userEmail string) (*usecase.TransitionResult, error) {
	args := m.Called(ctx, id, newStatus, userEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.TransitionResult), args.Error(1)
}

func (m *mockBookingUseCase) Delete(ctx context.Context, id uuid.UUID, principal string, isAdmin bool) error {
	args := m.Called(ctx, id, principal, isAdmin)
	return args.Error(0)
}

type BookingHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	mockUC  *mockBookingUseCase
	handler *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockUC = new(mockBookingUseCase)
	s.handler = api.NewBookingHandler(s.mockUC)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_email", "player@example.com")
		c.Set("user_role", "user")
		c.Next()
	}
	adminMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_email", "admin@example.com")
		c.Set("user_role", "admin")
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings", authMiddleware, s.handler.List)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/bookings/:id", adminMiddleware, s.handler.UpdateStatus)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.Delete)
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func sampleBookingRM() *readmodel.BookingRM {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &readmodel.BookingRM{
		ID:         uuid.New(),
		UserEmail:  "player@example.com",
		CourtID:    uuid.New(),
		CourtTitle: "Center Court",
		CourtType:  "Tennis",
		Date:       now.AddDate(0, 0, 7),
		Slots:      []string{"9:00 AM - 10:00 AM"},
		PriceCents: 150000,
		Status:     "pending",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func sampleCreateBody() map[string]any {
	return map[string]any{
		"courtId":    uuid.New().String(),
		"courtTitle": "Center Court",
		"courtType":  "Tennis",
		"date":       "2025-06-08T00:00:00Z",
		"slots":      []string{"9:00 AM - 10:00 AM"},
		"price":      1500.0,
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	s.Run("success: returns 201 Created with BookingResponse", func() {
		rm := sampleBookingRM()
		s.mockUC.On("Create", mock.Anything, mock.Anything, "player@example.com").
			Return(rm, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, sampleCreateBody(), "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(rm.ID.String(), response.ID)
		s.Equal("pending", response.Status)
		s.InDelta(1500.0, response.Price, 0.001)
	})

	s.Run("error: 400 with field detail on missing field", func() {
		s.mockUC.On("Create", mock.Anything, mock.Anything, "player@example.com").
			Return(nil, booking.MissingFieldError{Field: "slots"}).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, sampleCreateBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "missing field: slots")

		var body struct {
			Detail struct {
				Field string `json:"field"`
			} `json:"detail"`
		}
		httptest.DecodeResponseBody(s.T(), rec.Body, &body)
		s.Equal("slots", body.Detail.Field)
	})

	s.Run("error: 409 Conflict when the slot is taken", func() {
		s.mockUC.On("Create", mock.Anything, mock.Anything, "player@example.com").
			Return(nil, usecase.ErrBookingConflict).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, sampleCreateBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Time slot already booked")
	})

	s.Run("error: 400 for non-positive price", func() {
		s.mockUC.On("Create", mock.Anything, mock.Anything, "player@example.com").
			Return(nil, booking.ErrInvalidPrice).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, sampleCreateBody(), "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Price must be positive")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, sampleCreateBody(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	rm := sampleBookingRM()
	url := "/bookings/" + rm.ID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		s.mockUC.On("Get", mock.Anything, rm.ID, "player@example.com", false).
			Return(rm, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(rm.ID.String(), response.ID)
		s.Equal("Center Court", response.CourtTitle)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing booking", func() {
		s.mockUC.On("Get", mock.Anything, rm.ID, "player@example.com", false).
			Return(nil, usecase.ErrBookingNotFound).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 Forbidden for another user's booking", func() {
		s.mockUC.On("Get", mock.Anything, rm.ID, "player@example.com", false).
			Return(nil, usecase.ErrForbidden).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	url := "/bookings"

	s.Run("success: returns booking list keyed by bookings", func() {
		rms := []*readmodel.BookingRM{sampleBookingRM(), sampleBookingRM()}
		s.mockUC.On("List", mock.Anything, usecase.BookingFilter{}, "player@example.com", false).
			Return(rms, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		bookings, ok := response["bookings"].([]any)
		s.True(ok)
		s.Len(bookings, 2)
	})

	s.Run("success: query parameters reach the filter", func() {
		expected := usecase.BookingFilter{Email: "other@example.com", Status: "approved", Search: "tennis"}
		s.mockUC.On("List", mock.Anything, expected, "player@example.com", false).
			Return([]*readmodel.BookingRM{}, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			url+"?email=other@example.com&status=approved&search=tennis", nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	rm := sampleBookingRM()
	rm.Status = "approved"
	url := "/bookings/" + rm.ID.String()
	body := map[string]string{"status": "approved"}

	s.Run("success: approval reports the promotion outcome", func() {
		since := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
		result := &usecase.TransitionResult{
			Booking: rm,
			Promotion: &usecase.PromotionOutcome{
				Email:       rm.UserEmail,
				Promoted:    true,
				MemberSince: &since,
			},
		}
		s.mockUC.On("Transition", mock.Anything, rm.ID, "approved", "").
			Return(result, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")

		var response resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("approved", response.Booking.Status)
		s.Require().NotNil(response.Promotion)
		s.True(response.Promotion.Promoted)
		s.Equal(rm.UserEmail, response.Promotion.Email)
	})

	s.Run("success: body email names the promotion target", func() {
		result := &usecase.TransitionResult{Booking: rm}
		s.mockUC.On("Transition", mock.Anything, rm.ID, "approved", "other@example.com").
			Return(result, nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"status": "approved", "email": "other@example.com"}, "bearer-token")

		var response resdto.TransitionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("approved", response.Booking.Status)
	})

	s.Run("error: 400 for unknown status", func() {
		s.mockUC.On("Transition", mock.Anything, rm.ID, "archived", "").
			Return(nil, booking.ErrInvalidStatus).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			map[string]string{"status": "archived"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Unknown status")
	})

	s.Run("error: 422 for illegal transition", func() {
		s.mockUC.On("Transition", mock.Anything, rm.ID, "approved", "").
			Return(nil, booking.ErrInvalidTransition).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Illegal status transition")
	})

	s.Run("error: 500 when the membership side effect fails", func() {
		s.mockUC.On("Transition", mock.Anything, rm.ID, "approved", "").
			Return(nil, usecase.ErrPromotionFailed).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Member promotion failed")
	})

	s.Run("error: 404 for missing booking", func() {
		s.mockUC.On("Transition", mock.Anything, rm.ID, "approved", "").
			Return(nil, usecase.ErrBookingNotFound).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, body, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestDelete() {
	id := uuid.New()
	url := "/bookings/" + id.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockUC.On("Delete", mock.Anything, id, "player@example.com", false).
			Return(nil).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 409 for a confirmed booking", func() {
		s.mockUC.On("Delete", mock.Anything, id, "player@example.com", false).
			Return(usecase.ErrBookingConfirmed).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Confirmed booking cannot be deleted")
	})

	s.Run("error: 404 for missing booking", func() {
		s.mockUC.On("Delete", mock.Anything, id, "player@example.com", false).
			Return(usecase.ErrBookingNotFound).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: generic failures map to 500", func() {
		s.mockUC.On("Delete", mock.Anything, id, "player@example.com", false).
			Return(errors.New("database error")).Once()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Delete failed")
	})
}
