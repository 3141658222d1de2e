package api

import (
	"errors"
	"net/http"

	"scms/internal/domain/booking"
	reqdto "scms/internal/handler/dto/request"
	resdto "scms/internal/handler/dto/response"
	"scms/internal/handler/httperr"
	"scms/internal/handler/middleware"
	"scms/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	uc usecase.BookingUseCase
}

func NewBookingHandler(uc usecase.BookingUseCase) *BookingHandler {
	return &BookingHandler{uc: uc}
}

// @Summary Create booking
// @Description Request a court booking; it starts in the pending state
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrForbidden, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rm, err := h.uc.Create(c.Request.Context(), req.ToInput(), email)
	if err != nil {
		var missing booking.MissingFieldError
		switch {
		case errors.As(err, &missing):
			httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), gin.H{"field": missing.Field})
		case errors.Is(err, booking.ErrInvalidPrice):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Price must be positive", nil)
		case errors.Is(err, usecase.ErrBookingConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Time slot already booked", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create booking failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingRM(rm))
}

// @Summary Get booking
// @Description Get a booking by ID (own bookings only, admins see all)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	email, _ := middleware.GetUserEmail(c)
	rm, err := h.uc.Get(c.Request.Context(), id, email, middleware.IsAdmin(c))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, usecase.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load booking", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingRM(rm))
}

// @Summary List bookings
// @Description List bookings; non-admins only see their own
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param email query string false "Filter by user email (admin only)"
// @Param status query string false "Filter by status"
// @Param search query string false "Search by court title"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) List(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrForbidden, "Unauthorized", nil)
		return
	}
	filter := usecase.BookingFilter{
		Email:  c.Query("email"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	rms, err := h.uc.List(c.Request.Context(), filter, email, middleware.IsAdmin(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list bookings", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": resdto.FromBookingList(rms)})
}

// @Summary Update booking status
// @Description Move a booking through its lifecycle; approval also promotes the booking's owner to member
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 200 {object} resdto.TransitionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings/{id} [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	email := req.Email
	if email == "" {
		email = c.Query("userEmail")
	}
	result, err := h.uc.Transition(c.Request.Context(), id, req.Status, email)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, booking.ErrInvalidStatus):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown status", nil)
		case errors.Is(err, booking.ErrInvalidTransition):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Illegal status transition", nil)
		case errors.Is(err, usecase.ErrPromotionFailed):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Member promotion failed", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update failed", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromTransitionResult(result))
}

// @Summary Delete booking
// @Description Delete a booking; confirmed bookings cannot be deleted
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	email, _ := middleware.GetUserEmail(c)
	if err := h.uc.Delete(c.Request.Context(), id, email, middleware.IsAdmin(c)); err != nil {
		switch {
		case errors.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, usecase.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, usecase.ErrBookingConfirmed):
			httperr.AbortWithError(c, http.StatusConflict, err, "Confirmed booking cannot be deleted", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete failed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}
