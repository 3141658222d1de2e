package api

import (
	"errors"
	"net/http"
	"strconv"

	"scms/internal/domain/rating"
	reqdto "scms/internal/handler/dto/request"
	resdto "scms/internal/handler/dto/response"
	"scms/internal/handler/httperr"
	"scms/internal/handler/middleware"
	"scms/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RatingHandler struct {
	uc usecase.RatingUseCase
}

func NewRatingHandler(uc usecase.RatingUseCase) *RatingHandler {
	return &RatingHandler{uc: uc}
}

// @Summary Create rating
// @Description Rate a court with a score of 1 to 5 and an optional comment
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRatingRequest true "Create rating request"
// @Success 201 {object} resdto.RatingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /ratings [post]
func (h *RatingHandler) Create(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrForbidden, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	rm, err := h.uc.Create(c.Request.Context(), req.ToInput(), email)
	if err != nil {
		switch {
		case errors.Is(err, rating.ErrInvalidScore):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Score must be between 1 and 5", nil)
		case errors.Is(err, rating.ErrCommentTooLong):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Comment exceeds maximum length", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create rating failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRatingRM(rm))
}

// @Summary List ratings
// @Description List ratings, optionally filtered by court or rater
// @Tags ratings
// @Produce json
// @Param courtId query string false "Filter by court ID"
// @Param email query string false "Filter by rater email"
// @Success 200 {array} resdto.RatingResponse
// @Router /ratings [get]
func (h *RatingHandler) List(c *gin.Context) {
	var filter usecase.RatingFilter
	if v := c.Query("courtId"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid court id", nil)
			return
		}
		filter.CourtID = &id
	}
	filter.Email = c.Query("email")

	rms, err := h.uc.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list ratings", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ratings": resdto.FromRatingList(rms)})
}

// @Summary Update rating
// @Description Revise own rating's score and comment
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Rating ID"
// @Param request body reqdto.UpdateRatingRequest true "Update rating request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /ratings/{id} [patch]
func (h *RatingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrForbidden, "Unauthorized", nil)
		return
	}
	var req reqdto.UpdateRatingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.uc.Update(c.Request.Context(), id, req.Score, req.Comment, email); err != nil {
		switch {
		case errors.Is(err, usecase.ErrRatingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Rating not found", nil)
		case errors.Is(err, usecase.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		case errors.Is(err, rating.ErrInvalidScore):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Score must be between 1 and 5", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update failed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete rating
// @Description Delete own rating
// @Tags ratings
// @Security BearerAuth
// @Param id path string true "Rating ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /ratings/{id} [delete]
func (h *RatingHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrForbidden, "Unauthorized", nil)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id, email); err != nil {
		switch {
		case errors.Is(err, usecase.ErrRatingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Rating not found", nil)
		case errors.Is(err, usecase.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete failed", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Popular courts
// @Description Courts ranked by average rating, then rating count
// @Tags ratings
// @Produce json
// @Param limit query int false "Max courts to return (default 6, max 50)"
// @Success 200 {array} resdto.PopularCourtResponse
// @Router /popular-courts [get]
func (h *RatingHandler) PopularCourts(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			limit = iv
		}
	}
	rms, err := h.uc.RankCourts(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to rank courts", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courts": resdto.FromPopularCourtList(rms)})
}
