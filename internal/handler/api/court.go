package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "scms/internal/handler/dto/request"
	resdto "scms/internal/handler/dto/response"
	"scms/internal/handler/httperr"
	"scms/internal/pkg/clock"
	"scms/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CourtHandler struct {
	uc    usecase.CourtUseCase
	clock clock.Clock
}

func NewCourtHandler(uc usecase.CourtUseCase, clock clock.Clock) *CourtHandler {
	return &CourtHandler{uc: uc, clock: clock}
}

// @Summary Create court
// @Description Add a court to the catalogue (admin only)
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCourtRequest true "Create court request"
// @Success 201 {object} resdto.CourtResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /courts [post]
func (h *CourtHandler) Create(c *gin.Context) {
	var req reqdto.CreateCourtRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	entity, err := req.ToDomain(h.clock.Now())
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
		return
	}
	rm, err := h.uc.Create(c.Request.Context(), entity)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create court failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCourtRM(rm))
}

// @Summary List courts
// @Description Browse the court catalogue with search, type and slot-period filters, price sorting and pagination
// @Tags courts
// @Produce json
// @Param search query string false "Search by name"
// @Param type query string false "Filter by court type"
// @Param slotPeriod query string false "Morning, Afternoon or Evening"
// @Param sort query string false "LowToHigh or HighToLow by price"
// @Param page query int false "Zero-based page number"
// @Param size query int false "Page size (default 10)"
// @Success 200 {array} resdto.CourtResponse
// @Router /courts [get]
func (h *CourtHandler) List(c *gin.Context) {
	filter := usecase.CourtFilter{
		Search:     c.Query("search"),
		Type:       c.Query("type"),
		SlotPeriod: c.Query("slotPeriod"),
		Sort:       c.Query("sort"),
	}
	if v := c.Query("page"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			filter.Page = iv
		}
	}
	if v := c.Query("size"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			filter.Size = iv
		}
	}
	rms, err := h.uc.List(c.Request.Context(), filter)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list courts", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"courts": resdto.FromCourtList(rms)})
}

// @Summary Count courts
// @Description Total number of courts in the catalogue
// @Tags courts
// @Produce json
// @Success 200 {object} resdto.CourtCountResponse
// @Router /courtsCount [get]
func (h *CourtHandler) Count(c *gin.Context) {
	count, err := h.uc.Count(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to count courts", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.CourtCountResponse{Count: count})
}

// @Summary Update court
// @Description Update a court (admin only)
// @Tags courts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Param request body reqdto.UpdateCourtRequest true "Update court request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id} [patch]
func (h *CourtHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateCourtRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.uc.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		if errors.Is(err, usecase.ErrCourtNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Court not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete court
// @Description Remove a court from the catalogue (admin only)
// @Tags courts
// @Security BearerAuth
// @Param id path string true "Court ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /courts/{id} [delete]
func (h *CourtHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrCourtNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Court not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
