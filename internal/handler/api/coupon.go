package api

import (
	"errors"
	"net/http"

	reqdto "scms/internal/handler/dto/request"
	resdto "scms/internal/handler/dto/response"
	"scms/internal/handler/httperr"
	"scms/internal/pkg/clock"
	"scms/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	uc    usecase.CouponUseCase
	clock clock.Clock
}

func NewCouponHandler(uc usecase.CouponUseCase, clock clock.Clock) *CouponHandler {
	return &CouponHandler{uc: uc, clock: clock}
}

// @Summary Validate coupon
// @Description Check a coupon code; an unknown or expired code is a valid=false response, not an error
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.ValidateCouponRequest true "Coupon code"
// @Success 200 {object} resdto.CouponValidationResponse
// @Failure 400 {object} map[string]string
// @Router /validate-coupon [post]
func (h *CouponHandler) Validate(c *gin.Context) {
	var req reqdto.ValidateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.uc.Validate(c.Request.Context(), req.Code)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Validate coupon failed", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponValidation(result))
}

// @Summary Create coupon
// @Description Create a new coupon (admin only)
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Create coupon request"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
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
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Create coupon failed", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCouponRM(rm))
}

// @Summary List coupons
// @Description List all coupons (admin only)
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CouponResponse
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	rms, err := h.uc.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list coupons", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupons": resdto.FromCouponList(rms)})
}

// @Summary Update coupon
// @Description Update a coupon (admin only)
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Param request body reqdto.UpdateCouponRequest true "Update coupon request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [patch]
func (h *CouponHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateCouponRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	if err := h.uc.Update(c.Request.Context(), id, req.ToPatch()); err != nil {
		if errors.Is(err, usecase.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Update failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete coupon
// @Description Delete a coupon (admin only)
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.uc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrCouponNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Coupon not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Delete failed", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
