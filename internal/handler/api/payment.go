package api

import (
	"errors"
	"net/http"

	reqdto "scms/internal/handler/dto/request"
	resdto "scms/internal/handler/dto/response"
	"scms/internal/handler/httperr"
	"scms/internal/handler/middleware"
	"scms/internal/pkg/config"
	"scms/internal/usecase"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	uc       usecase.PaymentUseCase
	currency string
}

func NewPaymentHandler(uc usecase.PaymentUseCase, cfg config.StripeConfig) *PaymentHandler {
	return &PaymentHandler{uc: uc, currency: cfg.Currency}
}

// @Summary Create payment intent
// @Description Open a charge with the payment gateway and return its client secret
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreatePaymentIntentRequest true "Charge amount"
// @Success 200 {object} resdto.ChargeIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /create-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req reqdto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	intent, err := h.uc.CreateChargeIntent(c.Request.Context(), req.Price, h.currency)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAmount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Amount must be positive", nil)
		case errors.Is(err, usecase.ErrPaymentGateway):
			httperr.AbortWithError(c, http.StatusBadGateway, err, "Payment gateway failure", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create payment intent", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromChargeIntent(intent))
}

// @Summary Record payment
// @Description Record a completed payment and confirm its booking atomically
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RecordPaymentRequest true "Payment record"
// @Success 201 {object} resdto.PaymentResultResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /payments [post]
func (h *PaymentHandler) Record(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrForbidden, "Unauthorized", nil)
		return
	}
	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.uc.RecordPayment(c.Request.Context(), req.ToInput(), email)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAmount):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Amount must be positive", nil)
		case errors.Is(err, usecase.ErrBookingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, usecase.ErrPaymentExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking already has a payment", nil)
		case errors.Is(err, usecase.ErrNotPayable):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Booking is not in a payable state", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Record payment failed", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPaymentResult(result))
}

// @Summary List payments
// @Description List payments; non-admins only see their own
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param email query string false "Filter by payer email (admin only)"
// @Success 200 {array} resdto.PaymentResponse
// @Failure 401 {object} map[string]string
// @Router /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	email, ok := middleware.GetUserEmail(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, usecase.ErrForbidden, "Unauthorized", nil)
		return
	}
	rms, err := h.uc.ListByEmail(c.Request.Context(), c.Query("email"), email, middleware.IsAdmin(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list payments", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"payments": resdto.FromPaymentList(rms)})
}
