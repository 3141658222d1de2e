package request

import (
	"time"

	"scms/internal/domain/coupon"
	"scms/internal/usecase"
)

type CreateCouponRequest struct {
	Code           string     `json:"code" binding:"required"`
	DiscountAmount float64    `json:"discountAmount" binding:"required,gt=0"`
	ValidFrom      *time.Time `json:"validFrom"`
	ValidTo        *time.Time `json:"validTo"`
}

func (r *CreateCouponRequest) ToDomain(now time.Time) (*coupon.Coupon, error) {
	return coupon.NewCoupon(r.Code, toCents(r.DiscountAmount), r.ValidFrom, r.ValidTo, now)
}

type UpdateCouponRequest struct {
	Code           *string    `json:"code"`
	DiscountAmount *float64   `json:"discountAmount" binding:"omitempty,gt=0"`
	ValidFrom      *time.Time `json:"validFrom"`
	ValidTo        *time.Time `json:"validTo"`
}

func (r *UpdateCouponRequest) ToPatch() usecase.CouponPatch {
	patch := usecase.CouponPatch{
		Code:      r.Code,
		ValidFrom: r.ValidFrom,
		ValidTo:   r.ValidTo,
	}
	if r.DiscountAmount != nil {
		cents := toCents(*r.DiscountAmount)
		patch.DiscountCents = &cents
	}
	return patch
}

type ValidateCouponRequest struct {
	Code string `json:"code" binding:"required"`
}
