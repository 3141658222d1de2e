package response

import (
	"time"

	"scms/internal/usecase"
	"scms/internal/usecase/readmodel"
)

type CouponResponse struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	DiscountAmount float64 `json:"discountAmount"`
	ValidFrom      *string `json:"validFrom,omitempty"`
	ValidTo        *string `json:"validTo,omitempty"`
	CreatedAt      int64   `json:"createdAt"`
	UpdatedAt      int64   `json:"updatedAt"`
}

func FromCouponRM(rm *readmodel.CouponRM) *CouponResponse {
	return &CouponResponse{
		ID:             rm.ID.String(),
		Code:           rm.Code,
		DiscountAmount: fromCents(rm.DiscountCents),
		ValidFrom:      formatTimePtr(rm.ValidFrom),
		ValidTo:        formatTimePtr(rm.ValidTo),
		CreatedAt:      rm.CreatedAt.Unix(),
		UpdatedAt:      rm.UpdatedAt.Unix(),
	}
}

func FromCouponList(rms []*readmodel.CouponRM) []*CouponResponse {
	res := make([]*CouponResponse, len(rms))
	for i, rm := range rms {
		res[i] = FromCouponRM(rm)
	}
	return res
}

type CouponValidationResponse struct {
	Valid          bool    `json:"valid"`
	DiscountAmount float64 `json:"discountAmount,omitempty"`
}

func FromCouponValidation(v *usecase.CouponValidation) *CouponValidationResponse {
	return &CouponValidationResponse{
		Valid:          v.Valid,
		DiscountAmount: fromCents(v.DiscountCents),
	}
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}
