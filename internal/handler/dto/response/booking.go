package response

import (
	"time"

	"scms/internal/usecase"
	"scms/internal/usecase/readmodel"
)

type BookingResponse struct {
	ID         string   `json:"id"`
	UserEmail  string   `json:"userEmail"`
	CourtID    string   `json:"courtId"`
	CourtTitle string   `json:"courtTitle"`
	CourtType  string   `json:"courtType"`
	Date       string   `json:"date"`
	Slots      []string `json:"slots"`
	Price      float64  `json:"price"`
	CouponCode *string  `json:"couponCode,omitempty"`
	Status     string   `json:"status"`
	CreatedAt  int64    `json:"createdAt"`
	UpdatedAt  int64    `json:"updatedAt"`
}

func FromBookingRM(rm *readmodel.BookingRM) *BookingResponse {
	return &BookingResponse{
		ID:         rm.ID.String(),
		UserEmail:  rm.UserEmail,
		CourtID:    rm.CourtID.String(),
		CourtTitle: rm.CourtTitle,
		CourtType:  rm.CourtType,
		Date:       rm.Date.Format(time.RFC3339),
		Slots:      rm.Slots,
		Price:      fromCents(rm.PriceCents),
		CouponCode: rm.CouponCode,
		Status:     rm.Status,
		CreatedAt:  rm.CreatedAt.Unix(),
		UpdatedAt:  rm.UpdatedAt.Unix(),
	}
}

func FromBookingList(rms []*readmodel.BookingRM) []*BookingResponse {
	res := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		res[i] = FromBookingRM(rm)
	}
	return res
}

type PromotionResponse struct {
	Email         string `json:"email"`
	Promoted      bool   `json:"promoted"`
	AlreadyMember bool   `json:"alreadyMember"`
	MemberSince   *int64 `json:"memberSince,omitempty"`
}

// TransitionResponse reports both halves of an approval: the booking's new
// state and what the membership side effect did.
type TransitionResponse struct {
	Booking   *BookingResponse   `json:"booking"`
	Promotion *PromotionResponse `json:"promotion,omitempty"`
}

func FromTransitionResult(r *usecase.TransitionResult) *TransitionResponse {
	resp := &TransitionResponse{Booking: FromBookingRM(r.Booking)}
	if r.Promotion != nil {
		p := &PromotionResponse{
			Email:         r.Promotion.Email,
			Promoted:      r.Promotion.Promoted,
			AlreadyMember: r.Promotion.AlreadyMember,
		}
		if r.Promotion.MemberSince != nil {
			since := r.Promotion.MemberSince.Unix()
			p.MemberSince = &since
		}
		resp.Promotion = p
	}
	return resp
}

func fromCents(cents int64) float64 {
	return float64(cents) / 100
}
