package request

import (
	"time"

	"scms/internal/domain/court"
	"scms/internal/usecase"
)

type CreateCourtRequest struct {
	Name     string   `json:"name" binding:"required"`
	Type     string   `json:"type" binding:"required"`
	Image    string   `json:"image"`
	Location string   `json:"location"`
	Price    float64  `json:"price" binding:"required,gt=0"`
	Slots    []string `json:"slots"`
}

func (r *CreateCourtRequest) ToDomain(now time.Time) (*court.Court, error) {
	return court.NewCourt(r.Name, r.Type, r.Image, r.Location, toCents(r.Price), r.Slots, now)
}

type UpdateCourtRequest struct {
	Name     *string  `json:"name"`
	Type     *string  `json:"type"`
	Image    *string  `json:"image"`
	Location *string  `json:"location"`
	Price    *float64 `json:"price" binding:"omitempty,gt=0"`
	Slots    []string `json:"slots"`
}

func (r *UpdateCourtRequest) ToPatch() usecase.CourtPatch {
	patch := usecase.CourtPatch{
		Name:     r.Name,
		Type:     r.Type,
		Image:    r.Image,
		Location: r.Location,
		Slots:    r.Slots,
	}
	if r.Price != nil {
		cents := toCents(*r.Price)
		patch.PriceCents = &cents
	}
	return patch
}
