package request

import (
	"math"
	"time"

	"scms/internal/usecase"

	"github.com/google/uuid"
)

// Money crosses the wire as a decimal amount; internally everything is
// integer minor units. Field presence is validated in the domain layer so
// the error can name the missing field.
type CreateBookingRequest struct {
	CourtID    uuid.UUID `json:"courtId"`
	CourtTitle string    `json:"courtTitle"`
	CourtType  string    `json:"courtType"`
	Date       time.Time `json:"date"`
	Slots      []string  `json:"slots"`
	Price      float64   `json:"price"`
	CouponCode *string   `json:"couponCode"`
}

func (r *CreateBookingRequest) ToInput() usecase.CreateBookingInput {
	return usecase.CreateBookingInput{
		CourtID:    r.CourtID,
		CourtTitle: r.CourtTitle,
		CourtType:  r.CourtType,
		Date:       r.Date,
		Slots:      r.Slots,
		PriceCents: toCents(r.Price),
		CouponCode: r.CouponCode,
	}
}

// Email optionally names whose membership an approval should touch; it
// defaults to the booking's owner when absent.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
	Email  string `json:"email"`
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
