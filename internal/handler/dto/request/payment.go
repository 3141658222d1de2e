package request

import (
	"scms/internal/usecase"

	"github.com/google/uuid"
)

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

type RecordPaymentRequest struct {
	BookingID     uuid.UUID `json:"bookingId" binding:"required"`
	Amount        float64   `json:"amount" binding:"required,gt=0"`
	TransactionID string    `json:"transactionId"`
}

func (r *RecordPaymentRequest) ToInput() usecase.RecordPaymentInput {
	return usecase.RecordPaymentInput{
		BookingID:     r.BookingID,
		AmountCents:   toCents(r.Amount),
		TransactionID: r.TransactionID,
	}
}
