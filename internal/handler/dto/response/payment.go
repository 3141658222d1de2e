package response

import (
	"scms/internal/usecase"
	"scms/internal/usecase/readmodel"
)

type PaymentResponse struct {
	ID            string  `json:"id"`
	UserEmail     string  `json:"userEmail"`
	BookingID     string  `json:"bookingId"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transactionId"`
	Status        string  `json:"status"`
	CreatedAt     int64   `json:"createdAt"`
}

func FromPaymentRM(rm *readmodel.PaymentRM) *PaymentResponse {
	return &PaymentResponse{
		ID:            rm.ID.String(),
		UserEmail:     rm.UserEmail,
		BookingID:     rm.BookingID.String(),
		Amount:        fromCents(rm.AmountCents),
		TransactionID: rm.TransactionID,
		Status:        rm.Status,
		CreatedAt:     rm.CreatedAt.Unix(),
	}
}

func FromPaymentList(rms []*readmodel.PaymentRM) []*PaymentResponse {
	res := make([]*PaymentResponse, len(rms))
	for i, rm := range rms {
		res[i] = FromPaymentRM(rm)
	}
	return res
}

// PaymentResultResponse carries the payment and the booking it confirmed.
type PaymentResultResponse struct {
	Payment *PaymentResponse `json:"payment"`
	Booking *BookingResponse `json:"booking"`
}

func FromPaymentResult(r *usecase.PaymentResult) *PaymentResultResponse {
	return &PaymentResultResponse{
		Payment: FromPaymentRM(r.Payment),
		Booking: FromBookingRM(r.Booking),
	}
}

type ChargeIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

func FromChargeIntent(i *usecase.ChargeIntent) *ChargeIntentResponse {
	return &ChargeIntentResponse{
		ID:           i.ID,
		ClientSecret: i.ClientSecret,
		Amount:       i.Amount,
		Currency:     i.Currency,
	}
}
