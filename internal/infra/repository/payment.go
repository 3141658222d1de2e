package repository

import (
	"context"

	"scms/internal/domain/payment"
	"scms/internal/infra"
	"scms/internal/usecase/readmodel"
)

type PaymentRepository struct {
	db infra.DBTX
}

func NewPaymentRepository(db infra.DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `id, user_email, booking_id, amount_cents, transaction_id, status, created_at`

// Create relies on the unique index on payments(booking_id) to reject a
// second payment for the same booking; callers map KindDuplicateKey.
func (r *PaymentRepository) Create(ctx context.Context, tx infra.DBTX, p *payment.Payment) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID(), p.UserEmail(), p.BookingID(), p.AmountCents(),
		p.TransactionID(), p.Status(), p.CreatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create payment", err)
	}
	return nil
}

func (r *PaymentRepository) ListByEmail(ctx context.Context, email string) ([]*readmodel.PaymentRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+paymentColumns+`
		FROM payments
		WHERE user_email = $1
		ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	var result []*readmodel.PaymentRM
	for rows.Next() {
		var rm readmodel.PaymentRM
		err := rows.Scan(
			&rm.ID, &rm.UserEmail, &rm.BookingID, &rm.AmountCents,
			&rm.TransactionID, &rm.Status, &rm.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate payment rows", err)
	}
	return result, nil
}
