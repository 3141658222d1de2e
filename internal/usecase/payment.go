package usecase

import (
	"context"
	"errors"
	"math"

	"scms/internal/domain/booking"
	"scms/internal/domain/payment"
	"scms/internal/infra"
	"scms/internal/pkg/clock"
	"scms/internal/pkg/errs"
	"scms/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount  = errors.New("amount must be positive")
	ErrPaymentExists  = errors.New("booking already has a payment")
	ErrPaymentGateway = errors.New("payment gateway failure")
	ErrNotPayable     = errors.New("booking is not in a payable state")
)

type RecordPaymentInput struct {
	BookingID     uuid.UUID
	AmountCents   int64
	TransactionID string
}

// PaymentResult reports both halves of the reconciliation dual-write: the
// inserted payment and the booking it confirmed.
type PaymentResult struct {
	Payment *readmodel.PaymentRM `json:"payment"`
	Booking *readmodel.BookingRM `json:"booking"`
}

type PaymentUseCase interface {
	CreateChargeIntent(ctx context.Context, price float64, currency string) (*ChargeIntent, error)
	RecordPayment(ctx context.Context, input RecordPaymentInput, payer string) (*PaymentResult, error)
	ListByEmail(ctx context.Context, email, principal string, isAdmin bool) ([]*readmodel.PaymentRM, error)
}

type paymentUseCaseImpl struct {
	paymentRepo PaymentRepository
	bookingRepo BookingRepository
	gateway     PaymentGateway
	uow         UnitOfWork
	clock       clock.Clock
}

func NewPaymentUseCase(
	paymentRepo PaymentRepository,
	bookingRepo BookingRepository,
	gateway PaymentGateway,
	uow UnitOfWork,
	clock clock.Clock,
) PaymentUseCase {
	return &paymentUseCaseImpl{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		gateway:     gateway,
		uow:         uow,
		clock:       clock,
	}
}

func (u *paymentUseCaseImpl) CreateChargeIntent(ctx context.Context, price float64, currency string) (*ChargeIntent, error) {
	if price <= 0 {
		return nil, ErrInvalidAmount
	}

	// The gateway bills in minor units (e.g. taka to poisha).
	amount := int64(math.Round(price * 100))

	intent, err := u.gateway.CreateChargeIntent(ctx, amount, currency)
	if err != nil {
		return nil, errs.Mark(err, ErrPaymentGateway)
	}
	return intent, nil
}

func (u *paymentUseCaseImpl) RecordPayment(ctx context.Context, input RecordPaymentInput, payer string) (*PaymentResult, error) {
	entity, err := payment.NewPayment(payer, input.BookingID, input.AmountCents, input.TransactionID, u.clock.Now())
	if err != nil {
		if errors.Is(err, payment.ErrInvalidAmount) {
			return nil, ErrInvalidAmount
		}
		return nil, err
	}

	now := u.clock.Now()

	// Payment insert and booking confirmation are one atomic unit: the
	// system never holds a paid payment against a non-confirmed booking.
	err = u.uow.Within(ctx, func(ctx context.Context, tx infra.DBTX) error {
		bookingEntity, err := u.bookingRepo.FindByIDForUpdate(ctx, tx, input.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := u.paymentRepo.Create(ctx, tx, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrPaymentExists
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := bookingEntity.TransitionTo(booking.StatusConfirmed, now); err != nil {
			return errs.Mark(err, ErrNotPayable)
		}
		if err := u.bookingRepo.UpdateStatus(ctx, tx, bookingEntity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	bookingRM, err := u.bookingRepo.FindByID(ctx, input.BookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &PaymentResult{
		Payment: &readmodel.PaymentRM{
			ID:            entity.ID(),
			UserEmail:     entity.UserEmail(),
			BookingID:     entity.BookingID(),
			AmountCents:   entity.AmountCents(),
			TransactionID: entity.TransactionID(),
			Status:        entity.Status(),
			CreatedAt:     entity.CreatedAt(),
		},
		Booking: bookingRM,
	}, nil
}

func (u *paymentUseCaseImpl) ListByEmail(ctx context.Context, email, principal string, isAdmin bool) ([]*readmodel.PaymentRM, error) {
	if !isAdmin {
		email = principal
	}
	if email == "" {
		email = principal
	}
	rms, err := u.paymentRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}
