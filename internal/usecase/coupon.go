package usecase

import (
	"context"
	"errors"

	"scms/internal/domain/coupon"
	"scms/internal/infra"
	"scms/internal/pkg/clock"
	"scms/internal/pkg/errs"
	"scms/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrCouponNotFound = errors.New("coupon not found")

// CouponValidation is the validate-coupon contract: absence is a normal
// outcome, not an error.
type CouponValidation struct {
	Valid         bool  `json:"valid"`
	DiscountCents int64 `json:"discountAmount,omitempty"`
}

type CreateCouponInput struct {
	Code          string
	DiscountCents int64
	ValidFrom     *string
	ValidTo       *string
}

type CouponUseCase interface {
	Validate(ctx context.Context, code string) (*CouponValidation, error)
	Create(ctx context.Context, c *coupon.Coupon) (*readmodel.CouponRM, error)
	List(ctx context.Context) ([]*readmodel.CouponRM, error)
	Update(ctx context.Context, id uuid.UUID, patch CouponPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type couponUseCaseImpl struct {
	couponRepo CouponRepository
	clock      clock.Clock
}

func NewCouponUseCase(couponRepo CouponRepository, clock clock.Clock) CouponUseCase {
	return &couponUseCaseImpl{couponRepo: couponRepo, clock: clock}
}

// Validate is an exact, case-sensitive lookup.
func (u *couponUseCaseImpl) Validate(ctx context.Context, code string) (*CouponValidation, error) {
	rm, err := u.couponRepo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &CouponValidation{Valid: false}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	entity := coupon.ReconstructCoupon(rm.ID, rm.Code, rm.DiscountCents, rm.ValidFrom, rm.ValidTo, rm.CreatedAt, rm.UpdatedAt)
	if err := entity.ValidateUsage(u.clock.Now()); err != nil {
		return &CouponValidation{Valid: false}, nil
	}

	return &CouponValidation{Valid: true, DiscountCents: rm.DiscountCents}, nil
}

func (u *couponUseCaseImpl) Create(ctx context.Context, c *coupon.Coupon) (*readmodel.CouponRM, error) {
	if err := u.couponRepo.Create(ctx, c); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u.couponRepo.FindByCode(ctx, c.Code())
}

func (u *couponUseCaseImpl) List(ctx context.Context) ([]*readmodel.CouponRM, error) {
	rms, err := u.couponRepo.List(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *couponUseCaseImpl) Update(ctx context.Context, id uuid.UUID, patch CouponPatch) error {
	if err := u.couponRepo.Update(ctx, id, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *couponUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.couponRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
