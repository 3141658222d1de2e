package usecase

import (
	"context"
	"errors"
	"time"

	"scms/internal/domain/booking"
	"scms/internal/infra"
	"scms/internal/pkg/clock"
	"scms/internal/pkg/errs"
	"scms/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrBookingConflict  = errors.New("time slot already booked")
	ErrBookingConfirmed = errors.New("confirmed booking cannot be deleted")
	ErrForbidden        = errors.New("forbidden")

	// Error markers for categorization
	ErrPromotionFailed         = errors.New("member promotion failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

type CreateBookingInput struct {
	CourtID    uuid.UUID
	CourtTitle string
	CourtType  string
	Date       time.Time
	Slots      []string
	PriceCents int64
	CouponCode *string
}

// PromotionOutcome reports what the membership side effect of an approval
// actually did, so callers can tell a fresh promotion from a no-op.
type PromotionOutcome struct {
	Email         string     `json:"email"`
	Promoted      bool       `json:"promoted"`
	AlreadyMember bool       `json:"alreadyMember"`
	MemberSince   *time.Time `json:"memberSince,omitempty"`
}

// TransitionResult carries both halves of the approval dual-write. The two
// updates commit atomically; the split result exists so clients can observe
// each outcome separately.
type TransitionResult struct {
	Booking   *readmodel.BookingRM `json:"booking"`
	Promotion *PromotionOutcome    `json:"promotion,omitempty"`
}

type BookingUseCase interface {
	Create(ctx context.Context, input CreateBookingInput, requester string) (*readmodel.BookingRM, error)
	Get(ctx context.Context, id uuid.UUID, principal string, isAdmin bool) (*readmodel.BookingRM, error)
	List(ctx context.Context, filter BookingFilter, principal string, isAdmin bool) ([]*readmodel.BookingRM, error)
	Transition(ctx context.Context, id uuid.UUID, newStatus string, userEmail string) (*TransitionResult, error)
	Delete(ctx context.Context, id uuid.UUID, principal string, isAdmin bool) error
}

type bookingUseCaseImpl struct {
	bookingRepo BookingRepository
	userRepo    UserRepository
	uow         UnitOfWork
	clock       clock.Clock
}

func NewBookingUseCase(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	uow UnitOfWork,
	clock clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		uow:         uow,
		clock:       clock,
	}
}

func (u *bookingUseCaseImpl) Create(ctx context.Context, input CreateBookingInput, requester string) (*readmodel.BookingRM, error) {
	entity, err := booking.NewBooking(
		requester,
		input.CourtID,
		input.CourtTitle,
		input.CourtType,
		input.Date,
		input.Slots,
		input.PriceCents,
		input.CouponCode,
		u.clock.Now(),
	)
	if err != nil {
		return nil, err
	}

	// The EXISTS check rejects a taken slot before the insert. Two requests
	// racing past it both reach the insert, where the unique slot index
	// fails the loser with a duplicate kind.
	err = u.uow.Within(ctx, func(ctx context.Context, tx infra.DBTX) error {
		taken, err := u.bookingRepo.HasSlotConflict(ctx, tx, entity.CourtID(), entity.Date(), entity.Slots())
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if taken {
			return ErrBookingConflict
		}
		if err := u.bookingRepo.Create(ctx, tx, entity); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrBookingConflict
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return u.bookingRepo.FindByID(ctx, entity.ID())
}

func (u *bookingUseCaseImpl) Get(ctx context.Context, id uuid.UUID, principal string, isAdmin bool) (*readmodel.BookingRM, error) {
	rm, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !isAdmin && rm.UserEmail != principal {
		return nil, ErrForbidden
	}
	return rm, nil
}

func (u *bookingUseCaseImpl) List(ctx context.Context, filter BookingFilter, principal string, isAdmin bool) ([]*readmodel.BookingRM, error) {
	// Non-admin callers only ever see their own bookings.
	if !isAdmin {
		filter.Email = principal
	}
	rms, err := u.bookingRepo.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *bookingUseCaseImpl) Transition(ctx context.Context, id uuid.UUID, newStatus string, userEmail string) (*TransitionResult, error) {
	status, err := booking.NewStatus(newStatus)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	result := &TransitionResult{}

	err = u.uow.Within(ctx, func(ctx context.Context, tx infra.DBTX) error {
		entity, err := u.bookingRepo.FindByIDForUpdate(ctx, tx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := entity.TransitionTo(status, now); err != nil {
			return err
		}
		if err := u.bookingRepo.UpdateStatus(ctx, tx, entity); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if status == booking.StatusApproved {
			email := userEmail
			if email == "" {
				email = entity.UserEmail()
			}
			outcome, err := u.promote(ctx, tx, email, now)
			if err != nil {
				// Roll the booking update back rather than leave an
				// approved booking next to an unpromoted user.
				return errs.Mark(err, ErrPromotionFailed)
			}
			result.Promotion = outcome
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	rm, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	result.Booking = rm
	return result, nil
}

func (u *bookingUseCaseImpl) promote(ctx context.Context, tx infra.DBTX, email string, now time.Time) (*PromotionOutcome, error) {
	userEntity, err := u.userRepo.FindByEmailForUpdate(ctx, tx, email)
	if err != nil {
		return nil, err
	}

	changed := userEntity.Promote(now)
	if changed {
		if err := u.userRepo.SaveMembership(ctx, tx, userEntity); err != nil {
			return nil, err
		}
	}

	return &PromotionOutcome{
		Email:         email,
		Promoted:      changed,
		AlreadyMember: !changed,
		MemberSince:   userEntity.MemberSince(),
	}, nil
}

func (u *bookingUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, principal string, isAdmin bool) error {
	rm, err := u.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !isAdmin && rm.UserEmail != principal {
		return ErrForbidden
	}
	if booking.Status(rm.Status) == booking.StatusConfirmed {
		return ErrBookingConfirmed
	}

	if err := u.bookingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrBookingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
