package usecase

import (
	"context"
	"errors"

	"scms/internal/domain/user"
	"scms/internal/infra"
	"scms/internal/pkg/clock"
	"scms/internal/pkg/errs"
	"scms/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

type UpsertUserInput struct {
	Name     string
	Email    string
	PhotoURL *string
}

type UpsertUserResult struct {
	User    *readmodel.UserRM `json:"user"`
	Created bool              `json:"created"`
}

type UserUseCase interface {
	Upsert(ctx context.Context, input UpsertUserInput) (*UpsertUserResult, error)
	GetRole(ctx context.Context, email string) (string, error)
	ListMembers(ctx context.Context, search string) ([]*readmodel.UserRM, error)
	DeleteMember(ctx context.Context, id uuid.UUID) error
	AdminStats(ctx context.Context) (*readmodel.AdminStatsRM, error)
}

type userUseCaseImpl struct {
	userRepo  UserRepository
	courtRepo CourtRepository
	clock     clock.Clock
}

func NewUserUseCase(userRepo UserRepository, courtRepo CourtRepository, clock clock.Clock) UserUseCase {
	return &userUseCaseImpl{
		userRepo:  userRepo,
		courtRepo: courtRepo,
		clock:     clock,
	}
}

// Upsert registers a user on first sign-in. A duplicate email is a no-op
// success, not an error.
func (u *userUseCaseImpl) Upsert(ctx context.Context, input UpsertUserInput) (*UpsertUserResult, error) {
	entity, err := user.NewUser(input.Name, input.Email, input.PhotoURL, u.clock.Now())
	if err != nil {
		return nil, err
	}

	created, err := u.userRepo.Upsert(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	rm, err := u.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &UpsertUserResult{User: rm, Created: created}, nil
}

func (u *userUseCaseImpl) GetRole(ctx context.Context, email string) (string, error) {
	rm, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", ErrUserNotFound
		}
		return "", errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if rm.Role == "" {
		return user.RoleUser.String(), nil
	}
	return rm.Role, nil
}

func (u *userUseCaseImpl) ListMembers(ctx context.Context, search string) ([]*readmodel.UserRM, error) {
	rms, err := u.userRepo.ListMembers(ctx, search)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *userUseCaseImpl) DeleteMember(ctx context.Context, id uuid.UUID) error {
	if err := u.userRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrUserNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *userUseCaseImpl) AdminStats(ctx context.Context) (*readmodel.AdminStatsRM, error) {
	totalUsers, totalMembers, err := u.userRepo.Counts(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	totalCourts, err := u.courtRepo.Count(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &readmodel.AdminStatsRM{
		TotalCourts:  totalCourts,
		TotalUsers:   totalUsers,
		TotalMembers: totalMembers,
	}, nil
}
