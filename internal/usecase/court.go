package usecase

import (
	"context"
	"errors"

	"scms/internal/domain/court"
	"scms/internal/infra"
	"scms/internal/pkg/errs"
	"scms/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrCourtNotFound = errors.New("court not found")

const (
	defaultCourtPageSize = 10
	maxCourtPageSize     = 100
)

type CourtUseCase interface {
	Create(ctx context.Context, c *court.Court) (*readmodel.CourtRM, error)
	Get(ctx context.Context, id uuid.UUID) (*readmodel.CourtRM, error)
	List(ctx context.Context, filter CourtFilter) ([]*readmodel.CourtRM, error)
	Update(ctx context.Context, id uuid.UUID, patch CourtPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type courtUseCaseImpl struct {
	courtRepo CourtRepository
}

func NewCourtUseCase(courtRepo CourtRepository) CourtUseCase {
	return &courtUseCaseImpl{courtRepo: courtRepo}
}

func (u *courtUseCaseImpl) Create(ctx context.Context, c *court.Court) (*readmodel.CourtRM, error) {
	if err := u.courtRepo.Create(ctx, c); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return u.courtRepo.FindByID(ctx, c.ID())
}

func (u *courtUseCaseImpl) Get(ctx context.Context, id uuid.UUID) (*readmodel.CourtRM, error) {
	rm, err := u.courtRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (u *courtUseCaseImpl) List(ctx context.Context, filter CourtFilter) ([]*readmodel.CourtRM, error) {
	if filter.Size <= 0 {
		filter.Size = defaultCourtPageSize
	}
	if filter.Size > maxCourtPageSize {
		filter.Size = maxCourtPageSize
	}
	if filter.Page < 0 {
		filter.Page = 0
	}
	rms, err := u.courtRepo.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *courtUseCaseImpl) Update(ctx context.Context, id uuid.UUID, patch CourtPatch) error {
	if err := u.courtRepo.Update(ctx, id, patch); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCourtNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *courtUseCaseImpl) Delete(ctx context.Context, id uuid.UUID) error {
	if err := u.courtRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCourtNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *courtUseCaseImpl) Count(ctx context.Context) (int64, error) {
	return u.courtRepo.Count(ctx)
}
