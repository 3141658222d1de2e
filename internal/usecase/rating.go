package usecase

import (
	"context"
	"errors"

	"scms/internal/domain/rating"
	"scms/internal/infra"
	"scms/internal/pkg/clock"
	"scms/internal/pkg/config"
	"scms/internal/pkg/errs"
	"scms/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var ErrRatingNotFound = errors.New("rating not found")

const (
	defaultPopularLimit = 6
	maxPopularLimit     = 50
)

type CreateRatingInput struct {
	CourtID uuid.UUID
	Score   int
	Comment string
}

type RatingUseCase interface {
	Create(ctx context.Context, input CreateRatingInput, rater string) (*readmodel.RatingRM, error)
	List(ctx context.Context, filter RatingFilter) ([]*readmodel.RatingRM, error)
	Update(ctx context.Context, id uuid.UUID, score int, comment string, principal string) error
	Delete(ctx context.Context, id uuid.UUID, principal string) error
	RankCourts(ctx context.Context, limit int) ([]*readmodel.PopularCourtRM, error)
}

type ratingUseCaseImpl struct {
	ratingRepo   RatingRepository
	clock        clock.Clock
	popularLimit int
}

func NewRatingUseCase(ratingRepo RatingRepository, clock clock.Clock, cfg config.RankingConfig) RatingUseCase {
	limit := cfg.PopularCourtLimit
	if limit <= 0 {
		limit = defaultPopularLimit
	}
	return &ratingUseCaseImpl{ratingRepo: ratingRepo, clock: clock, popularLimit: limit}
}

func (u *ratingUseCaseImpl) Create(ctx context.Context, input CreateRatingInput, rater string) (*readmodel.RatingRM, error) {
	entity, err := rating.NewRating(input.CourtID, rater, input.Score, input.Comment, u.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := u.ratingRepo.Create(ctx, entity); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &readmodel.RatingRM{
		ID:        entity.ID(),
		CourtID:   entity.CourtID(),
		UserEmail: entity.UserEmail(),
		Score:     entity.Score().Value(),
		Comment:   entity.Comment().String(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (u *ratingUseCaseImpl) List(ctx context.Context, filter RatingFilter) ([]*readmodel.RatingRM, error) {
	rms, err := u.ratingRepo.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (u *ratingUseCaseImpl) Update(ctx context.Context, id uuid.UUID, score int, comment string, principal string) error {
	entity, err := u.findOwned(ctx, id, principal)
	if err != nil {
		return err
	}
	if err := entity.Revise(score, comment, u.clock.Now()); err != nil {
		return err
	}
	if err := u.ratingRepo.Save(ctx, entity); err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *ratingUseCaseImpl) Delete(ctx context.Context, id uuid.UUID, principal string) error {
	if _, err := u.findOwned(ctx, id, principal); err != nil {
		return err
	}
	if err := u.ratingRepo.Delete(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrRatingNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *ratingUseCaseImpl) findOwned(ctx context.Context, id uuid.UUID, principal string) (*rating.Rating, error) {
	entity, err := u.ratingRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if !entity.IsOwnedBy(principal) {
		return nil, ErrForbidden
	}
	return entity, nil
}

// RankCourts is a pure read pipeline: group ratings by court, average and
// count, order by (average desc, count desc), join court display attributes.
// Courts with no ratings never appear.
func (u *ratingUseCaseImpl) RankCourts(ctx context.Context, limit int) ([]*readmodel.PopularCourtRM, error) {
	if limit <= 0 {
		limit = u.popularLimit
	}
	if limit > maxPopularLimit {
		limit = maxPopularLimit
	}
	rms, err := u.ratingRepo.RankCourts(ctx, limit)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}
