package repository

import (
	"context"
	"time"

	"scms/internal/domain/rating"
	"scms/internal/infra"
	"scms/internal/pkg/pgconv"
	"scms/internal/usecase"
	"scms/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type RatingRepository struct {
	db infra.DBTX
}

func NewRatingRepository(db infra.DBTX) *RatingRepository {
	return &RatingRepository{db: db}
}

const ratingColumns = `id, court_id, user_email, score, comment, created_at, updated_at`

func (r *RatingRepository) Create(ctx context.Context, rt *rating.Rating) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO ratings (`+ratingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rt.ID(), rt.CourtID(), rt.UserEmail(), rt.Score().Value(),
		rt.Comment().String(), rt.CreatedAt(), rt.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create rating", err)
	}
	return nil
}

func (r *RatingRepository) FindByID(ctx context.Context, id uuid.UUID) (*rating.Rating, error) {
	var (
		rm      readmodel.RatingRM
		created time.Time
		updated time.Time
	)
	err := r.db.QueryRow(ctx, `SELECT `+ratingColumns+` FROM ratings WHERE id = $1`, id).
		Scan(&rm.ID, &rm.CourtID, &rm.UserEmail, &rm.Score, &rm.Comment, &created, &updated)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("rating not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find rating by id", err)
	}

	score, err := rating.NewScore(rm.Score)
	if err != nil {
		return nil, infra.WrapRepoErr("stored score out of range", err)
	}
	comment, err := rating.NewComment(rm.Comment)
	if err != nil {
		return nil, infra.WrapRepoErr("stored comment invalid", err)
	}

	return rating.ReconstructRating(rm.ID, rm.CourtID, rm.UserEmail, score, comment, created, updated), nil
}

func (r *RatingRepository) Save(ctx context.Context, rt *rating.Rating) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE ratings SET score = $2, comment = $3, updated_at = $4
		WHERE id = $1`,
		rt.ID(), rt.Score().Value(), rt.Comment().String(), rt.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save rating", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rating not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RatingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM ratings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete rating", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("rating not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RatingRepository) List(ctx context.Context, filter usecase.RatingFilter) ([]*readmodel.RatingRM, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings`
	var conds []string
	var args []any

	if filter.CourtID != nil {
		args = append(args, *filter.CourtID)
		conds = append(conds, `court_id = $`+itoa(len(args)))
	}
	if filter.Email != "" {
		args = append(args, filter.Email)
		conds = append(conds, `user_email = $`+itoa(len(args)))
	}

	for i, c := range conds {
		if i == 0 {
			query += ` WHERE ` + c
		} else {
			query += ` AND ` + c
		}
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list ratings", err)
	}
	defer rows.Close()

	var result []*readmodel.RatingRM
	for rows.Next() {
		var rm readmodel.RatingRM
		err := rows.Scan(
			&rm.ID, &rm.CourtID, &rm.UserEmail, &rm.Score, &rm.Comment,
			&rm.CreatedAt, &rm.UpdatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan rating row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rating rows", err)
	}
	return result, nil
}

// RankCourts aggregates ratings per court and joins the court's display
// attributes. Courts without ratings never appear. Average score descends,
// then rating count, then the earliest first rating for a stable order.
func (r *RatingRepository) RankCourts(ctx context.Context, limit int) ([]*readmodel.PopularCourtRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT c.id, c.name, c.court_type, c.image, c.location, c.price_cents,
		       agg.avg_score, agg.total
		FROM (
			SELECT court_id,
			       AVG(score)::float8 AS avg_score,
			       COUNT(*)           AS total,
			       MIN(created_at)    AS first_rated
			FROM ratings
			GROUP BY court_id
		) agg
		JOIN courts c ON c.id = agg.court_id
		ORDER BY agg.avg_score DESC, agg.total DESC, agg.first_rated ASC
		LIMIT $1`, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rank courts", err)
	}
	defer rows.Close()

	var result []*readmodel.PopularCourtRM
	for rows.Next() {
		var rm readmodel.PopularCourtRM
		err := rows.Scan(
			&rm.CourtID, &rm.Name, &rm.Type, &rm.Image, &rm.Location,
			&rm.PriceCents, &rm.AverageScore, &rm.TotalRatings,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan popular court row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate popular court rows", err)
	}
	return result, nil
}
