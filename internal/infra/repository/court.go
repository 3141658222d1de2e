package repository

import (
	"context"

	"scms/internal/domain/court"
	"scms/internal/infra"
	"scms/internal/pkg/pgconv"
	"scms/internal/usecase"
	"scms/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CourtRepository struct {
	db infra.DBTX
}

func NewCourtRepository(db infra.DBTX) *CourtRepository {
	return &CourtRepository{db: db}
}

const courtColumns = `id, name, court_type, image, location, price_cents, slots, created_at, updated_at`

func (r *CourtRepository) Create(ctx context.Context, c *court.Court) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO courts (`+courtColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		c.ID(), c.Name(), c.Type(), c.Image(), c.Location(),
		c.PriceCents(), c.Slots(), c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create court", err)
	}
	return nil
}

func (r *CourtRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.CourtRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+courtColumns+` FROM courts WHERE id = $1`, id)
	rm, err := scanCourtRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("court not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find court by id", err)
	}
	return rm, nil
}

// slotPeriodPatterns map the catalogue's coarse time-of-day filters onto the
// slot label format "H:MM XM - H:MM XM".
var slotPeriodPatterns = map[string]string{
	"Morning":   `AM$`,
	"Afternoon": `^[1-4]:.*PM`,
	"Evening":   `^[5-9]:.*PM`,
}

func (r *CourtRepository) List(ctx context.Context, filter usecase.CourtFilter) ([]*readmodel.CourtRM, error) {
	query := `SELECT ` + courtColumns + ` FROM courts`
	var conds []string
	var args []any

	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, `name ILIKE $`+itoa(len(args)))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		conds = append(conds, `court_type = $`+itoa(len(args)))
	}
	if pattern, ok := slotPeriodPatterns[filter.SlotPeriod]; ok {
		args = append(args, pattern)
		conds = append(conds, `EXISTS (SELECT 1 FROM unnest(slots) AS s WHERE s ~ $`+itoa(len(args))+`)`)
	}

	for i, c := range conds {
		if i == 0 {
			query += ` WHERE ` + c
		} else {
			query += ` AND ` + c
		}
	}

	switch filter.Sort {
	case "LowToHigh":
		query += ` ORDER BY price_cents ASC`
	case "HighToLow":
		query += ` ORDER BY price_cents DESC`
	default:
		query += ` ORDER BY created_at DESC`
	}

	args = append(args, filter.Size)
	query += ` LIMIT $` + itoa(len(args))
	args = append(args, filter.Page*filter.Size)
	query += ` OFFSET $` + itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}
	defer rows.Close()

	var result []*readmodel.CourtRM
	for rows.Next() {
		rm, err := scanCourtRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan court row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate court rows", err)
	}
	return result, nil
}

func (r *CourtRepository) Update(ctx context.Context, id uuid.UUID, patch usecase.CourtPatch) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE courts SET
			name = COALESCE($2, name),
			court_type = COALESCE($3, court_type),
			image = COALESCE($4, image),
			location = COALESCE($5, location),
			price_cents = COALESCE($6, price_cents),
			slots = COALESCE($7, slots),
			updated_at = now()
		WHERE id = $1`,
		id, patch.Name, patch.Type, patch.Image, patch.Location,
		patch.PriceCents, patch.Slots,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update court", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("court not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CourtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM courts WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete court", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("court not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CourtRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courts`).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count courts", err)
	}
	return count, nil
}

func scanCourtRM(row rowScanner) (*readmodel.CourtRM, error) {
	var rm readmodel.CourtRM
	err := row.Scan(
		&rm.ID, &rm.Name, &rm.Type, &rm.Image, &rm.Location,
		&rm.PriceCents, &rm.Slots, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
