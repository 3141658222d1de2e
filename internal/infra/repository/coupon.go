package repository

import (
	"context"

	"scms/internal/domain/coupon"
	"scms/internal/infra"
	"scms/internal/pkg/pgconv"
	"scms/internal/usecase"
	"scms/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponRepository struct {
	db infra.DBTX
}

func NewCouponRepository(db infra.DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

const couponColumns = `id, code, discount_cents, valid_from, valid_to, created_at, updated_at`

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO coupons (`+couponColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID(), c.Code(), c.DiscountCents(),
		pgconv.TimePtrToPgtype(c.ValidFrom()), pgconv.TimePtrToPgtype(c.ValidTo()),
		c.CreatedAt(), c.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create coupon", err)
	}
	return nil
}

// FindByCode is exact and case sensitive.
func (r *CouponRepository) FindByCode(ctx context.Context, code string) (*readmodel.CouponRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+couponColumns+` FROM coupons WHERE code = $1`, code)
	rm, err := scanCouponRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by code", err)
	}
	return rm, nil
}

func (r *CouponRepository) List(ctx context.Context) ([]*readmodel.CouponRM, error) {
	rows, err := r.db.Query(ctx, `SELECT `+couponColumns+` FROM coupons ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var result []*readmodel.CouponRM
	for rows.Next() {
		rm, err := scanCouponRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate coupon rows", err)
	}
	return result, nil
}

func (r *CouponRepository) Update(ctx context.Context, id uuid.UUID, patch usecase.CouponPatch) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE coupons SET
			code = COALESCE($2, code),
			discount_cents = COALESCE($3, discount_cents),
			valid_from = COALESCE($4, valid_from),
			valid_to = COALESCE($5, valid_to),
			updated_at = now()
		WHERE id = $1`,
		id, patch.Code, patch.DiscountCents,
		pgconv.TimePtrToPgtype(patch.ValidFrom), pgconv.TimePtrToPgtype(patch.ValidTo),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM coupons WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanCouponRM(row rowScanner) (*readmodel.CouponRM, error) {
	var (
		rm        readmodel.CouponRM
		validFrom pgtype.Timestamptz
		validTo   pgtype.Timestamptz
	)
	err := row.Scan(
		&rm.ID, &rm.Code, &rm.DiscountCents, &validFrom, &validTo,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rm.ValidFrom = pgconv.TimePtrFromPgtype(validFrom)
	rm.ValidTo = pgconv.TimePtrFromPgtype(validTo)
	return &rm, nil
}
