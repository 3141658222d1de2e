package repository

import (
	"context"
	"strings"
	"time"

	"scms/internal/domain/booking"
	"scms/internal/infra"
	"scms/internal/pkg/pgconv"
	"scms/internal/usecase"
	"scms/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingRepository struct {
	db infra.DBTX
}

func NewBookingRepository(db infra.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, user_email, court_id, court_title, court_type, date, slots, price_cents, coupon_code, status, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, tx infra.DBTX, b *booking.Booking) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO bookings (`+bookingColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		b.ID(), b.UserEmail(), b.CourtID(), b.CourtTitle(), b.CourtType(),
		b.Date(), b.Slots(), b.PriceCents(), pgconv.StringPtrToPgtype(b.CouponCode()), b.Status().String(),
		b.CreatedAt(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}

	// The unique index on booking_slots is the authoritative guard; a
	// concurrent insert for the same slot fails here with a duplicate kind.
	_, err = tx.Exec(ctx, `
		INSERT INTO booking_slots (booking_id, court_id, date, slot)
		SELECT $1, $2, $3, unnest($4::text[])`,
		b.ID(), b.CourtID(), b.Date(), b.Slots(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve booking slots", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.BookingRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)
	rm, err := scanBookingRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return rm, nil
}

// FindByIDForUpdate locks the row for the duration of the enclosing
// transaction so concurrent transitions serialize.
func (r *BookingRepository) FindByIDForUpdate(ctx context.Context, tx infra.DBTX, id uuid.UUID) (*booking.Booking, error) {
	row := tx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1 FOR UPDATE`, id)
	rm, err := scanBookingRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}

	return booking.ReconstructBooking(
		rm.ID, rm.UserEmail, rm.CourtID, rm.CourtTitle, rm.CourtType,
		rm.Date, rm.Slots, rm.PriceCents, rm.CouponCode,
		booking.Status(rm.Status), rm.CreatedAt, rm.UpdatedAt,
	), nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, tx infra.DBTX, b *booking.Booking) error {
	tag, err := tx.Exec(ctx,
		`UPDATE bookings SET status = $2, updated_at = $3 WHERE id = $1`,
		b.ID(), b.Status().String(), b.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	// A rejected booking no longer holds its slots.
	if b.Status() == booking.StatusRejected {
		if _, err := tx.Exec(ctx, `DELETE FROM booking_slots WHERE booking_id = $1`, b.ID()); err != nil {
			return infra.WrapRepoErr("failed to release booking slots", err)
		}
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

// List applies the filters conjunctively; an empty filter returns everything,
// newest date first.
func (r *BookingRepository) List(ctx context.Context, filter usecase.BookingFilter) ([]*readmodel.BookingRM, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	var conds []string
	var args []any

	if filter.Email != "" {
		args = append(args, filter.Email)
		conds = append(conds, "user_email = $"+itoa(len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, "status = $"+itoa(len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%")
		conds = append(conds, "court_title ILIKE $"+itoa(len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC, created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}
	defer rows.Close()

	var result []*readmodel.BookingRM
	for rows.Next() {
		rm, err := scanBookingRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}

// HasSlotConflict reports whether another booking already holds any of the
// requested slots for the court and date. Rejected bookings release their
// slot rows, so they do not block.
func (r *BookingRepository) HasSlotConflict(ctx context.Context, tx infra.DBTX, courtID uuid.UUID, date time.Time, slots []string) (bool, error) {
	var exists bool
	err := tx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM booking_slots
			WHERE court_id = $1
			  AND date = $2
			  AND slot = ANY($3)
		)`,
		courtID, date, slots,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot conflict", err)
	}
	return exists, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBookingRM(row rowScanner) (*readmodel.BookingRM, error) {
	var (
		rm         readmodel.BookingRM
		couponCode pgtype.Text
	)
	err := row.Scan(
		&rm.ID, &rm.UserEmail, &rm.CourtID, &rm.CourtTitle, &rm.CourtType,
		&rm.Date, &rm.Slots, &rm.PriceCents, &couponCode, &rm.Status,
		&rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rm.CouponCode = pgconv.StringPtrFromPgtype(couponCode)
	return &rm, nil
}
