package repository

import (
	"context"

	"scms/internal/domain/user"
	"scms/internal/infra"
	"scms/internal/pkg/pgconv"
	"scms/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type UserRepository struct {
	db infra.DBTX
}

func NewUserRepository(db infra.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, name, email, photo_url, role, member_since, created_at, updated_at`

// Upsert inserts the user unless the email is already registered; the
// conflict path is a no-op, not an error (first-sign-in semantics).
func (r *UserRepository) Upsert(ctx context.Context, u *user.User) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		INSERT INTO users (`+userColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (email) DO NOTHING`,
		u.ID(), u.Name(), u.Email(), pgconv.StringPtrToPgtype(u.PhotoURL()), u.Role().String(),
		pgconv.TimePtrToPgtype(u.MemberSince()), u.CreatedAt(), u.UpdatedAt(),
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to upsert user", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*readmodel.UserRM, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	rm, err := scanUserRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return rm, nil
}

func (r *UserRepository) FindByEmailForUpdate(ctx context.Context, tx infra.DBTX, email string) (*user.User, error) {
	row := tx.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1 FOR UPDATE`, email)
	rm, err := scanUserRM(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock user", err)
	}

	role, err := user.NewRole(rm.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("invalid role in store", err)
	}
	return user.ReconstructUser(rm.ID, rm.Name, rm.Email, rm.PhotoURL, role, rm.MemberSince, rm.CreatedAt, rm.UpdatedAt), nil
}

// SaveMembership persists a promotion. member_since is only ever written
// through COALESCE so a re-approval can never reset tenure.
func (r *UserRepository) SaveMembership(ctx context.Context, tx infra.DBTX, u *user.User) error {
	tag, err := tx.Exec(ctx, `
		UPDATE users
		SET role = $2, member_since = COALESCE(member_since, $3), updated_at = $4
		WHERE email = $1`,
		u.Email(), u.Role().String(), pgconv.TimePtrToPgtype(u.MemberSince()), u.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save membership", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) ListMembers(ctx context.Context, search string) ([]*readmodel.UserRM, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = 'member'`
	var args []any
	if search != "" {
		args = append(args, "%"+search+"%")
		query += ` AND name ILIKE $1`
	}
	query += ` ORDER BY member_since DESC`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list members", err)
	}
	defer rows.Close()

	var result []*readmodel.UserRM
	for rows.Next() {
		rm, err := scanUserRM(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate user rows", err)
	}
	return result, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) Counts(ctx context.Context) (int64, int64, error) {
	var totalUsers, totalMembers int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE role = 'member') FROM users`,
	).Scan(&totalUsers, &totalMembers)
	if err != nil {
		return 0, 0, infra.WrapRepoErr("failed to count users", err)
	}
	return totalUsers, totalMembers, nil
}

func scanUserRM(row rowScanner) (*readmodel.UserRM, error) {
	var (
		rm          readmodel.UserRM
		photoURL    pgtype.Text
		memberSince pgtype.Timestamptz
	)
	err := row.Scan(
		&rm.ID, &rm.Name, &rm.Email, &photoURL, &rm.Role,
		&memberSince, &rm.CreatedAt, &rm.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rm.PhotoURL = pgconv.StringPtrFromPgtype(photoURL)
	rm.MemberSince = pgconv.TimePtrFromPgtype(memberSince)
	return &rm, nil
}
