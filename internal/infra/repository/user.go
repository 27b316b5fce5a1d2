package repository

import (
	"context"
	"errors"
	"time"

	"salon-booking-api/internal/domain/user"
	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/infra/db"
	"salon-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(db db.DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, name string, email user.Email, passwordHash string, role user.Role) (*readmodel.AuthorizedUserRM, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO users (id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, role, is_active, created_at`,
		uuid.New(), name, email.Value(), passwordHash, role.String(),
	)

	rm, err := scanAuthorizedUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create user", err)
	}
	return rm, nil
}

// FindByEmail also returns the stored password hash for credential checks.
func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	var rm readmodel.AuthorizedUserRM
	var hash string
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, role, is_active, created_at, password_hash
		FROM users WHERE email = $1`,
		email.Value(),
	).Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Role, &rm.IsActive, &rm.CreatedAt, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &rm, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, name, email, role, is_active, created_at
		FROM users WHERE id = $1`,
		id,
	)

	rm, err := scanAuthorizedUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return rm, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]*readmodel.AuthorizedUserRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, email, role, is_active, created_at
		FROM users
		ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}
	defer rows.Close()

	var users []*readmodel.AuthorizedUserRM
	for rows.Next() {
		rm, err := scanAuthorizedUser(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan user", err)
		}
		users = append(users, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate users", err)
	}
	return users, nil
}

// UpdateProfile leaves the stored name or password hash untouched when the
// corresponding argument is empty.
func (r *UserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, name, passwordHash string) (*readmodel.AuthorizedUserRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE users
		SET name = COALESCE(NULLIF($2, ''), name),
		    password_hash = COALESCE(NULLIF($3, ''), password_hash),
		    updated_at = now()
		WHERE id = $1
		RETURNING id, name, email, role, is_active, created_at`,
		id, name, passwordHash,
	)

	rm, err := scanAuthorizedUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update profile", err)
	}
	return rm, nil
}

func (r *UserRepository) UpdateByAdmin(ctx context.Context, id uuid.UUID, name, email string) (*readmodel.AuthorizedUserRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE users
		SET name = COALESCE(NULLIF($2, ''), name),
		    email = COALESCE(NULLIF($3, ''), email),
		    updated_at = now()
		WHERE id = $1
		RETURNING id, name, email, role, is_active, created_at`,
		id, name, email,
	)

	rm, err := scanAuthorizedUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, infra.WrapRepoErr("email already registered", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to update user", err)
	}
	return rm, nil
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

func (r *UserRepository) SetResetToken(ctx context.Context, email user.Email, token string, expiresAt time.Time) (*readmodel.AuthorizedUserRM, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE users
		SET reset_token = $2, reset_token_expires_at = $3, updated_at = now()
		WHERE email = $1
		RETURNING id, name, email, role, is_active, created_at`,
		email.Value(), token, expiresAt,
	)

	rm, err := scanAuthorizedUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to store reset token", err)
	}
	return rm, nil
}

func (r *UserRepository) FindByResetToken(ctx context.Context, token string) (uuid.UUID, time.Time, error) {
	var id uuid.UUID
	var expiresAt time.Time
	err := r.db.QueryRow(ctx, `
		SELECT id, reset_token_expires_at
		FROM users WHERE reset_token = $1`,
		token,
	).Scan(&id, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return uuid.Nil, time.Time{}, infra.WrapRepoErr("reset token not found", err, infra.KindNotFound)
		}
		return uuid.Nil, time.Time{}, infra.WrapRepoErr("failed to find reset token", err)
	}
	return id, expiresAt, nil
}

// ResetPassword consumes the token: the new hash lands and the token is
// cleared in the same statement.
func (r *UserRepository) ResetPassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, reset_token = NULL, reset_token_expires_at = NULL, updated_at = now()
		WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to reset password", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanAuthorizedUser(row pgx.Row) (*readmodel.AuthorizedUserRM, error) {
	var rm readmodel.AuthorizedUserRM
	err := row.Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Role, &rm.IsActive, &rm.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
