package repository

import (
	"context"
	"errors"

	"salon-booking-api/internal/infra"
	"salon-booking-api/internal/infra/db"
	"salon-booking-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type ArtistRepository struct {
	db db.DBTX
}

func NewArtistRepository(db db.DBTX) *ArtistRepository {
	return &ArtistRepository{db: db}
}

func (r *ArtistRepository) FindAll(ctx context.Context) ([]*readmodel.ArtistRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, email, created_at, updated_at FROM artists ORDER BY name`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list artists", err)
	}
	defer rows.Close()

	var result []*readmodel.ArtistRM
	for rows.Next() {
		var rm readmodel.ArtistRM
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Email, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan artist row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate artist rows", err)
	}
	return result, nil
}

func (r *ArtistRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ArtistRM, error) {
	var rm readmodel.ArtistRM
	err := r.db.QueryRow(ctx,
		`SELECT id, name, email, created_at, updated_at FROM artists WHERE id = $1`, id,
	).Scan(&rm.ID, &rm.Name, &rm.Email, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("artist not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find artist by ID", err)
	}
	return &rm, nil
}

func (r *ArtistRepository) Create(ctx context.Context, name, email string) (*readmodel.ArtistRM, error) {
	var rm readmodel.ArtistRM
	err := r.db.QueryRow(ctx, `
		INSERT INTO artists (name, email) VALUES ($1, $2)
		RETURNING id, name, email, created_at, updated_at`,
		name, email,
	).Scan(&rm.ID, &rm.Name, &rm.Email, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, infra.WrapRepoErr("artist email already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create artist", err)
	}
	return &rm, nil
}

func (r *ArtistRepository) Update(ctx context.Context, id uuid.UUID, name, email string) (*readmodel.ArtistRM, error) {
	var rm readmodel.ArtistRM
	err := r.db.QueryRow(ctx, `
		UPDATE artists SET name = $2, email = $3, updated_at = now()
		WHERE id = $1
		RETURNING id, name, email, created_at, updated_at`,
		id, name, email,
	).Scan(&rm.ID, &rm.Name, &rm.Email, &rm.CreatedAt, &rm.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("artist not found", err, infra.KindNotFound)
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, infra.WrapRepoErr("artist email already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to update artist", err)
	}
	return &rm, nil
}

func (r *ArtistRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete artist", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("artist not found", nil, infra.KindNotFound)
	}
	return nil
}
