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

// CatalogRepository covers categories and the services nested under them.
type CatalogRepository struct {
	db db.DBTX
}

func NewCatalogRepository(db db.DBTX) *CatalogRepository {
	return &CatalogRepository{db: db}
}

func (r *CatalogRepository) FindCategories(ctx context.Context) ([]*readmodel.CategoryRM, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, name, is_active, created_at FROM categories WHERE is_active ORDER BY name`,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	defer rows.Close()

	var result []*readmodel.CategoryRM
	for rows.Next() {
		var rm readmodel.CategoryRM
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.IsActive, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan category row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate category rows", err)
	}
	return result, nil
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, name string) (*readmodel.CategoryRM, error) {
	var rm readmodel.CategoryRM
	err := r.db.QueryRow(ctx, `
		INSERT INTO categories (name) VALUES ($1)
		RETURNING id, name, is_active, created_at`,
		name,
	).Scan(&rm.ID, &rm.Name, &rm.IsActive, &rm.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, infra.WrapRepoErr("category already exists", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to create category", err)
	}
	return &rm, nil
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) FindCategoryName(ctx context.Context, id uuid.UUID) (string, error) {
	var name string
	err := r.db.QueryRow(ctx, `SELECT name FROM categories WHERE id = $1`, id).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to find category name", err)
	}
	return name, nil
}

func (r *CatalogRepository) FindServicesByCategory(ctx context.Context, categoryID uuid.UUID) ([]*readmodel.ServiceRM, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, category_id, name, duration, price_cents, created_at
		FROM services WHERE category_id = $1 ORDER BY name`,
		categoryID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	return scanServices(rows)
}

func (r *CatalogRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*readmodel.ServiceRM, error) {
	var rm readmodel.ServiceRM
	err := r.db.QueryRow(ctx, `
		SELECT id, category_id, name, duration, price_cents, created_at
		FROM services WHERE id = $1`,
		id,
	).Scan(&rm.ID, &rm.CategoryID, &rm.Name, &rm.Duration, &rm.PriceCents, &rm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return &rm, nil
}

func (r *CatalogRepository) CreateService(ctx context.Context, categoryID uuid.UUID, name, duration string, priceCents int64) (*readmodel.ServiceRM, error) {
	var rm readmodel.ServiceRM
	err := r.db.QueryRow(ctx, `
		INSERT INTO services (category_id, name, duration, price_cents)
		VALUES ($1, $2, $3, $4)
		RETURNING id, category_id, name, duration, price_cents, created_at`,
		categoryID, name, duration, priceCents,
	).Scan(&rm.ID, &rm.CategoryID, &rm.Name, &rm.Duration, &rm.PriceCents, &rm.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindForeignKeyViolated)
		}
		return nil, infra.WrapRepoErr("failed to create service", err)
	}
	return &rm, nil
}

func (r *CatalogRepository) UpdateService(ctx context.Context, id uuid.UUID, name, duration string, priceCents int64) (*readmodel.ServiceRM, error) {
	var rm readmodel.ServiceRM
	err := r.db.QueryRow(ctx, `
		UPDATE services SET name = $2, duration = $3, price_cents = $4
		WHERE id = $1
		RETURNING id, category_id, name, duration, price_cents, created_at`,
		id, name, duration, priceCents,
	).Scan(&rm.ID, &rm.CategoryID, &rm.Name, &rm.Duration, &rm.PriceCents, &rm.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update service", err)
	}
	return &rm, nil
}

func (r *CatalogRepository) DeleteService(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanServices(rows pgx.Rows) ([]*readmodel.ServiceRM, error) {
	var result []*readmodel.ServiceRM
	for rows.Next() {
		var rm readmodel.ServiceRM
		if err := rows.Scan(&rm.ID, &rm.CategoryID, &rm.Name, &rm.Duration, &rm.PriceCents, &rm.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		result = append(result, &rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}
	return result, nil
}
