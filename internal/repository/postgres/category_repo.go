package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
)

// CategoryRepository implements domain.CategoryRepository using PostgreSQL
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

const categoryColumns = `id, nom_categorie, date_heure_creation, date_heure_maj`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Nom, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

// GetAll retrieves every category
func (r *CategoryRepository) GetAll() ([]*domain.Category, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `SELECT `+categoryColumns+` FROM categorie ORDER BY nom_categorie`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(id int64) (*domain.Category, error) {
	ctx := context.Background()
	c, err := scanCategory(r.pool.QueryRow(ctx, `SELECT `+categoryColumns+` FROM categorie WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

// Create inserts a new category
func (r *CategoryRepository) Create(nom string) (*domain.Category, error) {
	ctx := context.Background()
	return scanCategory(r.pool.QueryRow(ctx,
		`INSERT INTO categorie (nom_categorie) VALUES ($1) RETURNING `+categoryColumns, nom))
}

// Update renames a category
func (r *CategoryRepository) Update(id int64, nom string) (*domain.Category, error) {
	ctx := context.Background()
	c, err := scanCategory(r.pool.QueryRow(ctx,
		`UPDATE categorie SET nom_categorie = $2, date_heure_maj = now() WHERE id = $1 RETURNING `+categoryColumns,
		id, nom))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

// Delete removes a category and returns the deleted row. A category still
// referenced by subcategories, movements or transfers maps to
// ErrHasDependents.
func (r *CategoryRepository) Delete(id int64) (*domain.Category, error) {
	ctx := context.Background()
	c, err := scanCategory(r.pool.QueryRow(ctx,
		`DELETE FROM categorie WHERE id = $1 RETURNING `+categoryColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCategoryNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrHasDependents
		}
		return nil, err
	}
	return c, nil
}
