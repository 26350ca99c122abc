package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
)

// SubcategoryRepository implements domain.SubcategoryRepository using PostgreSQL
type SubcategoryRepository struct {
	pool *pgxpool.Pool
}

// NewSubcategoryRepository creates a new SubcategoryRepository
func NewSubcategoryRepository(pool *pgxpool.Pool) *SubcategoryRepository {
	return &SubcategoryRepository{pool: pool}
}

const subcategoryColumns = `id, nom_sous_categorie, id_categorie, date_heure_creation, date_heure_maj`

func scanSubcategory(row pgx.Row) (*domain.Subcategory, error) {
	var s domain.Subcategory
	if err := row.Scan(&s.ID, &s.Nom, &s.CategoryID, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByCategory retrieves the subcategories of one category
func (r *SubcategoryRepository) GetByCategory(categoryID int64) ([]*domain.Subcategory, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT `+subcategoryColumns+` FROM sous_categorie WHERE id_categorie = $1 ORDER BY nom_sous_categorie`,
		categoryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*domain.Subcategory
	for rows.Next() {
		s, err := scanSubcategory(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

// GetByID retrieves a subcategory by its ID within a category
func (r *SubcategoryRepository) GetByID(categoryID, id int64) (*domain.Subcategory, error) {
	ctx := context.Background()
	s, err := scanSubcategory(r.pool.QueryRow(ctx,
		`SELECT `+subcategoryColumns+` FROM sous_categorie WHERE id = $1 AND id_categorie = $2`,
		id, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubcategoryNotFound
		}
		return nil, err
	}
	return s, nil
}

// Create inserts a new subcategory under its parent category
func (r *SubcategoryRepository) Create(sub *domain.Subcategory) (*domain.Subcategory, error) {
	ctx := context.Background()
	created, err := scanSubcategory(r.pool.QueryRow(ctx,
		`INSERT INTO sous_categorie (nom_sous_categorie, id_categorie) VALUES ($1, $2) RETURNING `+subcategoryColumns,
		sub.Nom, sub.CategoryID))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, domain.ErrCategoryNotFound
		}
		return nil, err
	}
	return created, nil
}

// Update renames a subcategory; the parent link never changes.
func (r *SubcategoryRepository) Update(categoryID, id int64, nom string) (*domain.Subcategory, error) {
	ctx := context.Background()
	s, err := scanSubcategory(r.pool.QueryRow(ctx,
		`UPDATE sous_categorie SET nom_sous_categorie = $3, date_heure_maj = now()
		 WHERE id = $1 AND id_categorie = $2
		 RETURNING `+subcategoryColumns,
		id, categoryID, nom))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubcategoryNotFound
		}
		return nil, err
	}
	return s, nil
}

// Delete removes a subcategory and returns the deleted row. A subcategory
// still referenced by movements maps to ErrHasDependents.
func (r *SubcategoryRepository) Delete(categoryID, id int64) (*domain.Subcategory, error) {
	ctx := context.Background()
	s, err := scanSubcategory(r.pool.QueryRow(ctx,
		`DELETE FROM sous_categorie WHERE id = $1 AND id_categorie = $2 RETURNING `+subcategoryColumns,
		id, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSubcategoryNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrHasDependents
		}
		return nil, err
	}
	return s, nil
}
