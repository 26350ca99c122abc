package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
)

// ThirdPartyRepository implements domain.ThirdPartyRepository using PostgreSQL
type ThirdPartyRepository struct {
	pool *pgxpool.Pool
}

// NewThirdPartyRepository creates a new ThirdPartyRepository
func NewThirdPartyRepository(pool *pgxpool.Pool) *ThirdPartyRepository {
	return &ThirdPartyRepository{pool: pool}
}

const thirdPartyColumns = `id, id_utilisateur, nom_tiers, date_heure_creation, date_heure_maj`

func scanThirdParty(row pgx.Row) (*domain.ThirdParty, error) {
	var tp domain.ThirdParty
	if err := row.Scan(&tp.ID, &tp.UserID, &tp.Nom, &tp.CreatedAt, &tp.UpdatedAt); err != nil {
		return nil, err
	}
	return &tp, nil
}

// GetAllByUser retrieves all third parties of one user
func (r *ThirdPartyRepository) GetAllByUser(userID int64) ([]*domain.ThirdParty, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT `+thirdPartyColumns+` FROM tiers WHERE id_utilisateur = $1 ORDER BY nom_tiers`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tps []*domain.ThirdParty
	for rows.Next() {
		tp, err := scanThirdParty(rows)
		if err != nil {
			return nil, err
		}
		tps = append(tps, tp)
	}
	return tps, rows.Err()
}

// GetByID retrieves a third party by its ID, scoped to its owner
func (r *ThirdPartyRepository) GetByID(userID, id int64) (*domain.ThirdParty, error) {
	ctx := context.Background()
	tp, err := scanThirdParty(r.pool.QueryRow(ctx,
		`SELECT `+thirdPartyColumns+` FROM tiers WHERE id = $1 AND id_utilisateur = $2`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrThirdPartyNotFound
		}
		return nil, err
	}
	return tp, nil
}

// Create inserts a new third party
func (r *ThirdPartyRepository) Create(tp *domain.ThirdParty) (*domain.ThirdParty, error) {
	ctx := context.Background()
	return scanThirdParty(r.pool.QueryRow(ctx,
		`INSERT INTO tiers (id_utilisateur, nom_tiers) VALUES ($1, $2) RETURNING `+thirdPartyColumns,
		tp.UserID, tp.Nom))
}

// Update renames a third party
func (r *ThirdPartyRepository) Update(userID, id int64, nom string) (*domain.ThirdParty, error) {
	ctx := context.Background()
	tp, err := scanThirdParty(r.pool.QueryRow(ctx,
		`UPDATE tiers SET nom_tiers = $3, date_heure_maj = now()
		 WHERE id = $1 AND id_utilisateur = $2
		 RETURNING `+thirdPartyColumns,
		id, userID, nom))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrThirdPartyNotFound
		}
		return nil, err
	}
	return tp, nil
}

// Delete removes a third party and returns the deleted row. A third party
// still referenced by movements maps to ErrHasDependents.
func (r *ThirdPartyRepository) Delete(userID, id int64) (*domain.ThirdParty, error) {
	ctx := context.Background()
	tp, err := scanThirdParty(r.pool.QueryRow(ctx,
		`DELETE FROM tiers WHERE id = $1 AND id_utilisateur = $2 RETURNING `+thirdPartyColumns, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrThirdPartyNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrHasDependents
		}
		return nil, err
	}
	return tp, nil
}
