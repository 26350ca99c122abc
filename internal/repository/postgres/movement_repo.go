package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
)

// MovementRepository implements domain.MovementRepository using PostgreSQL.
// Ownership is resolved through the movement's account: a movement belongs to
// the user owning the account it sits on. Creates and deletes run in a
// transaction with the balance adjustment of that account.
type MovementRepository struct {
	pool *pgxpool.Pool
}

// NewMovementRepository creates a new MovementRepository
func NewMovementRepository(pool *pgxpool.Pool) *MovementRepository {
	return &MovementRepository{pool: pool}
}

const movementColumns = `m.id, m.montant, m.type_mouvement, m.date_mouvement, m.id_compte, m.id_tiers, m.id_categorie, m.id_sous_categorie, m.id_virement, m.date_heure_creation, m.date_heure_maj`

func scanMovement(row pgx.Row) (*domain.Movement, error) {
	var m domain.Movement
	var montant pgtype.Numeric
	err := row.Scan(&m.ID, &montant, &m.Type, &m.Date, &m.AccountID, &m.ThirdPartyID,
		&m.CategoryID, &m.SubcategoryID, &m.TransferID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	m.Montant = pgNumericToDecimal(montant)
	return &m, nil
}

// balanceDelta is the signed effect of a movement on its account.
func balanceDelta(t domain.MovementType, montant decimal.Decimal) decimal.Decimal {
	if t == domain.MovementDebit {
		return montant.Neg()
	}
	return montant
}

// GetAllByUser retrieves every movement on the user's accounts
func (r *MovementRepository) GetAllByUser(userID int64) ([]*domain.Movement, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT `+movementColumns+`
		 FROM mouvement m
		 JOIN compte c ON c.id = m.id_compte
		 WHERE c.id_utilisateur = $1
		 ORDER BY m.date_mouvement DESC, m.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []*domain.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

// GetAllByAccount retrieves the movements of one account of the user
func (r *MovementRepository) GetAllByAccount(userID, accountID int64) ([]*domain.Movement, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT `+movementColumns+`
		 FROM mouvement m
		 JOIN compte c ON c.id = m.id_compte
		 WHERE c.id_utilisateur = $1 AND m.id_compte = $2
		 ORDER BY m.date_mouvement DESC, m.id DESC`, userID, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movements []*domain.Movement
	for rows.Next() {
		m, err := scanMovement(rows)
		if err != nil {
			return nil, err
		}
		movements = append(movements, m)
	}
	return movements, rows.Err()
}

// GetByID retrieves a movement by its ID, scoped to its owner
func (r *MovementRepository) GetByID(userID, id int64) (*domain.Movement, error) {
	ctx := context.Background()
	m, err := scanMovement(r.pool.QueryRow(ctx,
		`SELECT `+movementColumns+`
		 FROM mouvement m
		 JOIN compte c ON c.id = m.id_compte
		 WHERE m.id = $1 AND c.id_utilisateur = $2`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovementNotFound
		}
		return nil, err
	}
	return m, nil
}

// Create inserts the movement and shifts the account's running balance in the
// same transaction. The account must belong to userID.
func (r *MovementRepository) Create(userID int64, movement *domain.Movement) (*domain.Movement, error) {
	ctx := context.Background()
	montant, err := decimalToPgNumeric(movement.Montant)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	var created *domain.Movement
	err = inTx(r.pool, func(tx pgx.Tx) error {
		var accountID int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM compte WHERE id = $1 AND id_utilisateur = $2 FOR UPDATE`,
			movement.AccountID, userID).Scan(&accountID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrAccountNotFound
			}
			return err
		}

		created, err = scanMovement(tx.QueryRow(ctx,
			`INSERT INTO mouvement (montant, type_mouvement, date_mouvement, id_compte, id_tiers, id_categorie, id_sous_categorie, id_virement)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING `+insertedMovementColumns,
			montant, movement.Type, movement.Date, movement.AccountID,
			movement.ThirdPartyID, movement.CategoryID, movement.SubcategoryID, movement.TransferID))
		if err != nil {
			return err
		}

		return adjustBalance(tx, movement.AccountID, balanceDelta(movement.Type, movement.Montant))
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// insertedMovementColumns mirrors movementColumns without the table alias,
// for RETURNING clauses.
const insertedMovementColumns = `id, montant, type_mouvement, date_mouvement, id_compte, id_tiers, id_categorie, id_sous_categorie, id_virement, date_heure_creation, date_heure_maj`

// Update applies the supplied mutable fields only. The amount and type never
// change, so the balance is untouched.
func (r *MovementRepository) Update(userID, id int64, update domain.MovementUpdate) (*domain.Movement, error) {
	ctx := context.Background()
	m, err := scanMovement(r.pool.QueryRow(ctx,
		`UPDATE mouvement
		 SET date_mouvement = COALESCE($3, date_mouvement),
		     id_categorie = COALESCE($4, id_categorie),
		     id_sous_categorie = COALESCE($5, id_sous_categorie),
		     date_heure_maj = now()
		 WHERE id = $1
		   AND id_compte IN (SELECT id FROM compte WHERE id_utilisateur = $2)
		 RETURNING `+insertedMovementColumns,
		id, userID, update.Date, update.CategoryID, update.SubcategoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMovementNotFound
		}
		return nil, err
	}
	return m, nil
}

// Delete removes the movement and reverses its balance effect in the same
// transaction, returning the deleted row.
func (r *MovementRepository) Delete(userID, id int64) (*domain.Movement, error) {
	ctx := context.Background()

	var deleted *domain.Movement
	err := inTx(r.pool, func(tx pgx.Tx) error {
		var err error
		deleted, err = scanMovement(tx.QueryRow(ctx,
			`DELETE FROM mouvement
			 WHERE id = $1
			   AND id_compte IN (SELECT id FROM compte WHERE id_utilisateur = $2)
			 RETURNING `+insertedMovementColumns, id, userID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrMovementNotFound
			}
			return err
		}

		return adjustBalance(tx, deleted.AccountID, balanceDelta(deleted.Type, deleted.Montant).Neg())
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
