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

// AccountRepository implements domain.AccountRepository using PostgreSQL
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, id_utilisateur, description_compte, nom_banque, solde_initial, dernier_solde, date_heure_creation, date_heure_maj`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	var soldeInitial, dernierSolde pgtype.Numeric
	err := row.Scan(&a.ID, &a.UserID, &a.Description, &a.NomBanque, &soldeInitial, &dernierSolde, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, err
	}
	a.SoldeInitial = pgNumericToDecimal(soldeInitial)
	a.DernierSolde = pgNumericToDecimal(dernierSolde)
	return &a, nil
}

// GetAllByUser retrieves all accounts of one user
func (r *AccountRepository) GetAllByUser(userID int64) ([]*domain.Account, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT `+accountColumns+` FROM compte WHERE id_utilisateur = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// GetByID retrieves an account by its ID, scoped to its owner
func (r *AccountRepository) GetByID(userID, id int64) (*domain.Account, error) {
	ctx := context.Background()
	a, err := scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM compte WHERE id = $1 AND id_utilisateur = $2`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return a, nil
}

// Create inserts a new account
func (r *AccountRepository) Create(account *domain.Account) (*domain.Account, error) {
	ctx := context.Background()
	soldeInitial, err := decimalToPgNumeric(account.SoldeInitial)
	if err != nil {
		return nil, fmt.Errorf("invalid initial balance: %w", err)
	}
	dernierSolde, err := decimalToPgNumeric(account.DernierSolde)
	if err != nil {
		return nil, fmt.Errorf("invalid running balance: %w", err)
	}

	return scanAccount(r.pool.QueryRow(ctx,
		`INSERT INTO compte (id_utilisateur, description_compte, nom_banque, solde_initial, dernier_solde)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+accountColumns,
		account.UserID, account.Description, account.NomBanque, soldeInitial, dernierSolde))
}

// Update applies the supplied fields only, via COALESCE on NULL parameters.
func (r *AccountRepository) Update(userID, id int64, update domain.AccountUpdate) (*domain.Account, error) {
	ctx := context.Background()

	var soldeInitial, dernierSolde *pgtype.Numeric
	if update.SoldeInitial != nil {
		n, err := decimalToPgNumeric(*update.SoldeInitial)
		if err != nil {
			return nil, fmt.Errorf("invalid initial balance: %w", err)
		}
		soldeInitial = &n
	}
	if update.DernierSolde != nil {
		n, err := decimalToPgNumeric(*update.DernierSolde)
		if err != nil {
			return nil, fmt.Errorf("invalid running balance: %w", err)
		}
		dernierSolde = &n
	}

	a, err := scanAccount(r.pool.QueryRow(ctx,
		`UPDATE compte
		 SET description_compte = COALESCE($3, description_compte),
		     nom_banque = COALESCE($4, nom_banque),
		     solde_initial = COALESCE($5, solde_initial),
		     dernier_solde = COALESCE($6, dernier_solde),
		     date_heure_maj = now()
		 WHERE id = $1 AND id_utilisateur = $2
		 RETURNING `+accountColumns,
		id, userID, update.Description, update.NomBanque, soldeInitial, dernierSolde))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return a, nil
}

// Delete removes an account and returns the deleted row. An account still
// carrying movements or transfers maps to ErrHasDependents.
func (r *AccountRepository) Delete(userID, id int64) (*domain.Account, error) {
	ctx := context.Background()
	a, err := scanAccount(r.pool.QueryRow(ctx,
		`DELETE FROM compte WHERE id = $1 AND id_utilisateur = $2 RETURNING `+accountColumns, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrHasDependents
		}
		return nil, err
	}
	return a, nil
}

// adjustBalance shifts the running balance of an account inside tx. amount is
// signed: negative for a debit, positive for a credit.
func adjustBalance(tx pgx.Tx, accountID int64, amount decimal.Decimal) error {
	ctx := context.Background()
	delta, err := decimalToPgNumeric(amount)
	if err != nil {
		return fmt.Errorf("invalid balance delta: %w", err)
	}
	tag, err := tx.Exec(ctx,
		`UPDATE compte SET dernier_solde = dernier_solde + $2, date_heure_maj = now() WHERE id = $1`,
		accountID, delta)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
