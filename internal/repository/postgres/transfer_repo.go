package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
)

// TransferRepository implements domain.TransferRepository using PostgreSQL.
// A transfer row carries two linked movements (the debit and credit legs,
// with no third party). Create and Delete write the transfer, both legs and
// both balance adjustments in one transaction so the books stay consistent.
type TransferRepository struct {
	pool *pgxpool.Pool
}

// NewTransferRepository creates a new TransferRepository
func NewTransferRepository(pool *pgxpool.Pool) *TransferRepository {
	return &TransferRepository{pool: pool}
}

const transferColumns = `v.id, v.id_compte_debit, v.id_compte_credit, v.montant, v.date_virement, v.id_categorie, v.date_heure_creation, v.date_heure_maj`

func scanTransfer(row pgx.Row) (*domain.Transfer, error) {
	var t domain.Transfer
	var montant pgtype.Numeric
	err := row.Scan(&t.ID, &t.DebitAccountID, &t.CreditAccountID, &montant, &t.Date,
		&t.CategoryID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Montant = pgNumericToDecimal(montant)
	return &t, nil
}

// insertedTransferColumns mirrors transferColumns without the table alias,
// for RETURNING clauses.
const insertedTransferColumns = `id, id_compte_debit, id_compte_credit, montant, date_virement, id_categorie, date_heure_creation, date_heure_maj`

// GetAllByUser retrieves every transfer between the user's accounts
func (r *TransferRepository) GetAllByUser(userID int64) ([]*domain.Transfer, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT `+transferColumns+`
		 FROM virement v
		 WHERE EXISTS (SELECT 1 FROM compte c
		               WHERE c.id IN (v.id_compte_debit, v.id_compte_credit)
		                 AND c.id_utilisateur = $1)
		 ORDER BY v.date_virement DESC, v.id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []*domain.Transfer
	for rows.Next() {
		t, err := scanTransfer(rows)
		if err != nil {
			return nil, err
		}
		transfers = append(transfers, t)
	}
	return transfers, rows.Err()
}

// GetByID retrieves a transfer by its ID, scoped to the owner of either leg
func (r *TransferRepository) GetByID(userID, id int64) (*domain.Transfer, error) {
	ctx := context.Background()
	t, err := scanTransfer(r.pool.QueryRow(ctx,
		`SELECT `+transferColumns+`
		 FROM virement v
		 WHERE v.id = $1
		   AND EXISTS (SELECT 1 FROM compte c
		               WHERE c.id IN (v.id_compte_debit, v.id_compte_credit)
		                 AND c.id_utilisateur = $2)`, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransferNotFound
		}
		return nil, err
	}
	return t, nil
}

// Create inserts the transfer, its two linked movements and both balance
// adjustments in one transaction. Both accounts must belong to userID.
func (r *TransferRepository) Create(userID int64, transfer *domain.Transfer) (*domain.Transfer, error) {
	ctx := context.Background()
	montant, err := decimalToPgNumeric(transfer.Montant)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	var created *domain.Transfer
	err = inTx(r.pool, func(tx pgx.Tx) error {
		// Lock both accounts in ID order to avoid deadlocks between
		// concurrent transfers.
		rows, err := tx.Query(ctx,
			`SELECT id FROM compte WHERE id = ANY($1) AND id_utilisateur = $2 ORDER BY id FOR UPDATE`,
			[]int64{transfer.DebitAccountID, transfer.CreditAccountID}, userID)
		if err != nil {
			return err
		}
		locked := 0
		for rows.Next() {
			var id int64
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return err
			}
			locked++
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		if locked != 2 {
			return domain.ErrAccountNotFound
		}

		created, err = scanTransfer(tx.QueryRow(ctx,
			`INSERT INTO virement (id_compte_debit, id_compte_credit, montant, date_virement, id_categorie)
			 VALUES ($1, $2, $3, $4, $5)
			 RETURNING `+insertedTransferColumns,
			transfer.DebitAccountID, transfer.CreditAccountID, montant, transfer.Date, transfer.CategoryID))
		if err != nil {
			return err
		}

		for _, leg := range []struct {
			accountID int64
			kind      domain.MovementType
		}{
			{transfer.DebitAccountID, domain.MovementDebit},
			{transfer.CreditAccountID, domain.MovementCredit},
		} {
			_, err = tx.Exec(ctx,
				`INSERT INTO mouvement (montant, type_mouvement, date_mouvement, id_compte, id_tiers, id_categorie, id_virement)
				 VALUES ($1, $2, $3, $4, NULL, $5, $6)`,
				montant, leg.kind, transfer.Date, leg.accountID, transfer.CategoryID, created.ID)
			if err != nil {
				return err
			}
			if err := adjustBalance(tx, leg.accountID, balanceDelta(leg.kind, transfer.Montant)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Update applies the supplied mutable fields to the transfer and mirrors them
// onto its two linked movements.
func (r *TransferRepository) Update(userID, id int64, update domain.TransferUpdate) (*domain.Transfer, error) {
	ctx := context.Background()

	var updated *domain.Transfer
	err := inTx(r.pool, func(tx pgx.Tx) error {
		var err error
		updated, err = scanTransfer(tx.QueryRow(ctx,
			`UPDATE virement
			 SET date_virement = COALESCE($3, date_virement),
			     id_categorie = COALESCE($4, id_categorie),
			     date_heure_maj = now()
			 WHERE id = $1
			   AND EXISTS (SELECT 1 FROM compte c
			               WHERE c.id IN (id_compte_debit, id_compte_credit)
			                 AND c.id_utilisateur = $2)
			 RETURNING `+insertedTransferColumns,
			id, userID, update.Date, update.CategoryID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrTransferNotFound
			}
			return err
		}

		_, err = tx.Exec(ctx,
			`UPDATE mouvement
			 SET date_mouvement = COALESCE($2, date_mouvement),
			     id_categorie = COALESCE($3, id_categorie),
			     date_heure_maj = now()
			 WHERE id_virement = $1`,
			id, update.Date, update.CategoryID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the transfer, its two linked movements and both balance
// effects in one transaction, returning the deleted row.
func (r *TransferRepository) Delete(userID, id int64) (*domain.Transfer, error) {
	ctx := context.Background()

	var deleted *domain.Transfer
	err := inTx(r.pool, func(tx pgx.Tx) error {
		var err error
		deleted, err = scanTransfer(tx.QueryRow(ctx,
			`SELECT `+transferColumns+`
			 FROM virement v
			 WHERE v.id = $1
			   AND EXISTS (SELECT 1 FROM compte c
			               WHERE c.id IN (v.id_compte_debit, v.id_compte_credit)
			                 AND c.id_utilisateur = $2)
			 FOR UPDATE`, id, userID))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domain.ErrTransferNotFound
			}
			return err
		}

		if _, err := tx.Exec(ctx, `DELETE FROM mouvement WHERE id_virement = $1`, id); err != nil {
			return err
		}
		if err := adjustBalance(tx, deleted.DebitAccountID, deleted.Montant); err != nil {
			return err
		}
		if err := adjustBalance(tx, deleted.CreditAccountID, deleted.Montant.Neg()); err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `DELETE FROM virement WHERE id = $1`, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}
