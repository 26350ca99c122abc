package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bfaucher/ecureuil-backend/internal/domain"
)

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, login, mot_de_passe, nom, prenom, ville, code_postal, date_heure_creation, date_heure_maj`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Nom, &u.Prenom, &u.Ville, &u.CodePostal, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetAll retrieves every user
func (r *UserRepository) GetAll() ([]*domain.User, error) {
	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `SELECT `+userColumns+` FROM utilisateur ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// GetByID retrieves a user by its ID
func (r *UserRepository) GetByID(id int64) (*domain.User, error) {
	ctx := context.Background()
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM utilisateur WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetByLogin retrieves a user by its unique login
func (r *UserRepository) GetByLogin(login string) (*domain.User, error) {
	ctx := context.Background()
	u, err := scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM utilisateur WHERE login = $1`, login))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Create inserts a new user. A login collision maps to ErrDuplicateLogin.
func (r *UserRepository) Create(user *domain.User) (*domain.User, error) {
	ctx := context.Background()
	created, err := scanUser(r.pool.QueryRow(ctx,
		`INSERT INTO utilisateur (login, mot_de_passe, nom, prenom, ville, code_postal)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+userColumns,
		user.Login, user.PasswordHash, user.Nom, user.Prenom, user.Ville, user.CodePostal))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateLogin
		}
		return nil, err
	}
	return created, nil
}

// Update applies the supplied fields only, via COALESCE on NULL parameters.
func (r *UserRepository) Update(id int64, update domain.UserUpdate) (*domain.User, error) {
	ctx := context.Background()
	u, err := scanUser(r.pool.QueryRow(ctx,
		`UPDATE utilisateur
		 SET nom = COALESCE($2, nom),
		     prenom = COALESCE($3, prenom),
		     mot_de_passe = COALESCE($4, mot_de_passe),
		     ville = COALESCE($5, ville),
		     code_postal = COALESCE($6, code_postal),
		     date_heure_maj = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, update.Nom, update.Prenom, update.PasswordHash, update.Ville, update.CodePostal))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// Delete removes a user and returns the deleted row. A user still owning
// accounts or third parties maps to ErrHasDependents.
func (r *UserRepository) Delete(id int64) (*domain.User, error) {
	ctx := context.Background()
	u, err := scanUser(r.pool.QueryRow(ctx,
		`DELETE FROM utilisateur WHERE id = $1 RETURNING `+userColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrHasDependents
		}
		return nil, err
	}
	return u, nil
}
