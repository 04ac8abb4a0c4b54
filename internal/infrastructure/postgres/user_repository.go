package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wattscycling/warehouse-api/internal/domain"
	"github.com/wattscycling/warehouse-api/internal/domain/entity"
	"github.com/wattscycling/warehouse-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación de UserRepository sobre PostgreSQL.
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador.
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

const selectUser = `
	SELECT id, username, email, password_hash, role, active, created_at
	FROM users`

func scanUser(row pgx.Row) (*entity.User, error) {
	var u entity.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.Active, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID obtiene un usuario por ID, o nil si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(context.Background(), selectUser+" WHERE id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// GetByUsername obtiene un usuario por nombre de usuario, o nil si no existe.
func (r *UserRepo) GetByUsername(username string) (*entity.User, error) {
	u, err := scanUser(r.q.QueryRow(context.Background(), selectUser+" WHERE username = $1", username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return u, nil
}

// Create persiste un usuario nuevo.
func (r *UserRepo) Create(u *entity.User) error {
	query := `
		INSERT INTO users (id, username, email, password_hash, role, active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.Active, u.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}
