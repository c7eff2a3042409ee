package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/dimasprtm/wa-reminder/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

// Repository provides access to the users table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetByID retrieves a user by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	return r.getBy(ctx, "id = $1", id)
}

// GetByPhone retrieves a user by its phone number.
func (r *Repository) GetByPhone(ctx context.Context, phone string) (model.User, error) {
	return r.getBy(ctx, "phone = $1", phone)
}

// GetByUsername retrieves a user by its username.
func (r *Repository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	return r.getBy(ctx, "username = $1", username)
}

func (r *Repository) getBy(ctx context.Context, cond string, arg interface{}) (model.User, error) {
	query := fmt.Sprintf(`
		SELECT id, name, username, phone, created_at
		FROM users
		WHERE %s;
    `, cond)

	var u model.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Username, &u.Phone, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}

		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}
