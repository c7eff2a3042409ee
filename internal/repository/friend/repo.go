package friend

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/dimasprtm/wa-reminder/internal/model"
)

// Repository provides read access to the friends (trust relation) table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new friend repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// IsAccepted reports whether an accepted relation owner -> other exists.
func (r *Repository) IsAccepted(ctx context.Context, ownerID, otherID uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
		    SELECT 1 FROM friends
		    WHERE user_id = $1 AND friend_id = $2 AND status = 'accepted'
		);
    `

	var ok bool
	if err := r.db.QueryRowContext(ctx, query, ownerID, otherID).Scan(&ok); err != nil {
		return false, fmt.Errorf("failed to check relation: %w", err)
	}

	return ok, nil
}

// ListAccepted retrieves the users on the accepted side of the owner's
// relations, in relation creation order.
func (r *Repository) ListAccepted(ctx context.Context, ownerID uuid.UUID) ([]model.User, error) {
	query := `
		SELECT u.id, u.name, u.username, u.phone, u.created_at
		FROM friends f
		JOIN users u ON u.id = f.friend_id
		WHERE f.user_id = $1 AND f.status = 'accepted'
		ORDER BY f.created_at ASC;
    `

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accepted relations: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Phone, &u.CreatedAt); err != nil {
			return nil, err
		}

		users = append(users, u)
	}

	return users, rows.Err()
}
