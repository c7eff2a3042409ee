package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account that can own and receive reminders.
type User struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

// DisplayName is the name used in delivery messages.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Username != "" {
		return u.Username
	}
	return "Kamu"
}

// FriendStatus is the state of a trust relation between two users.
type FriendStatus string

const (
	FriendPending  FriendStatus = "pending"
	FriendAccepted FriendStatus = "accepted"
)

// Friend is an ordered trust relation owner -> friend. A reminder may only
// address the friend side of an accepted relation.
type Friend struct {
	UserID   uuid.UUID    `json:"user_id"`
	FriendID uuid.UUID    `json:"friend_id"`
	Status   FriendStatus `json:"status"`
}
