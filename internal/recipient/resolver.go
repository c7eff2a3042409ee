// Package recipient resolves delivery targets from NLU hints against the
// owner's accepted trust relations.
package recipient

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/dimasprtm/wa-reminder/internal/model"
)

// Users is the registered-identity lookup the resolver consults.
type Users interface {
	GetByPhone(ctx context.Context, phone string) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
}

// Friends is the trust-relation lookup the resolver consults.
type Friends interface {
	IsAccepted(ctx context.Context, ownerID, otherID uuid.UUID) (bool, error)
	ListAccepted(ctx context.Context, ownerID uuid.UUID) ([]model.User, error)
}

// Hints carries the optional recipient clues extracted from a message.
type Hints struct {
	Phone     string
	Usernames []string
	Name      string
}

// Empty reports whether no recipient clue was supplied at all.
func (h Hints) Empty() bool {
	return h.Phone == "" && len(h.Usernames) == 0 && h.Name == ""
}

// Resolver maps hints to a registered user with an accepted relation to the
// owner. Precedence: phone, then the handle list, then a name match against
// the owner's accepted relations. Every unresolved level falls through; the
// final fallback is the owner itself. A relation that exists but is not
// accepted counts as a failed match, not an error.
type Resolver struct {
	users   Users
	friends Friends
}

// New creates a recipient resolver.
func New(users Users, friends Friends) *Resolver {
	return &Resolver{users: users, friends: friends}
}

// Resolve returns the delivery target for the given owner and hints.
func (r *Resolver) Resolve(ctx context.Context, owner model.User, hints Hints) model.User {
	if hints.Phone != "" {
		if u, ok := r.acceptedByPhone(ctx, owner.ID, hints.Phone); ok {
			return u
		}
	}

	for _, handle := range hints.Usernames {
		handle = strings.TrimPrefix(strings.TrimSpace(handle), "@")
		if handle == "" {
			continue
		}
		if u, ok := r.acceptedByUsername(ctx, owner.ID, handle); ok {
			return u
		}
	}

	if hints.Name != "" {
		if u, ok := r.acceptedByName(ctx, owner.ID, hints.Name); ok {
			return u
		}
	}

	return owner
}

func (r *Resolver) acceptedByPhone(ctx context.Context, ownerID uuid.UUID, phone string) (model.User, bool) {
	u, err := r.users.GetByPhone(ctx, phone)
	if err != nil {
		return model.User{}, false
	}
	return r.accepted(ctx, ownerID, u)
}

func (r *Resolver) acceptedByUsername(ctx context.Context, ownerID uuid.UUID, username string) (model.User, bool) {
	u, err := r.users.GetByUsername(ctx, username)
	if err != nil {
		return model.User{}, false
	}
	return r.accepted(ctx, ownerID, u)
}

func (r *Resolver) acceptedByName(ctx context.Context, ownerID uuid.UUID, name string) (model.User, bool) {
	friends, err := r.friends.ListAccepted(ctx, ownerID)
	if err != nil {
		zlog.Logger.Printf("recipient: list accepted relations: %v", err)
		return model.User{}, false
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	for _, f := range friends {
		if strings.Contains(strings.ToLower(f.Name), needle) {
			return f, true
		}
	}

	return model.User{}, false
}

func (r *Resolver) accepted(ctx context.Context, ownerID uuid.UUID, u model.User) (model.User, bool) {
	if u.ID == ownerID {
		return model.User{}, false
	}

	ok, err := r.friends.IsAccepted(ctx, ownerID, u.ID)
	if err != nil {
		zlog.Logger.Printf("recipient: relation lookup for %s: %v", u.ID, err)
		return model.User{}, false
	}
	if !ok {
		return model.User{}, false
	}

	return u, true
}
