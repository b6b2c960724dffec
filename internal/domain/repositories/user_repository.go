package repositories

import (
	"context"
	"errors"

	"github.com/fyzanshaik/timer-game/internal/domain/entities"
)

// ErrDuplicateUsername reports a uniqueness violation on user creation. The
// store's unique index is the arbiter: two racing creates resolve to exactly
// one persisted row, and the loser re-resolves through the lookup path.
var ErrDuplicateUsername = errors.New("username already exists")

type UserRepository interface {
	Create(ctx context.Context, user *entities.ValidatedUser) (*entities.User, error)
	FindById(ctx context.Context, id int64) (*entities.User, error)
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
}
