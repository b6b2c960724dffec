package repositories

import (
	"context"

	"github.com/fyzanshaik/timer-game/internal/domain/entities"
)

type ScoreRepository interface {
	Create(ctx context.Context, userId int64) (*entities.ScoreRecord, error)
	FindByUserId(ctx context.Context, userId int64) (*entities.ScoreRecord, error)

	// UpdateScoreIfHigher applies the new value only when it is strictly
	// greater than the stored one, as a single atomic statement. It reports
	// whether a row changed, so a racing writer that lost observes false.
	UpdateScoreIfHigher(ctx context.Context, userId int64, category entities.Category, value int) (bool, error)

	// TopByCategory ranks records descending by the category value, ties
	// broken by record id ascending.
	TopByCategory(ctx context.Context, category entities.Category, limit int) ([]entities.LeaderboardEntry, error)
}
