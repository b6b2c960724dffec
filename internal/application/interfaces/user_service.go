package interfaces

import (
	"context"

	"github.com/fyzanshaik/timer-game/internal/application/command"
	"github.com/fyzanshaik/timer-game/internal/application/query"
)

type UserService interface {
	EnsureUser(ctx context.Context, ensureCommand *command.EnsureUserCommand) (*command.EnsureUserCommandResult, error)
}

type ScoreService interface {
	UpdateScore(ctx context.Context, updateCommand *command.UpdateScoreCommand) (*command.UpdateScoreCommandResult, error)
}

type LeaderboardService interface {
	GetLeaderboard(ctx context.Context, timerName string) (*query.LeaderboardQueryResult, error)
}
