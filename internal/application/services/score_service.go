package services

import (
	"context"
	"fmt"

	"github.com/fyzanshaik/timer-game/internal/application/command"
	"github.com/fyzanshaik/timer-game/internal/application/common"
	"github.com/fyzanshaik/timer-game/internal/application/interfaces"
	"github.com/fyzanshaik/timer-game/internal/application/mapper"
	"github.com/fyzanshaik/timer-game/internal/domain/entities"
	"github.com/fyzanshaik/timer-game/internal/domain/repositories"
	"github.com/fyzanshaik/timer-game/internal/infrastructure"
)

type ScoreService struct {
	userRepo  repositories.UserRepository
	scoreRepo repositories.ScoreRepository
	cache     infrastructure.Cache
}

func NewScoreService(
	userRepo repositories.UserRepository,
	scoreRepo repositories.ScoreRepository,
	cache infrastructure.Cache,
) interfaces.ScoreService {
	return &ScoreService{
		userRepo:  userRepo,
		scoreRepo: scoreRepo,
		cache:     cache,
	}
}

// UpdateScore applies a submission only when it beats the stored value.
// Equal resubmissions are a no-op, not an error. The conditional update at
// the store closes the read-then-write race window; both cache keys are
// invalidated strictly after the write is acknowledged.
func (s *ScoreService) UpdateScore(ctx context.Context, updateCommand *command.UpdateScoreCommand) (*command.UpdateScoreCommandResult, error) {
	category, ok := entities.ParseCategory(updateCommand.TimerName)
	if !ok {
		return nil, common.NewInvalidInput("Invalid timer name.")
	}
	if updateCommand.NewScore < 0 {
		return nil, common.NewInvalidInput("Score must not be negative.")
	}

	record, err := s.scoreRepo.FindByUserId(ctx, updateCommand.UserId)
	if err != nil {
		return nil, common.NewUpstream("failed to load score record", err)
	}
	if record == nil {
		// A known user without a record is an orphan from an interrupted
		// creation, not an ordinary miss.
		user, lookupErr := s.userRepo.FindById(ctx, updateCommand.UserId)
		if lookupErr == nil && user != nil {
			return nil, common.NewDataIntegrity(fmt.Sprintf("user %d has no score record", user.Id))
		}
		return nil, common.NewNotFound("User scores not found.")
	}

	if updateCommand.NewScore <= record.Score(category) {
		return &command.UpdateScoreCommandResult{
			Message: "New score is not higher. No update needed.",
		}, nil
	}

	updated, err := s.scoreRepo.UpdateScoreIfHigher(ctx, updateCommand.UserId, category, updateCommand.NewScore)
	if err != nil {
		return nil, common.NewUpstream("failed to update score", err)
	}
	if !updated {
		// A concurrent submission raised the stored value past ours between
		// the read and the update.
		return &command.UpdateScoreCommandResult{
			Message: "New score is not higher. No update needed.",
		}, nil
	}

	fresh, err := s.scoreRepo.FindByUserId(ctx, updateCommand.UserId)
	if err != nil {
		return nil, common.NewUpstream("failed to load updated score record", err)
	}
	if fresh == nil {
		return nil, common.NewDataIntegrity(fmt.Sprintf("score record for user %d vanished after update", updateCommand.UserId))
	}

	// Invalidation happens only after the write is durable, so a racing
	// reader cannot repopulate the cache with the old value.
	s.cache.Delete(ctx,
		infrastructure.UserKey(updateCommand.UserName),
		infrastructure.LeaderboardKey(updateCommand.TimerName),
	)

	return &command.UpdateScoreCommandResult{
		Message:      "Score updated successfully.",
		UpdatedScore: mapper.NewScoreResultFromEntity(fresh),
		Updated:      true,
	}, nil
}
