package mapper

import (
	"github.com/fyzanshaik/timer-game/internal/application/common"
	"github.com/fyzanshaik/timer-game/internal/domain/entities"
)

func NewScoreResultFromEntity(record *entities.ScoreRecord) *common.ScoreResult {
	return &common.ScoreResult{
		Id:           record.Id,
		UserId:       record.UserId,
		Timer1Score:  record.Score(entities.CategoryTimer1),
		Timer5Score:  record.Score(entities.CategoryTimer5),
		Timer10Score: record.Score(entities.CategoryTimer10),
		Timer15Score: record.Score(entities.CategoryTimer15),
		Timer30Score: record.Score(entities.CategoryTimer30),
	}
}

func NewUserCheckResultFromEntities(user *entities.User, record *entities.ScoreRecord, message string) *common.UserCheckResult {
	return &common.UserCheckResult{
		Message:  message,
		Id:       user.Id,
		Username: user.Username,
		Scores:   []*common.ScoreResult{NewScoreResultFromEntity(record)},
	}
}

func NewLeaderboardEntryResults(entries []entities.LeaderboardEntry) []*common.LeaderboardEntryResult {
	results := make([]*common.LeaderboardEntryResult, 0, len(entries))
	for _, entry := range entries {
		results = append(results, &common.LeaderboardEntryResult{
			Username: entry.Username,
			Score:    entry.Score,
		})
	}
	return results
}
