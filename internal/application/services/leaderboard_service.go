package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/fyzanshaik/timer-game/internal/application/common"
	"github.com/fyzanshaik/timer-game/internal/application/interfaces"
	"github.com/fyzanshaik/timer-game/internal/application/mapper"
	"github.com/fyzanshaik/timer-game/internal/application/query"
	"github.com/fyzanshaik/timer-game/internal/domain/entities"
	"github.com/fyzanshaik/timer-game/internal/domain/repositories"
	"github.com/fyzanshaik/timer-game/internal/infrastructure"
)

type LeaderboardService struct {
	scoreRepo repositories.ScoreRepository
	cache     infrastructure.Cache
	cacheTTL  time.Duration
	size      int
}

func NewLeaderboardService(
	scoreRepo repositories.ScoreRepository,
	cache infrastructure.Cache,
	cacheTTL time.Duration,
	size int,
) interfaces.LeaderboardService {
	return &LeaderboardService{
		scoreRepo: scoreRepo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		size:      size,
	}
}

// GetLeaderboard serves the top-N for a category, cache-aside. On a miss the
// ranking is recomputed from persisted state, never maintained incrementally,
// so staleness is bounded by the TTL plus pending invalidations.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context, timerName string) (*query.LeaderboardQueryResult, error) {
	category, ok := entities.ParseCategory(timerName)
	if !ok {
		return nil, common.NewInvalidInput("Invalid timer name.")
	}

	cacheKey := infrastructure.LeaderboardKey(timerName)
	if payload, ok := s.cache.Get(ctx, cacheKey); ok {
		var cached []*common.LeaderboardEntryResult
		if err := json.Unmarshal(payload, &cached); err == nil {
			log.Printf("Serving from cache: leaderboard %s", timerName)
			return &query.LeaderboardQueryResult{Entries: cached}, nil
		}
	}

	rows, err := s.scoreRepo.TopByCategory(ctx, category, s.size)
	if err != nil {
		return nil, common.NewUpstream("failed to load leaderboard", err)
	}

	entries := mapper.NewLeaderboardEntryResults(rows)

	payload, err := json.Marshal(entries)
	if err != nil {
		log.Printf("Failed to serialize leaderboard cache entry: %v", err)
	} else {
		s.cache.Set(ctx, cacheKey, payload, s.cacheTTL)
	}

	return &query.LeaderboardQueryResult{Entries: entries}, nil
}
