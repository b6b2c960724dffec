package query

import "github.com/fyzanshaik/timer-game/internal/application/common"

type LeaderboardQueryResult struct {
	Entries []*common.LeaderboardEntryResult
}
