package infrastructure

import (
	"context"
	"time"
)

// Cache is a best-effort accelerator in front of the store. A failing cache
// must never fail the caller: reads degrade to a miss, writes and deletes
// degrade to a no-op. Losing an entry only costs latency, never data.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
}

// Exactly two key families exist: the identity-check response per username,
// and the serialized top-N list per category. Every store mutation that can
// affect either family invalidates through these builders.

func UserKey(username string) string {
	return "user:" + username
}

func LeaderboardKey(timerName string) string {
	return "leaderboard:" + timerName
}
