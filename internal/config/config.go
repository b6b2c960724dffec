package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	Port       string
	PostgreSQL string

	// Identity entries absorb read bursts for an hour; leaderboard entries
	// self-heal within five minutes after a missed invalidation.
	UserCacheTTL        time.Duration
	LeaderboardCacheTTL time.Duration

	LeaderboardSize int
	AllowedOrigins  []string
}

func Load() *Config {
	return &Config{
		Port:                EnvString("PORT", "8080"),
		PostgreSQL:          os.Getenv("PostgreSQL"),
		UserCacheTTL:        EnvDuration("USER_CACHE_TTL", time.Hour),
		LeaderboardCacheTTL: EnvDuration("LEADERBOARD_CACHE_TTL", 5*time.Minute),
		LeaderboardSize:     EnvInt("LEADERBOARD_SIZE", 10),
		AllowedOrigins:      strings.Split(EnvString("CORS_ORIGINS", "http://localhost:5173"), ","),
	}
}
