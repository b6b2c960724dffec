package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/fyzanshaik/timer-game/internal/application/services"
	"github.com/fyzanshaik/timer-game/internal/config"
	"github.com/fyzanshaik/timer-game/internal/delivery/handler"
	"github.com/fyzanshaik/timer-game/internal/infrastructure"
	"github.com/fyzanshaik/timer-game/internal/infrastructure/db/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := postgres.Connect(cfg.PostgreSQL)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL: ", err)
	}

	cache := infrastructure.NewRedisCache()
	defer cache.Close()

	userRepo := postgres.NewUserRepository(db)
	scoreRepo := postgres.NewScoreRepository(db)

	userService := services.NewUserService(userRepo, scoreRepo, cache, cfg.UserCacheTTL)
	scoreService := services.NewScoreService(userRepo, scoreRepo, cache)
	leaderboardService := services.NewLeaderboardService(scoreRepo, cache, cfg.LeaderboardCacheTTL, cfg.LeaderboardSize)

	h := handler.NewHandler(userService, scoreService, leaderboardService)

	e := echo.New()
	e.HideBanner = true
	h.Register(e, cfg.AllowedOrigins)

	log.Println("Server running on :" + cfg.Port)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
