package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Register wires middleware and the public routes. The base path matches the
// client: /api/users carries both the identity and score operations.
func (h *Handler) Register(e *echo.Echo, allowedOrigins []string) {
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.New().String() },
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: true,
	}))
	e.Use(h.rateLimit)
	e.Use(h.trackMetrics)

	e.GET("/", h.Root)
	e.GET("/metrics", h.GetMetrics)

	api := e.Group("/api/users")
	api.POST("/userCheck", h.UserCheck)
	api.POST("/updateScore", h.UpdateScore)
	api.GET("/leaderboard/:timerName", h.Leaderboard)
}
