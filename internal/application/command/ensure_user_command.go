package command

import "github.com/fyzanshaik/timer-game/internal/application/common"

type EnsureUserCommand struct {
	UserName string `json:"userName"`
}

type EnsureUserCommandResult struct {
	Result *common.UserCheckResult
	// Created distinguishes a fresh user/score pair from an existing one, so
	// the transport can answer 201 vs 200.
	Created bool
}
