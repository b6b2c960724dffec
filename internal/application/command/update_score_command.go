package command

import "github.com/fyzanshaik/timer-game/internal/application/common"

type UpdateScoreCommand struct {
	UserId    int64  `json:"userId"`
	UserName  string `json:"userName"`
	TimerName string `json:"timerName"`
	NewScore  int    `json:"newScore"`
}

type UpdateScoreCommandResult struct {
	Message      string              `json:"message"`
	UpdatedScore *common.ScoreResult `json:"updatedScore,omitempty"`
	// Updated is false for the common not-higher case, which is a normal
	// outcome rather than an error.
	Updated bool `json:"-"`
}
