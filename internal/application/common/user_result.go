package common

// UserCheckResult is the full identity-check response. It is also the exact
// payload cached under user:<username>, so a cache hit replays it verbatim.
type UserCheckResult struct {
	Message  string         `json:"message,omitempty"`
	Id       int64          `json:"id"`
	Username string         `json:"username"`
	Scores   []*ScoreResult `json:"scores"`
}

type ScoreResult struct {
	Id           int64 `json:"id"`
	UserId       int64 `json:"userId"`
	Timer1Score  int   `json:"timer1Score"`
	Timer5Score  int   `json:"timer5Score"`
	Timer10Score int   `json:"timer10Score"`
	Timer15Score int   `json:"timer15Score"`
	Timer30Score int   `json:"timer30Score"`
}

type LeaderboardEntryResult struct {
	Username string `json:"username"`
	Score    int    `json:"score"`
}
