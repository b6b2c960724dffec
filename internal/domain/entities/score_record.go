package entities

// ScoreRecord holds a user's best result per timer category. Exactly one
// record exists per user; each category value only ever moves upward.
type ScoreRecord struct {
	Id     int64
	UserId int64
	Scores map[Category]int
}

func NewScoreRecord(userId int64) *ScoreRecord {
	scores := make(map[Category]int, len(Categories()))
	for _, category := range Categories() {
		scores[category] = 0
	}
	return &ScoreRecord{
		UserId: userId,
		Scores: scores,
	}
}

// Score returns the stored value for a category, defaulting to 0.
func (r *ScoreRecord) Score(category Category) int {
	return r.Scores[category]
}

// LeaderboardEntry is one ranked row for a single category. Derived from
// persisted records, never stored.
type LeaderboardEntry struct {
	Username string
	Score    int
}
