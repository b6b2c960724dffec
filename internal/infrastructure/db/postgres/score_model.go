package postgres

import "github.com/fyzanshaik/timer-game/internal/domain/entities"

type ScoreModel struct {
	Id           int64      `gorm:"primaryKey;autoIncrement"`
	UserId       int64      `gorm:"column:user_id;uniqueIndex;not null"`
	User         *UserModel `gorm:"foreignKey:UserId;references:Id"`
	Timer1Score  int        `gorm:"column:timer1_score;not null;default:0"`
	Timer5Score  int        `gorm:"column:timer5_score;not null;default:0"`
	Timer10Score int        `gorm:"column:timer10_score;not null;default:0"`
	Timer15Score int        `gorm:"column:timer15_score;not null;default:0"`
	Timer30Score int        `gorm:"column:timer30_score;not null;default:0"`
}

func (ScoreModel) TableName() string {
	return "scores"
}

// scoreColumns maps the closed category enumeration onto score columns. Only
// values from this map ever reach a query string.
var scoreColumns = map[entities.Category]string{
	entities.CategoryTimer1:  "timer1_score",
	entities.CategoryTimer5:  "timer5_score",
	entities.CategoryTimer10: "timer10_score",
	entities.CategoryTimer15: "timer15_score",
	entities.CategoryTimer30: "timer30_score",
}
