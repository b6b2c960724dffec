package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/fyzanshaik/timer-game/internal/domain/entities"
	"github.com/fyzanshaik/timer-game/internal/domain/repositories"
)

type ScoreRepository struct {
	db *gorm.DB
}

func NewScoreRepository(db *gorm.DB) repositories.ScoreRepository {
	return &ScoreRepository{db: db}
}

func (r *ScoreRepository) Create(ctx context.Context, userId int64) (*entities.ScoreRecord, error) {
	scoreModel := ScoreModel{
		UserId: userId,
	}

	if err := r.db.WithContext(ctx).Create(&scoreModel).Error; err != nil {
		return nil, err
	}

	return r.mapToEntity(&scoreModel), nil
}

func (r *ScoreRepository) FindByUserId(ctx context.Context, userId int64) (*entities.ScoreRecord, error) {
	var scoreModel ScoreModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&scoreModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&scoreModel), nil
}

// UpdateScoreIfHigher runs the comparison inside the UPDATE itself, so two
// racing submissions can never overwrite a higher score with a lower one.
func (r *ScoreRepository) UpdateScoreIfHigher(ctx context.Context, userId int64, category entities.Category, value int) (bool, error) {
	column, ok := scoreColumns[category]
	if !ok {
		return false, fmt.Errorf("unknown score category %q", category)
	}

	result := r.db.WithContext(ctx).
		Model(&ScoreModel{}).
		Where(fmt.Sprintf("user_id = ? AND %s < ?", column), userId, value).
		Update(column, value)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *ScoreRepository) TopByCategory(ctx context.Context, category entities.Category, limit int) ([]entities.LeaderboardEntry, error) {
	column, ok := scoreColumns[category]
	if !ok {
		return nil, fmt.Errorf("unknown score category %q", category)
	}

	var entries []entities.LeaderboardEntry
	err := r.db.WithContext(ctx).
		Table("scores").
		Select(fmt.Sprintf("users.username AS username, scores.%s AS score", column)).
		Joins("JOIN users ON users.id = scores.user_id").
		Order(fmt.Sprintf("scores.%s DESC, scores.id ASC", column)).
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *ScoreRepository) mapToEntity(scoreModel *ScoreModel) *entities.ScoreRecord {
	return &entities.ScoreRecord{
		Id:     scoreModel.Id,
		UserId: scoreModel.UserId,
		Scores: map[entities.Category]int{
			entities.CategoryTimer1:  scoreModel.Timer1Score,
			entities.CategoryTimer5:  scoreModel.Timer5Score,
			entities.CategoryTimer10: scoreModel.Timer10Score,
			entities.CategoryTimer15: scoreModel.Timer15Score,
			entities.CategoryTimer30: scoreModel.Timer30Score,
		},
	}
}
