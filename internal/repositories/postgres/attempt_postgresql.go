package postgres

import (
	"context"

	"github.com/studyprep/exam-service/internal/models"
	"github.com/studyprep/exam-service/internal/repositories"
	"gorm.io/gorm"
)

type AttemptPostgreSQL struct {
	db *gorm.DB
}

func NewAttemptPostgreSQL(db *gorm.DB) repositories.AttemptRepository {
	return &AttemptPostgreSQL{db: db}
}

func (a AttemptPostgreSQL) Create(ctx context.Context, attempt *models.Attempt) error {
	// Answer rows are created through the association, one insert batch.
	return a.db.WithContext(ctx).Create(attempt).Error
}

func (a AttemptPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Attempt, error) {
	var attempt models.Attempt
	if err := a.db.WithContext(ctx).First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (a AttemptPostgreSQL) GetByIDWithAnswers(ctx context.Context, id uint) (*models.Attempt, error) {
	var attempt models.Attempt
	if err := a.db.WithContext(ctx).
		Preload("Answers").
		First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (a AttemptPostgreSQL) Delete(ctx context.Context, id uint) error {
	return a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attempt_id = ?", id).Delete(&models.AttemptAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Attempt{}, id).Error
	})
}

func (a AttemptPostgreSQL) List(ctx context.Context, filters repositories.AttemptFilters) ([]*models.Attempt, int64, error) {
	var attempts []*models.Attempt
	var total int64

	query := a.db.WithContext(ctx).Model(&models.Attempt{})
	if filters.SubjectID != nil {
		query = query.Where("subject_id = ?", *filters.SubjectID)
	}
	if filters.UserID != nil {
		query = query.Where("user_id = ?", *filters.UserID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC")
	if filters.Limit > 0 {
		query = query.Limit(filters.Limit).Offset(filters.Offset)
	}

	if err := query.Find(&attempts).Error; err != nil {
		return nil, 0, err
	}
	return attempts, total, nil
}

func (a AttemptPostgreSQL) GetByUser(ctx context.Context, userID uint, filters repositories.AttemptFilters) ([]*models.Attempt, int64, error) {
	filters.UserID = &userID
	return a.List(ctx, filters)
}

func (a AttemptPostgreSQL) GetBySubject(ctx context.Context, subjectID uint) ([]*models.Attempt, error) {
	var attempts []*models.Attempt
	if err := a.db.WithContext(ctx).
		Where("subject_id = ?", subjectID).
		Order("created_at").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (a AttemptPostgreSQL) GetSubjectStats(ctx context.Context, subjectID uint) (*repositories.SubjectStats, error) {
	stats := &repositories.SubjectStats{SubjectID: subjectID}

	var count int64
	query := a.db.WithContext(ctx).Model(&models.Attempt{}).Where("subject_id = ?", subjectID)
	if err := query.Count(&count).Error; err != nil {
		return nil, err
	}
	stats.AttemptCount = int(count)
	if count == 0 {
		return stats, nil
	}

	row := a.db.WithContext(ctx).
		Model(&models.Attempt{}).
		Select("AVG(score), MAX(score), MIN(score)").
		Where("subject_id = ?", subjectID).
		Row()
	if err := row.Scan(&stats.AverageScore, &stats.HighestScore, &stats.LowestScore); err != nil {
		return nil, err
	}
	return stats, nil
}
