package postgres

import (
	"context"

	"github.com/studyprep/exam-service/internal/models"
	"github.com/studyprep/exam-service/internal/repositories"
	"gorm.io/gorm"
)

type QuestionPostgreSQL struct {
	db *gorm.DB
}

func NewQuestionPostgreSQL(db *gorm.DB) repositories.QuestionRepository {
	return &QuestionPostgreSQL{db: db}
}

func (q QuestionPostgreSQL) Create(ctx context.Context, question *models.Question) error {
	return q.db.WithContext(ctx).Create(question).Error
}

func (q QuestionPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Question, error) {
	var question models.Question
	if err := q.db.WithContext(ctx).First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (q QuestionPostgreSQL) Update(ctx context.Context, question *models.Question) error {
	return q.db.WithContext(ctx).Save(question).Error
}

func (q QuestionPostgreSQL) Delete(ctx context.Context, id uint) error {
	return q.db.WithContext(ctx).Delete(&models.Question{}, id).Error
}

func (q QuestionPostgreSQL) CreateBatch(ctx context.Context, questions []*models.Question) error {
	return q.db.WithContext(ctx).Create(questions).Error
}

func (q QuestionPostgreSQL) GetByIDs(ctx context.Context, ids []uint) ([]*models.Question, error) {
	var questions []*models.Question
	if len(ids) == 0 {
		return questions, nil
	}
	if err := q.db.WithContext(ctx).Where("id IN ?", ids).Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (q QuestionPostgreSQL) GetBySubjectAndType(ctx context.Context, subjectID uint, questionType models.QuestionType) ([]*models.Question, error) {
	var questions []*models.Question

	query := q.db.WithContext(ctx).Where("subject_id = ?", subjectID)
	if questionType == models.MultipleChoice {
		// Legacy rows predate the type column and are multiple choice.
		query = query.Where("type = ? OR type IS NULL OR type = ''", questionType)
	} else {
		query = query.Where("type = ?", questionType)
	}

	if err := query.Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (q QuestionPostgreSQL) GetQuestionStats(ctx context.Context, questionID uint) (*repositories.QuestionStats, error) {
	stats := &repositories.QuestionStats{QuestionID: questionID}

	row := q.db.WithContext(ctx).
		Model(&models.AttemptAnswer{}).
		Select("COUNT(*) AS usage_count, COUNT(*) FILTER (WHERE is_correct) AS correct_count").
		Where("question_id = ?", questionID).
		Row()
	if err := row.Scan(&stats.UsageCount, &stats.CorrectCount); err != nil {
		return nil, err
	}

	if stats.UsageCount > 0 {
		stats.CorrectRate = float64(stats.CorrectCount) / float64(stats.UsageCount)
	}
	return stats, nil
}
