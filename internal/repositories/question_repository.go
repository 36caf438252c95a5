package repositories

import (
	"context"

	"github.com/studyprep/exam-service/internal/models"
)

// QuestionRepository interface for question bank operations
type QuestionRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, question *models.Question) error
	GetByID(ctx context.Context, id uint) (*models.Question, error)
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id uint) error

	// Bulk operations
	CreateBatch(ctx context.Context, questions []*models.Question) error
	GetByIDs(ctx context.Context, ids []uint) ([]*models.Question, error)

	// GetBySubjectAndType returns every bank question of the subject whose
	// effective type matches; legacy rows with a null/empty type count as
	// multiple choice.
	GetBySubjectAndType(ctx context.Context, subjectID uint, questionType models.QuestionType) ([]*models.Question, error)

	// Analytics
	GetQuestionStats(ctx context.Context, questionID uint) (*QuestionStats, error)
}
