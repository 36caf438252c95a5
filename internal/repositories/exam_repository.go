package repositories

import (
	"context"

	"github.com/studyprep/exam-service/internal/models"
)

// ExamRepository interface for fixed exam operations
type ExamRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, exam *models.Exam) error
	GetByID(ctx context.Context, id uint) (*models.Exam, error)
	GetByIDWithQuestions(ctx context.Context, id uint) (*models.Exam, error)
	Delete(ctx context.Context, id uint) error

	// Query operations
	GetBySubject(ctx context.Context, subjectID uint, filters ExamFilters) ([]*models.Exam, int64, error)

	// PullQuestion removes one question link from an exam as a single
	// atomic statement. Removing an absent link is not an error.
	PullQuestion(ctx context.Context, examID, questionID uint) error
}
