package repositories

import (
	"context"

	"github.com/studyprep/exam-service/internal/models"
)

// AttemptRepository interface for completed attempt operations
type AttemptRepository interface {
	// Create persists an attempt together with its answer rows in one write.
	Create(ctx context.Context, attempt *models.Attempt) error
	GetByID(ctx context.Context, id uint) (*models.Attempt, error)
	GetByIDWithAnswers(ctx context.Context, id uint) (*models.Attempt, error)
	Delete(ctx context.Context, id uint) error

	// Query operations
	List(ctx context.Context, filters AttemptFilters) ([]*models.Attempt, int64, error)
	GetByUser(ctx context.Context, userID uint, filters AttemptFilters) ([]*models.Attempt, int64, error)

	// Analytics
	GetSubjectStats(ctx context.Context, subjectID uint) (*SubjectStats, error)
	GetBySubject(ctx context.Context, subjectID uint) ([]*models.Attempt, error)
}
