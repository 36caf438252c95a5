package repositories

import (
	"context"

	"github.com/studyprep/exam-service/internal/models"
)

// SubjectRepository interface for subject lookup operations
type SubjectRepository interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetByID(ctx context.Context, id uint) (*models.Subject, error)
	GetBySlug(ctx context.Context, slug string) (*models.Subject, error)

	// GetBySlugOrID resolves request input that may be either a slug or a
	// numeric id.
	GetBySlugOrID(ctx context.Context, identifier string) (*models.Subject, error)

	List(ctx context.Context) ([]*models.Subject, error)
}
