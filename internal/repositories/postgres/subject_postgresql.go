package postgres

import (
	"context"
	"strconv"

	"github.com/studyprep/exam-service/internal/models"
	"github.com/studyprep/exam-service/internal/repositories"
	"gorm.io/gorm"
)

type SubjectPostgreSQL struct {
	db *gorm.DB
}

func NewSubjectPostgreSQL(db *gorm.DB) repositories.SubjectRepository {
	return &SubjectPostgreSQL{db: db}
}

func (s SubjectPostgreSQL) Create(ctx context.Context, subject *models.Subject) error {
	return s.db.WithContext(ctx).Create(subject).Error
}

func (s SubjectPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Subject, error) {
	var subject models.Subject
	if err := s.db.WithContext(ctx).First(&subject, id).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (s SubjectPostgreSQL) GetBySlug(ctx context.Context, slug string) (*models.Subject, error) {
	var subject models.Subject
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

func (s SubjectPostgreSQL) GetBySlugOrID(ctx context.Context, identifier string) (*models.Subject, error) {
	subject, err := s.GetBySlug(ctx, identifier)
	if err == nil {
		return subject, nil
	}
	if !repositories.IsNotFoundError(err) {
		return nil, err
	}

	id, parseErr := strconv.ParseUint(identifier, 10, 64)
	if parseErr != nil {
		// Not a slug and not numeric; keep the not-found from the slug lookup.
		return nil, err
	}
	return s.GetByID(ctx, uint(id))
}

func (s SubjectPostgreSQL) List(ctx context.Context) ([]*models.Subject, error) {
	var subjects []*models.Subject
	if err := s.db.WithContext(ctx).Order("slug").Find(&subjects).Error; err != nil {
		return nil, err
	}
	return subjects, nil
}
