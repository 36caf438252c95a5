package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/studyprep/exam-service/internal/models"
	"github.com/studyprep/exam-service/internal/repositories"
)

type questionSampler struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewQuestionSampler(repo repositories.Repository, logger *slog.Logger) QuestionSampler {
	return &questionSampler{
		repo:   repo,
		logger: logger,
	}
}

// Sample shuffles the full eligible pool and truncates, so every eligible
// question has the same chance and insertion order never leaks through.
// Concurrent draws are independent; overlapping picks across callers are
// accepted behavior.
func (s *questionSampler) Sample(ctx context.Context, subjectID uint, questionType models.QuestionType, count int) ([]*models.Question, error) {
	if count <= 0 {
		return []*models.Question{}, nil
	}

	pool, err := s.repo.Question().GetBySubjectAndType(ctx, subjectID, questionType)
	if err != nil {
		return nil, fmt.Errorf("failed to load question pool: %w", err)
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if len(pool) < count {
		// Designed shortage path: hand back everything we have.
		s.logger.Debug("Question bank shortage",
			"subject_id", subjectID,
			"question_type", questionType,
			"requested", count,
			"available", len(pool))
		return pool, nil
	}

	return pool[:count], nil
}
