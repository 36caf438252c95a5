package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/studyprep/exam-service/internal/matrix"
	"github.com/studyprep/exam-service/internal/models"
	"github.com/studyprep/exam-service/internal/repositories"
)

// sectionOrder is the fixed concatenation order of the assembled exam.
// Clients rely on it to present Part I / II / III.
var sectionOrder = []models.QuestionType{
	models.MultipleChoice,
	models.TrueFalse,
	models.ShortAnswer,
}

// reviewBufferMinutes is added once, flat, when a degraded exam's duration
// is recomputed from actual question counts.
const reviewBufferMinutes = 2

type examAssembler struct {
	repo    repositories.Repository
	matrix  *matrix.Registry
	sampler QuestionSampler
	logger  *slog.Logger
}

func NewExamAssembler(repo repositories.Repository, registry *matrix.Registry, sampler QuestionSampler, logger *slog.Logger) ExamAssembler {
	return &examAssembler{
		repo:    repo,
		matrix:  registry,
		sampler: sampler,
		logger:  logger,
	}
}

func (s *examAssembler) AssembleRandom(ctx context.Context, subjectIdentifier string) (*AssembledExamResponse, error) {
	subject, err := s.repo.Subject().GetBySlugOrID(ctx, subjectIdentifier)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("failed to resolve subject: %w", err)
	}

	entry := s.matrix.Entry(subject.Slug)

	var questions []*models.Question
	got := map[models.QuestionType]int{}
	for _, questionType := range sectionOrder {
		sampled, err := s.sampler.Sample(ctx, subject.ID, questionType, entry.Count(questionType))
		if err != nil {
			return nil, err
		}
		got[questionType] = len(sampled)
		questions = append(questions, sampled...)
	}

	total := len(questions)
	if total == 0 {
		return nil, ErrEmptyBank
	}

	required := entry.Required()
	if total < required {
		duration := s.recomputeDuration(subject.Slug, got)
		s.logger.Warn("Assembled degraded exam",
			"subject", subject.Slug,
			"required", required,
			"got", total,
			"duration", duration)

		return &AssembledExamResponse{
			Title:          fmt.Sprintf("%s practice set (%d questions)", subject.Name, total),
			Duration:       duration,
			TotalQuestions: total,
			IsFullExam:     false,
			Questions:      questions,
		}, nil
	}

	s.logger.Info("Assembled random exam",
		"subject", subject.Slug,
		"total_questions", total,
		"duration", entry.Duration)

	return &AssembledExamResponse{
		Title:          fmt.Sprintf("%s random exam", subject.Name),
		Duration:       entry.Duration,
		TotalQuestions: total,
		IsFullExam:     true,
		Questions:      questions,
	}, nil
}

// recomputeDuration rebuilds a duration from the counts actually sampled,
// rounding up so a shortened exam is never under-allotted, plus a flat
// review buffer.
func (s *examAssembler) recomputeDuration(slug string, got map[models.QuestionType]int) int {
	perQuestion := s.matrix.TimePerQuestion(slug)

	var minutes float64
	for questionType, count := range got {
		minutes += float64(count) * perQuestion.Minutes(questionType)
	}
	return int(math.Ceil(minutes)) + reviewBufferMinutes
}
