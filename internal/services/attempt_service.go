package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/studyprep/exam-service/internal/cache"
	"github.com/studyprep/exam-service/internal/events"
	"github.com/studyprep/exam-service/internal/models"
	"github.com/studyprep/exam-service/internal/repositories"
	"github.com/studyprep/exam-service/internal/utils"
)

type attemptService struct {
	repo      repositories.Repository
	publisher events.EventPublisher
	cache     cache.CacheService
	logger    *slog.Logger
	validator *utils.Validator
}

func NewAttemptService(repo repositories.Repository, publisher events.EventPublisher, cacheService cache.CacheService, logger *slog.Logger, validator *utils.Validator) AttemptService {
	return &attemptService{
		repo:      repo,
		publisher: publisher,
		cache:     cacheService,
		logger:    logger,
		validator: validator,
	}
}

// Submit scores a completed sitting and persists it in a single write. Each
// answer is graded independently; a malformed or unknown answer earns zero
// and never aborts the rest of the submission.
func (s *attemptService) Submit(ctx context.Context, req *SubmitAttemptRequest) (*AttemptResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	subject, err := s.repo.Subject().GetBySlugOrID(ctx, req.Subject)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrSubjectNotFound
		}
		return nil, fmt.Errorf("failed to resolve subject: %w", err)
	}

	questionIDs := make([]uint, 0, len(req.Answers))
	for _, answer := range req.Answers {
		questionIDs = append(questionIDs, answer.QuestionID)
	}
	questions, err := s.repo.Question().GetByIDs(ctx, questionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	byID := make(map[uint]*models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	attempt := &models.Attempt{
		SubjectID: subject.ID,
		UserID:    req.UserID,
		Total:     len(req.Answers),
	}

	for _, submitted := range req.Answers {
		question, ok := byID[submitted.QuestionID]
		if !ok {
			// Question was deleted (or never existed); record the answer
			// with no credit rather than rejecting the whole submission.
			attempt.Answers = append(attempt.Answers, models.AttemptAnswer{
				QuestionID:     submitted.QuestionID,
				SelectedAnswer: submitted.SelectedAnswer,
			})
			continue
		}

		score := ScoreQuestion(question, submitted.SelectedAnswer)
		attempt.Score += score.Earned
		attempt.Answers = append(attempt.Answers, models.AttemptAnswer{
			QuestionID:     submitted.QuestionID,
			SelectedAnswer: submitted.SelectedAnswer,
			IsCorrect:      score.FullCredit(),
			Earned:         score.Earned,
			Max:            score.Max,
		})
	}

	if err := s.repo.Attempt().Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("failed to create attempt: %w", err)
	}

	s.logger.Info("Attempt scored",
		"attempt_id", attempt.ID,
		"subject", subject.Slug,
		"user_id", req.UserID,
		"score", attempt.Score,
		"total", attempt.Total)

	// Downstream consumers and cached analytics are best-effort; the
	// attempt is already committed.
	event := &events.AttemptScoredEvent{
		AttemptID:   attempt.ID,
		SubjectID:   subject.ID,
		Subject:     subject.Slug,
		UserID:      req.UserID,
		Score:       attempt.Score,
		Total:       attempt.Total,
		SubmittedAt: time.Now(),
	}
	if err := s.publisher.PublishAttemptScored(ctx, event); err != nil {
		s.logger.Warn("Failed to publish attempt event", "attempt_id", attempt.ID, "error", err)
	}
	if err := s.cache.DeletePattern(ctx, fmt.Sprintf("analytics:subject:%d*", subject.ID)); err != nil {
		s.logger.Warn("Failed to invalidate analytics cache", "subject_id", subject.ID, "error", err)
	}

	return toAttemptResponse(attempt), nil
}

func (s *attemptService) GetByID(ctx context.Context, id uint) (*AttemptResponse, error) {
	attempt, err := s.repo.Attempt().GetByIDWithAnswers(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrAttemptNotFound
		}
		return nil, fmt.Errorf("failed to get attempt: %w", err)
	}
	return toAttemptResponse(attempt), nil
}

func (s *attemptService) List(ctx context.Context, filters repositories.AttemptFilters) ([]*AttemptResponse, int64, error) {
	attempts, total, err := s.repo.Attempt().List(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attempts: %w", err)
	}

	responses := make([]*AttemptResponse, 0, len(attempts))
	for _, attempt := range attempts {
		responses = append(responses, toAttemptResponse(attempt))
	}
	return responses, total, nil
}

func toAttemptResponse(attempt *models.Attempt) *AttemptResponse {
	resp := &AttemptResponse{
		ID:        attempt.ID,
		SubjectID: attempt.SubjectID,
		UserID:    attempt.UserID,
		Score:     attempt.Score,
		Total:     attempt.Total,
		CreatedAt: attempt.CreatedAt,
	}
	for _, answer := range attempt.Answers {
		resp.Answers = append(resp.Answers, AnsweredResult{
			QuestionID:     answer.QuestionID,
			SelectedAnswer: answer.SelectedAnswer,
			IsCorrect:      answer.IsCorrect,
			Earned:         answer.Earned,
			Max:            answer.Max,
		})
	}
	return resp
}
