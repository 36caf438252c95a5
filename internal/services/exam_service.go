package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/studyprep/exam-service/internal/matrix"
	"github.com/studyprep/exam-service/internal/models"
	"github.com/studyprep/exam-service/internal/repositories"
	"github.com/studyprep/exam-service/internal/utils"
)

type examService struct {
	repo      repositories.Repository
	matrix    *matrix.Registry
	sampler   QuestionSampler
	logger    *slog.Logger
	validator *utils.Validator
}

func NewExamService(repo repositories.Repository, registry *matrix.Registry, sampler QuestionSampler, logger *slog.Logger, validator *utils.Validator) ExamService {
	return &examService{
		repo:      repo,
		matrix:    registry,
		sampler:   sampler,
		logger:    logger,
		validator: validator,
	}
}

// Create persists a fixed exam. A request carrying question ids pins exactly
// that selection; without them the question list is sampled to the subject's
// matrix targets. Either way no structural validation is enforced here - a
// curated exam may deviate from the matrix on purpose.
func (s *examService) Create(ctx context.Context, req *CreateExamRequest) (*ExamResponse, error) {
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

	questionIDs := req.Questions
	if len(questionIDs) == 0 {
		questionIDs, err = s.sampleToMatrix(ctx, subject)
		if err != nil {
			return nil, err
		}
	}
	if len(questionIDs) == 0 {
		return nil, ErrInsufficientQuestions
	}

	entry := s.matrix.Entry(subject.Slug)

	title := req.Title
	if title == "" {
		title = fmt.Sprintf("%s exam (%d questions)", subject.Name, len(questionIDs))
	}
	duration := req.Duration
	if duration == 0 {
		duration = entry.Duration
	}

	exam := &models.Exam{
		SubjectID: subject.ID,
		Type:      models.ExamFixed,
		Title:     title,
		Duration:  duration,
	}
	for i, questionID := range questionIDs {
		exam.Questions = append(exam.Questions, models.ExamQuestion{
			QuestionID: questionID,
			Position:   i + 1,
		})
	}

	if err := s.repo.Exam().Create(ctx, exam); err != nil {
		return nil, fmt.Errorf("failed to create exam: %w", err)
	}

	s.logger.Info("Fixed exam created",
		"exam_id", exam.ID,
		"subject", subject.Slug,
		"questions", len(questionIDs))

	return toExamResponse(exam), nil
}

// sampleToMatrix draws each section independently and keeps whatever the
// bank could supply, in section order.
func (s *examService) sampleToMatrix(ctx context.Context, subject *models.Subject) ([]uint, error) {
	entry := s.matrix.Entry(subject.Slug)

	var ids []uint
	for _, questionType := range sectionOrder {
		sampled, err := s.sampler.Sample(ctx, subject.ID, questionType, entry.Count(questionType))
		if err != nil {
			return nil, err
		}
		for _, q := range sampled {
			ids = append(ids, q.ID)
		}
	}
	return ids, nil
}

func (s *examService) GetByID(ctx context.Context, id uint) (*ExamResponse, error) {
	exam, err := s.repo.Exam().GetByIDWithQuestions(ctx, id)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, ErrExamNotFound
		}
		return nil, fmt.Errorf("failed to get exam: %w", err)
	}
	return toExamResponse(exam), nil
}

func (s *examService) ListBySubject(ctx context.Context, subjectIdentifier string, filters repositories.ExamFilters) ([]*ExamResponse, int64, error) {
	subject, err := s.repo.Subject().GetBySlugOrID(ctx, subjectIdentifier)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return nil, 0, ErrSubjectNotFound
		}
		return nil, 0, fmt.Errorf("failed to resolve subject: %w", err)
	}

	exams, total, err := s.repo.Exam().GetBySubject(ctx, subject.ID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list exams: %w", err)
	}

	responses := make([]*ExamResponse, 0, len(exams))
	for _, exam := range exams {
		responses = append(responses, toExamResponse(exam))
	}
	return responses, total, nil
}

func (s *examService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.Exam().GetByID(ctx, id); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrExamNotFound
		}
		return fmt.Errorf("failed to get exam: %w", err)
	}
	if err := s.repo.Exam().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete exam: %w", err)
	}

	s.logger.Info("Fixed exam deleted", "exam_id", id)
	return nil
}

// DetachQuestion unlinks one question from a fixed exam. The removal is a
// single atomic statement and is idempotent; only a missing exam is an error.
func (s *examService) DetachQuestion(ctx context.Context, examID, questionID uint) error {
	if _, err := s.repo.Exam().GetByID(ctx, examID); err != nil {
		if repositories.IsNotFoundError(err) {
			return ErrExamNotFound
		}
		return fmt.Errorf("failed to get exam: %w", err)
	}

	if err := s.repo.Exam().PullQuestion(ctx, examID, questionID); err != nil {
		return fmt.Errorf("failed to detach question: %w", err)
	}

	s.logger.Info("Question detached from exam",
		"exam_id", examID,
		"question_id", questionID)
	return nil
}

func toExamResponse(exam *models.Exam) *ExamResponse {
	resp := &ExamResponse{
		ID:             exam.ID,
		SubjectID:      exam.SubjectID,
		Title:          exam.Title,
		Duration:       exam.Duration,
		TotalQuestions: len(exam.Questions),
		CreatedAt:      exam.CreatedAt,
	}
	for _, link := range exam.Questions {
		resp.QuestionIDs = append(resp.QuestionIDs, link.QuestionID)
	}
	return resp
}
