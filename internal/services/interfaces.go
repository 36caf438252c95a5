package services

import (
	"context"
	"time"

	"github.com/studyprep/exam-service/internal/models"
	"github.com/studyprep/exam-service/internal/repositories"
)

// ===== SERVICE INTERFACES =====

// QuestionSampler draws questions of one type at random from the bank.
type QuestionSampler interface {
	// Sample returns at most count questions of the given effective type,
	// uniformly at random without replacement. A bank with fewer eligible
	// questions than requested yields all of them; count 0 yields none.
	Sample(ctx context.Context, subjectID uint, questionType models.QuestionType, count int) ([]*models.Question, error)
}

// ExamAssembler builds ephemeral random exams according to the subject matrix.
type ExamAssembler interface {
	AssembleRandom(ctx context.Context, subjectIdentifier string) (*AssembledExamResponse, error)
}

// ExamService manages persisted fixed exams.
type ExamService interface {
	Create(ctx context.Context, req *CreateExamRequest) (*ExamResponse, error)
	GetByID(ctx context.Context, id uint) (*ExamResponse, error)
	ListBySubject(ctx context.Context, subjectIdentifier string, filters repositories.ExamFilters) ([]*ExamResponse, int64, error)
	Delete(ctx context.Context, id uint) error

	// DetachQuestion unlinks one question from a fixed exam without touching
	// the bank question itself. Detaching an absent question is a no-op.
	DetachQuestion(ctx context.Context, examID, questionID uint) error
}

// AttemptService scores and records completed exam sittings.
type AttemptService interface {
	Submit(ctx context.Context, req *SubmitAttemptRequest) (*AttemptResponse, error)
	GetByID(ctx context.Context, id uint) (*AttemptResponse, error)
	List(ctx context.Context, filters repositories.AttemptFilters) ([]*AttemptResponse, int64, error)
}

// AnalyticsService surfaces per-question and per-subject result statistics.
type AnalyticsService interface {
	GetQuestionStats(ctx context.Context, questionID uint) (*repositories.QuestionStats, error)
	GetSubjectStats(ctx context.Context, subjectIdentifier string) (*repositories.SubjectStats, error)
	ExportSubjectResults(ctx context.Context, subjectIdentifier string) ([]byte, error)
}

// ===== REQUEST STRUCTURES =====

// CreateExamRequest creates a fixed exam. A non-empty Questions list means
// manual selection; an empty one means random sampling to the matrix targets.
type CreateExamRequest struct {
	Subject   string `json:"subject" validate:"required"` // slug or id
	Title     string `json:"title" validate:"omitempty,max=200"`
	Duration  int    `json:"duration" validate:"omitempty,min=1,max=300"` // minutes
	Questions []uint `json:"questions"`
}

type SubmitAttemptRequest struct {
	Subject string            `json:"subject" validate:"required"` // slug or id
	UserID  uint              `json:"user_id" validate:"required"`
	Answers []SubmittedAnswer `json:"answers" validate:"required,min=1,dive"`
}

// SubmittedAnswer carries one raw answer: an option label or short text,
// or a JSON object of statement-label -> bool for true/false clusters.
type SubmittedAnswer struct {
	QuestionID     uint   `json:"question_id" validate:"required"`
	SelectedAnswer string `json:"selected_answer"`
}

// ===== RESPONSE STRUCTURES =====

// AssembledExamResponse describes an ephemeral random exam. It is never
// persisted; the payload is the whole artifact.
type AssembledExamResponse struct {
	Title          string             `json:"title"`
	Duration       int                `json:"duration"` // minutes
	TotalQuestions int                `json:"total_questions"`
	IsFullExam     bool               `json:"is_full_exam"`
	Questions      []*models.Question `json:"questions"`
}

type ExamResponse struct {
	ID             uint      `json:"id"`
	SubjectID      uint      `json:"subject_id"`
	Title          string    `json:"title"`
	Duration       int       `json:"duration"`
	TotalQuestions int       `json:"total_questions"`
	QuestionIDs    []uint    `json:"question_ids"`
	CreatedAt      time.Time `json:"created_at"`
}

type AttemptResponse struct {
	ID        uint             `json:"id"`
	SubjectID uint             `json:"subject_id"`
	UserID    uint             `json:"user_id"`
	Score     float64          `json:"score"` // 0-10 scale
	Total     int              `json:"total"`
	Answers   []AnsweredResult `json:"answers"`
	CreatedAt time.Time        `json:"created_at"`
}

type AnsweredResult struct {
	QuestionID     uint    `json:"question_id"`
	SelectedAnswer string  `json:"selected_answer"`
	IsCorrect      bool    `json:"is_correct"`
	Earned         float64 `json:"earned"`
	Max            float64 `json:"max"`
}
