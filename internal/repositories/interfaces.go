package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Repository aggregates the per-entity repositories so services depend on
// one injected value.
type Repository interface {
	Subject() SubjectRepository
	Question() QuestionRepository
	Exam() ExamRepository
	Attempt() AttemptRepository
}

// ===== SHARED FILTER STRUCTS =====

type ExamFilters struct {
	SubjectID *uint  `json:"subject_id"`
	Limit     int    `json:"limit"`
	Offset    int    `json:"offset"`
	SortBy    string `json:"sort_by"`    // "created_at", "title"
	SortOrder string `json:"sort_order"` // "asc", "desc"
}

type AttemptFilters struct {
	SubjectID *uint `json:"subject_id"`
	UserID    *uint `json:"user_id"`
	Limit     int   `json:"limit"`
	Offset    int   `json:"offset"`
}

// ===== SHARED STATISTICS STRUCTS =====

type QuestionStats struct {
	QuestionID   uint    `json:"question_id"`
	UsageCount   int     `json:"usage_count"`
	CorrectCount int     `json:"correct_count"`
	CorrectRate  float64 `json:"correct_rate"`
}

type SubjectStats struct {
	SubjectID    uint    `json:"subject_id"`
	AttemptCount int     `json:"attempt_count"`
	AverageScore float64 `json:"average_score"`
	HighestScore float64 `json:"highest_score"`
	LowestScore  float64 `json:"lowest_score"`
}

// IsNotFoundError reports whether err means the requested row does not exist.
func IsNotFoundError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
