package models

import (
	"time"
)

// Attempt is one completed exam sitting. It is written exactly once, at
// submission, and never updated afterwards.
type Attempt struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	SubjectID uint `json:"subject_id" gorm:"not null;index"`
	UserID    uint `json:"user_id" gorm:"not null;index"`

	Score float64 `json:"score" gorm:"not null"` // 0-10 scale
	Total int     `json:"total" gorm:"not null"` // question count

	CreatedAt time.Time `json:"created_at"`

	Subject Subject         `json:"-" gorm:"foreignKey:SubjectID"`
	Answers []AttemptAnswer `json:"answers" gorm:"foreignKey:AttemptID"`
}

func (Attempt) TableName() string {
	return "attempts"
}

type AttemptAnswer struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	AttemptID uint `json:"attempt_id" gorm:"not null;index"`

	QuestionID uint `json:"question_id" gorm:"not null;index"`

	// Raw submitted answer: an option label or short text, or a JSON object
	// of statement-label -> bool for true/false clusters.
	SelectedAnswer string `json:"selected_answer" gorm:"type:text"`

	// IsCorrect means full credit only; partial true/false credit still
	// counts as incorrect here. This flag feeds per-question analytics.
	IsCorrect bool    `json:"is_correct" gorm:"not null"`
	Earned    float64 `json:"earned" gorm:"not null"`
	Max       float64 `json:"max" gorm:"not null"`
}

func (AttemptAnswer) TableName() string {
	return "attempt_answers"
}
