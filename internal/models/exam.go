package models

import (
	"time"

	"gorm.io/gorm"
)

type ExamType string

const (
	// ExamFixed is the only persisted exam kind; randomly assembled exams
	// are ephemeral and live only in the assembly response.
	ExamFixed ExamType = "fixed"
)

type Exam struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	SubjectID uint     `json:"subject_id" gorm:"not null;index"`
	Type      ExamType `json:"type" gorm:"size:20;not null;default:fixed"`
	Title     string   `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Duration  int      `json:"duration" gorm:"not null" validate:"required,min=1,max=300"` // minutes

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Subject   Subject        `json:"-" gorm:"foreignKey:SubjectID"`
	Questions []ExamQuestion `json:"questions" gorm:"foreignKey:ExamID"`
}

func (Exam) TableName() string {
	return "exams"
}

// ExamQuestion links a fixed exam to one bank question, preserving order.
type ExamQuestion struct {
	ID         uint `json:"id" gorm:"primaryKey"`
	ExamID     uint `json:"exam_id" gorm:"not null;index:idx_exam_question,unique"`
	QuestionID uint `json:"question_id" gorm:"not null;index:idx_exam_question,unique"`
	Position   int  `json:"position" gorm:"not null"`

	Question Question `json:"-" gorm:"foreignKey:QuestionID"`
}

func (ExamQuestion) TableName() string {
	return "exam_questions"
}
