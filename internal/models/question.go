package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionType string

const (
	MultipleChoice QuestionType = "multiple_choice"
	TrueFalse      QuestionType = "true_false"
	ShortAnswer    QuestionType = "short_answer"
)

type Question struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	SubjectID uint `json:"subject_id" gorm:"not null;index"`

	// Empty for legacy rows; EffectiveType resolves those to multiple_choice.
	Type QuestionType `json:"type" gorm:"size:30;index" validate:"omitempty,question_type"`

	Text         string  `json:"text" gorm:"type:text;not null" validate:"required"`
	ImageURL     *string `json:"image_url" gorm:"size:500"`
	Explanation  *string `json:"explanation" gorm:"type:text"`
	GroupContext *string `json:"group_context" gorm:"type:text"`

	// Type-specific answer key, shape given by the content structs below.
	Content datatypes.JSON `json:"content" gorm:"type:jsonb;not null"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	Subject Subject `json:"-" gorm:"foreignKey:SubjectID"`
}

func (Question) TableName() string {
	return "questions"
}

// EffectiveType resolves the stored type, treating legacy rows without one
// as multiple choice.
func (q *Question) EffectiveType() QuestionType {
	if q.Type == "" {
		return MultipleChoice
	}
	return q.Type
}

// ===== TYPE-SPECIFIC CONTENT =====

type ChoiceOption struct {
	Label string `json:"label"` // "A".."D"
	Text  string `json:"text"`
}

type MultipleChoiceContent struct {
	Options       []ChoiceOption `json:"options"`
	CorrectAnswer string         `json:"correct_answer"` // option label
}

type TrueFalseStatement struct {
	Label  string `json:"label"` // "a".."d"
	Text   string `json:"text"`
	IsTrue bool   `json:"is_true"`
}

type TrueFalseContent struct {
	Statements []TrueFalseStatement `json:"statements"`
}

type ShortAnswerContent struct {
	CorrectAnswer string `json:"correct_answer"`
}

func (q *Question) MultipleChoiceContent() (*MultipleChoiceContent, error) {
	var content MultipleChoiceContent
	if err := json.Unmarshal(q.Content, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (q *Question) TrueFalseContent() (*TrueFalseContent, error) {
	var content TrueFalseContent
	if err := json.Unmarshal(q.Content, &content); err != nil {
		return nil, err
	}
	return &content, nil
}

func (q *Question) ShortAnswerContent() (*ShortAnswerContent, error) {
	var content ShortAnswerContent
	if err := json.Unmarshal(q.Content, &content); err != nil {
		return nil, err
	}
	return &content, nil
}
