package postgres

import (
	"github.com/studyprep/exam-service/internal/repositories"
	"gorm.io/gorm"
)

type gormRepository struct {
	subject  repositories.SubjectRepository
	question repositories.QuestionRepository
	exam     repositories.ExamRepository
	attempt  repositories.AttemptRepository
}

// NewRepository wires the gorm-backed repositories behind the aggregate
// interface the services consume.
func NewRepository(db *gorm.DB) repositories.Repository {
	return &gormRepository{
		subject:  NewSubjectPostgreSQL(db),
		question: NewQuestionPostgreSQL(db),
		exam:     NewExamPostgreSQL(db),
		attempt:  NewAttemptPostgreSQL(db),
	}
}

func (r *gormRepository) Subject() repositories.SubjectRepository   { return r.subject }
func (r *gormRepository) Question() repositories.QuestionRepository { return r.question }
func (r *gormRepository) Exam() repositories.ExamRepository         { return r.exam }
func (r *gormRepository) Attempt() repositories.AttemptRepository   { return r.attempt }
