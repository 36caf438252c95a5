package services

import (
	"context"
	"testing"

	"github.com/studyprep/exam-service/internal/matrix"
	"github.com/studyprep/exam-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func mathSubject() *models.Subject {
	return &models.Subject{ID: 1, Slug: "math", Name: "Mathematics"}
}

func newAssemblerForTest(repo *mockRepository) ExamAssembler {
	registry := matrix.NewRegistry(matrix.DefaultConfig())
	sampler := NewQuestionSampler(repo, testLogger())
	return NewExamAssembler(repo, registry, sampler, testLogger())
}

func stubBank(repo *mockRepository, subjectID uint, mc, tf, sa int) {
	repo.question.On("GetBySubjectAndType", mock.Anything, subjectID, models.MultipleChoice).
		Return(questionPool(models.MultipleChoice, mc), nil)
	repo.question.On("GetBySubjectAndType", mock.Anything, subjectID, models.TrueFalse).
		Return(questionPool(models.TrueFalse, tf), nil)
	repo.question.On("GetBySubjectAndType", mock.Anything, subjectID, models.ShortAnswer).
		Return(questionPool(models.ShortAnswer, sa), nil)
}

func TestAssembleRandom_FullExam(t *testing.T) {
	repo := newMockRepository()
	repo.subject.On("GetBySlugOrID", mock.Anything, "math").Return(mathSubject(), nil)
	// Bank fully stocked beyond the matrix targets of 12/4/6.
	stubBank(repo, 1, 30, 10, 20)

	exam, err := newAssemblerForTest(repo).AssembleRandom(context.Background(), "math")

	require.NoError(t, err)
	assert.True(t, exam.IsFullExam)
	assert.Equal(t, 22, exam.TotalQuestions)
	assert.Len(t, exam.Questions, 22)
	// Nominal matrix duration, not recomputed.
	assert.Equal(t, 90, exam.Duration)
	assert.Contains(t, exam.Title, "random exam")
}

func TestAssembleRandom_SectionOrder(t *testing.T) {
	repo := newMockRepository()
	repo.subject.On("GetBySlugOrID", mock.Anything, "math").Return(mathSubject(), nil)
	stubBank(repo, 1, 12, 4, 6)

	exam, err := newAssemblerForTest(repo).AssembleRandom(context.Background(), "math")

	require.NoError(t, err)
	// Parts must arrive in the fixed order the client renders them in.
	for i, q := range exam.Questions {
		switch {
		case i < 12:
			assert.Equal(t, models.MultipleChoice, q.EffectiveType(), "index %d", i)
		case i < 16:
			assert.Equal(t, models.TrueFalse, q.EffectiveType(), "index %d", i)
		default:
			assert.Equal(t, models.ShortAnswer, q.EffectiveType(), "index %d", i)
		}
	}
}

func TestAssembleRandom_Shortage_RecomputesDuration(t *testing.T) {
	repo := newMockRepository()
	repo.subject.On("GetBySlugOrID", mock.Anything, "math").Return(mathSubject(), nil)
	// Only 10 of the 12 requested multiple choice questions exist.
	stubBank(repo, 1, 10, 4, 6)

	exam, err := newAssemblerForTest(repo).AssembleRandom(context.Background(), "math")

	require.NoError(t, err)
	assert.False(t, exam.IsFullExam)
	assert.Equal(t, 20, exam.TotalQuestions)
	// 10*2 + 4*7 + 6*6 = 84 minutes, plus the flat 2-minute review buffer.
	assert.Equal(t, 86, exam.Duration)
	assert.Contains(t, exam.Title, "practice set")
	assert.Contains(t, exam.Title, "20")
}

func TestAssembleRandom_UnknownSubjectUsesDefaultMatrix(t *testing.T) {
	repo := newMockRepository()
	// A real subject whose slug has no specific matrix entry.
	repo.subject.On("GetBySlugOrID", mock.Anything, "geography").
		Return(&models.Subject{ID: 7, Slug: "geography", Name: "Geography"}, nil)
	stubBank(repo, 7, 12, 4, 6)

	exam, err := newAssemblerForTest(repo).AssembleRandom(context.Background(), "geography")

	require.NoError(t, err)
	assert.True(t, exam.IsFullExam)
	assert.Equal(t, 22, exam.TotalQuestions)
	assert.Equal(t, 90, exam.Duration)
}

func TestAssembleRandom_EmptyBank(t *testing.T) {
	repo := newMockRepository()
	repo.subject.On("GetBySlugOrID", mock.Anything, "math").Return(mathSubject(), nil)
	stubBank(repo, 1, 0, 0, 0)

	exam, err := newAssemblerForTest(repo).AssembleRandom(context.Background(), "math")

	assert.Nil(t, exam)
	assert.ErrorIs(t, err, ErrEmptyBank)
}

func TestAssembleRandom_SubjectNotFound(t *testing.T) {
	repo := newMockRepository()
	repo.subject.On("GetBySlugOrID", mock.Anything, "nope").
		Return(nil, gorm.ErrRecordNotFound)

	exam, err := newAssemblerForTest(repo).AssembleRandom(context.Background(), "nope")

	assert.Nil(t, exam)
	assert.ErrorIs(t, err, ErrSubjectNotFound)
}

func TestAssembleRandom_ShortageOfSingleType_IsStillDegraded(t *testing.T) {
	repo := newMockRepository()
	repo.subject.On("GetBySlugOrID", mock.Anything, "math").Return(mathSubject(), nil)
	// Only short answer questions exist at all.
	stubBank(repo, 1, 0, 0, 6)

	exam, err := newAssemblerForTest(repo).AssembleRandom(context.Background(), "math")

	require.NoError(t, err)
	assert.False(t, exam.IsFullExam)
	assert.Equal(t, 6, exam.TotalQuestions)
	// 6*6 = 36 minutes plus the review buffer.
	assert.Equal(t, 38, exam.Duration)
}
