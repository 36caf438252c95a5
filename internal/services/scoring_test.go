package services

import (
	"encoding/json"
	"testing"

	"github.com/studyprep/exam-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func mustContent(t *testing.T, v interface{}) datatypes.JSON {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return datatypes.JSON(data)
}

func mcQuestion(t *testing.T, correct string) *models.Question {
	return &models.Question{
		ID:   1,
		Type: models.MultipleChoice,
		Text: "Pick one",
		Content: mustContent(t, models.MultipleChoiceContent{
			Options: []models.ChoiceOption{
				{Label: "A", Text: "first"},
				{Label: "B", Text: "second"},
				{Label: "C", Text: "third"},
				{Label: "D", Text: "fourth"},
			},
			CorrectAnswer: correct,
		}),
	}
}

func saQuestion(t *testing.T, correct string) *models.Question {
	return &models.Question{
		ID:   2,
		Type: models.ShortAnswer,
		Text: "Answer briefly",
		Content: mustContent(t, models.ShortAnswerContent{
			CorrectAnswer: correct,
		}),
	}
}

// tfQuestion builds a four-statement cluster with keys true,false,true,false.
func tfQuestion(t *testing.T) *models.Question {
	return &models.Question{
		ID:   3,
		Type: models.TrueFalse,
		Text: "Judge each statement",
		Content: mustContent(t, models.TrueFalseContent{
			Statements: []models.TrueFalseStatement{
				{Label: "a", Text: "s1", IsTrue: true},
				{Label: "b", Text: "s2", IsTrue: false},
				{Label: "c", Text: "s3", IsTrue: true},
				{Label: "d", Text: "s4", IsTrue: false},
			},
		}),
	}
}

func TestScoreQuestion_MultipleChoice(t *testing.T) {
	q := mcQuestion(t, "B")

	tests := []struct {
		name   string
		answer string
		earned float64
	}{
		{name: "exact match", answer: "B", earned: 0.25},
		{name: "wrong label", answer: "A", earned: 0},
		{name: "missing answer", answer: "", earned: 0},
		{name: "no partial credit for near miss", answer: "b", earned: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score := ScoreQuestion(q, tc.answer)
			assert.Equal(t, tc.earned, score.Earned)
			assert.Equal(t, PointsMultipleChoice, score.Max)
		})
	}
}

func TestScoreQuestion_MultipleChoice_LegacyTypeless(t *testing.T) {
	q := mcQuestion(t, "C")
	q.Type = "" // legacy row, no type column value

	score := ScoreQuestion(q, "C")
	assert.Equal(t, PointsMultipleChoice, score.Earned)
	assert.True(t, score.FullCredit())
}

func TestScoreQuestion_ShortAnswer(t *testing.T) {
	tests := []struct {
		name    string
		correct string
		answer  string
		earned  float64
	}{
		{name: "exact string", correct: "2025", answer: "2025", earned: 0.5},
		{name: "comma decimal", correct: "2.5", answer: "2,5", earned: 0.5},
		{name: "whitespace trim", correct: "7", answer: "  7 ", earned: 0.5},
		{name: "case insensitive", correct: "ABC", answer: "abc", earned: 0.5},
		{name: "numeric equality", correct: "7", answer: "7.0", earned: 0.5},
		{name: "wrong text", correct: "hanoi", answer: "saigon", earned: 0},
		{name: "wrong number", correct: "7", answer: "8", earned: 0},
		{name: "empty answer", correct: "7", answer: "", earned: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score := ScoreQuestion(saQuestion(t, tc.correct), tc.answer)
			assert.Equal(t, tc.earned, score.Earned)
			assert.Equal(t, PointsShortAnswer, score.Max)
		})
	}
}

func TestScoreQuestion_TrueFalse_CreditCurve(t *testing.T) {
	q := tfQuestion(t) // key: a=true b=false c=true d=false

	tests := []struct {
		name   string
		answer string
		earned float64
	}{
		{name: "all four match", answer: `{"a":true,"b":false,"c":true,"d":false}`, earned: 1.0},
		{name: "three match", answer: `{"a":true,"b":false,"c":true,"d":true}`, earned: 0.5},
		{name: "two match", answer: `{"a":true,"b":false,"c":false,"d":true}`, earned: 0.25},
		{name: "one match", answer: `{"a":true,"b":true,"c":false,"d":true}`, earned: 0.1},
		{name: "none match", answer: `{"a":false,"b":true,"c":false,"d":true}`, earned: 0},
		{name: "partial map counts only present labels", answer: `{"a":true,"c":true}`, earned: 0.25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score := ScoreQuestion(q, tc.answer)
			assert.Equal(t, tc.earned, score.Earned)
			assert.Equal(t, PointsTrueFalse, score.Max)
		})
	}
}

func TestScoreQuestion_TrueFalse_TwoOfFourIsNotHalf(t *testing.T) {
	// The curve is convex on purpose: 2 of 4 pays 0.25, not 0.5.
	score := ScoreQuestion(tfQuestion(t), `{"a":true,"b":false,"c":false,"d":true}`)
	assert.Equal(t, 0.25, score.Earned)
}

func TestScoreQuestion_MalformedInput(t *testing.T) {
	tests := []struct {
		name     string
		question *models.Question
		answer   string
	}{
		{name: "true_false bad json", question: tfQuestion(t), answer: `{"a":tru`},
		{name: "true_false plain string", question: tfQuestion(t), answer: "A"},
		{name: "true_false empty", question: tfQuestion(t), answer: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			score := ScoreQuestion(tc.question, tc.answer)
			assert.Zero(t, score.Earned)
			assert.False(t, score.FullCredit())
		})
	}
}

func TestScoreQuestion_UnreadableAnswerKey(t *testing.T) {
	q := &models.Question{
		ID:      9,
		Type:    models.TrueFalse,
		Content: datatypes.JSON(`{"statements":`),
	}
	score := ScoreQuestion(q, `{"a":true}`)
	assert.Zero(t, score.Earned)
	assert.Equal(t, PointsTrueFalse, score.Max)
}

func TestMaxPoints(t *testing.T) {
	assert.Equal(t, 0.25, MaxPoints(models.MultipleChoice))
	assert.Equal(t, 1.0, MaxPoints(models.TrueFalse))
	assert.Equal(t, 0.5, MaxPoints(models.ShortAnswer))
	// Legacy/unknown types fall back to multiple choice.
	assert.Equal(t, 0.25, MaxPoints(""))
}
