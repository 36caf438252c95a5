package services

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/studyprep/exam-service/internal/models"
)

// Fixed point values per question type. The matrices in the registry are
// balanced against these so a fully-correct full exam totals exactly 10;
// changing either side silently breaks the 0-10 scale.
const (
	PointsMultipleChoice = 0.25
	PointsTrueFalse      = 1.0
	PointsShortAnswer    = 0.5
)

// Score is the outcome of grading one submitted answer.
type Score struct {
	Earned float64 `json:"earned"`
	Max    float64 `json:"max"`
}

// FullCredit reports whether the answer earned its full point value. This
// is the coarse per-question correctness flag used by analytics; partial
// true/false credit does not count.
func (s Score) FullCredit() bool {
	return s.Max > 0 && s.Earned == s.Max
}

// MaxPoints returns the point value of a question by its effective type.
func MaxPoints(t models.QuestionType) float64 {
	switch t {
	case models.TrueFalse:
		return PointsTrueFalse
	case models.ShortAnswer:
		return PointsShortAnswer
	default:
		return PointsMultipleChoice
	}
}

// ScoreQuestion grades one raw submitted answer against the canonical
// question. It never fails: malformed input (bad JSON for true/false
// clusters, an unreadable answer key) earns zero, same as all-wrong.
func ScoreQuestion(q *models.Question, rawAnswer string) Score {
	switch q.EffectiveType() {
	case models.TrueFalse:
		return scoreTrueFalse(q, rawAnswer)
	case models.ShortAnswer:
		return scoreShortAnswer(q, rawAnswer)
	default:
		return scoreMultipleChoice(q, rawAnswer)
	}
}

// scoreMultipleChoice awards all or nothing on an exact label match.
func scoreMultipleChoice(q *models.Question, rawAnswer string) Score {
	score := Score{Max: PointsMultipleChoice}

	content, err := q.MultipleChoiceContent()
	if err != nil || content.CorrectAnswer == "" {
		return score
	}
	if rawAnswer == content.CorrectAnswer {
		score.Earned = score.Max
	}
	return score
}

// scoreShortAnswer compares normalized strings and falls back to numeric
// equality, so "7.0" matches "7" and "2,5" matches "2.5".
func scoreShortAnswer(q *models.Question, rawAnswer string) Score {
	score := Score{Max: PointsShortAnswer}

	content, err := q.ShortAnswerContent()
	if err != nil || content.CorrectAnswer == "" {
		return score
	}

	submitted := normalizeShortAnswer(rawAnswer)
	expected := normalizeShortAnswer(content.CorrectAnswer)

	if submitted == expected {
		score.Earned = score.Max
		return score
	}

	subNum, subErr := strconv.ParseFloat(submitted, 64)
	expNum, expErr := strconv.ParseFloat(expected, 64)
	if subErr == nil && expErr == nil && subNum == expNum {
		score.Earned = score.Max
	}
	return score
}

func normalizeShortAnswer(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", ".")
	return strings.ToLower(s)
}

// scoreTrueFalse grades a cluster of sub-statements. The raw answer is a
// JSON object of statement label -> submitted boolean. The reward curve is
// convex: matching every statement pays far more than matching most.
func scoreTrueFalse(q *models.Question, rawAnswer string) Score {
	score := Score{Max: PointsTrueFalse}

	content, err := q.TrueFalseContent()
	if err != nil || len(content.Statements) == 0 {
		return score
	}

	var submitted map[string]bool
	if err := json.Unmarshal([]byte(rawAnswer), &submitted); err != nil {
		return score
	}

	matched := 0
	for _, stmt := range content.Statements {
		answer, ok := submitted[stmt.Label]
		if ok && answer == stmt.IsTrue {
			matched++
		}
	}

	score.Earned = trueFalseCredit(matched)
	return score
}

// trueFalseCredit is the fixed partial-credit curve for clusters of four
// statements. The steps are policy constants, not a linear k/4 share.
func trueFalseCredit(matched int) float64 {
	switch {
	case matched <= 0:
		return 0
	case matched == 1:
		return 0.1
	case matched == 2:
		return 0.25
	case matched == 3:
		return 0.5
	default:
		return PointsTrueFalse
	}
}
