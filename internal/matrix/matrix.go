// Package matrix holds the per-subject exam blueprints: how many questions
// of each type a standards-compliant exam carries, its nominal duration,
// and the minutes to allot per question when the bank comes up short.
package matrix

import (
	"github.com/studyprep/exam-service/internal/models"
)

const DefaultSlug = "default"

// Entry is one subject's exam blueprint.
type Entry struct {
	MultipleChoice int `json:"multiple_choice"`
	TrueFalse      int `json:"true_false"`
	ShortAnswer    int `json:"short_answer"`
	Duration       int `json:"duration"` // minutes
}

// Required is the question count a full exam must reach.
func (e Entry) Required() int {
	return e.MultipleChoice + e.TrueFalse + e.ShortAnswer
}

// Count returns the target count for one question type.
func (e Entry) Count(t models.QuestionType) int {
	switch t {
	case models.TrueFalse:
		return e.TrueFalse
	case models.ShortAnswer:
		return e.ShortAnswer
	default:
		return e.MultipleChoice
	}
}

// TimeEntry gives minutes per question of each type, used only to recompute
// the duration of a degraded exam.
type TimeEntry struct {
	MultipleChoice float64 `json:"multiple_choice"`
	TrueFalse      float64 `json:"true_false"`
	ShortAnswer    float64 `json:"short_answer"`
}

func (t TimeEntry) Minutes(qt models.QuestionType) float64 {
	switch qt {
	case models.TrueFalse:
		return t.TrueFalse
	case models.ShortAnswer:
		return t.ShortAnswer
	default:
		return t.MultipleChoice
	}
}

// Config is the full static matrix table. It is built once at startup and
// injected into the services that need it; nothing mutates it afterwards.
type Config struct {
	Entries         map[string]Entry
	TimePerQuestion map[string]TimeEntry
}

type Registry struct {
	cfg Config
}

func NewRegistry(cfg Config) *Registry {
	return &Registry{cfg: cfg}
}

// Entry returns the matrix entry for a subject slug, falling back to the
// default entry when the slug has no specific one. Absence is not an error.
func (r *Registry) Entry(slug string) Entry {
	if e, ok := r.cfg.Entries[slug]; ok {
		return e
	}
	return r.cfg.Entries[DefaultSlug]
}

// TimePerQuestion returns the minutes-per-question table for a subject slug
// with the same default fallback as Entry.
func (r *Registry) TimePerQuestion(slug string) TimeEntry {
	if t, ok := r.cfg.TimePerQuestion[slug]; ok {
		return t
	}
	return r.cfg.TimePerQuestion[DefaultSlug]
}

// DefaultConfig is the production matrix table. Every entry is balanced so
// that a fully-correct full exam scores exactly 10 points
// (mc*0.25 + tf*1.0 + sa*0.5).
func DefaultConfig() Config {
	return Config{
		Entries: map[string]Entry{
			DefaultSlug: {MultipleChoice: 12, TrueFalse: 4, ShortAnswer: 6, Duration: 90},
			"math":      {MultipleChoice: 12, TrueFalse: 4, ShortAnswer: 6, Duration: 90},
			"history":   {MultipleChoice: 20, TrueFalse: 2, ShortAnswer: 6, Duration: 75},
		},
		TimePerQuestion: map[string]TimeEntry{
			DefaultSlug: {MultipleChoice: 2, TrueFalse: 7, ShortAnswer: 6},
			"math":      {MultipleChoice: 2, TrueFalse: 7, ShortAnswer: 6},
			"history":   {MultipleChoice: 1.5, TrueFalse: 6, ShortAnswer: 4},
		},
	}
}
