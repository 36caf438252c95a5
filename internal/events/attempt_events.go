package events

import (
	"time"
)

// EventType represents the result events this service emits
type EventType string

const (
	EventAttemptScored EventType = "attempt.scored"
)

// ResultEvent is the envelope for all result events
type ResultEvent struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Source    string      `json:"source"`
	Data      interface{} `json:"data"`
}

// AttemptScoredEvent is emitted once per submitted attempt, after scoring.
type AttemptScoredEvent struct {
	AttemptID   uint      `json:"attempt_id"`
	SubjectID   uint      `json:"subject_id"`
	Subject     string    `json:"subject"`
	UserID      uint      `json:"user_id"`
	Score       float64   `json:"score"` // 0-10 scale
	Total       int       `json:"total"`
	SubmittedAt time.Time `json:"submitted_at"`
}
