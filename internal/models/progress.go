package models

import "time"

// Action is a learning action submitted for one content item
type Action string

const (
	ActionKnown   Action = "known"
	ActionUnknown Action = "unknown"
	ActionMaster  Action = "master"
)

// Valid reports whether the action is one of the supported learning actions
func (a Action) Valid() bool {
	return a == ActionKnown || a == ActionUnknown || a == ActionMaster
}

// Mastery level boundaries: 0 untouched, 1-2 needs review, 3+ known, 5 mastered
const (
	MasteryMax        = 5
	MasteryKnownFloor = 3
)

// ProgressRecord represents a user's mastery state for one content item
//
// At most one record exists per (UserID, ContentID, ContentType); the
// progress table enforces this with a composite unique key.
type ProgressRecord struct {
	ID            int         `json:"id"`
	UserID        int         `json:"userId"`
	ContentID     int         `json:"contentId"`
	ContentType   ContentType `json:"contentType"`
	MasteryLevel  int         `json:"masteryLevel"`  // 0..5
	ContentNumber int         `json:"contentNumber"` // Denormalized copy of the content's step
	LastReviewed  time.Time   `json:"lastReviewed"`
}
