package models

import "time"

// TestSessionRecord represents one completed quiz run, summarized as a single score
type TestSessionRecord struct {
	ID             int       `json:"id"`
	UserID         int       `json:"userId"`
	TestType       TestType  `json:"testType"`
	Score          int       `json:"score"` // Rounded percent of correct answers
	TotalQuestions int       `json:"totalQuestions"`
	CorrectAnswers int       `json:"correctAnswers"`
	Date           time.Time `json:"date"`
	TestSessionID  string    `json:"testSessionId"`
}

// SessionDetail joins one test session with all of its attempt records
type SessionDetail struct {
	TestSessionRecord
	Attempts []AttemptRecord `json:"attempts"`
}

// SessionScore is a (date, score) pair used for activity aggregation
type SessionScore struct {
	Date  time.Time `json:"date"`
	Score int       `json:"score"`
}

// SessionTotals holds whole-history aggregates over a user's test sessions
type SessionTotals struct {
	Count              int `json:"count"`
	QuestionsAttempted int `json:"questionsAttempted"`
	AverageScore       int `json:"averageScore"` // Rounded, 0 when no sessions exist
}
