package models

import "time"

// TestType identifies which question bank a quiz attempt belongs to
type TestType string

const (
	TestTypeVocabulary TestType = "vocabulary"
	TestTypeGrammar    TestType = "grammar"
	TestTypeIdioms     TestType = "idioms"
	TestTypePhrasal    TestType = "phrasalVerbs"
)

// TestTypes lists every supported test type, in display order
var TestTypes = []TestType{TestTypeVocabulary, TestTypeGrammar, TestTypeIdioms, TestTypePhrasal}

// Valid reports whether the test type is one of the supported question banks
func (t TestType) Valid() bool {
	for _, known := range TestTypes {
		if t == known {
			return true
		}
	}
	return false
}

// AttemptRecord represents one answered quiz question
type AttemptRecord struct {
	ID             int       `json:"id"`
	UserID         int       `json:"userId"`
	QuestionID     string    `json:"questionId"`
	TestType       TestType  `json:"testType"`
	SelectedAnswer string    `json:"selectedAnswer"`
	CorrectAnswer  string    `json:"correctAnswer"`
	IsCorrect      bool      `json:"isCorrect"`
	AttemptDate    time.Time `json:"attemptDate"`
	TestSessionID  string    `json:"testSessionId"`
}

// TypeStat represents aggregate attempt counts for one test type
type TypeStat struct {
	Attempted int `json:"attempted"`
	Correct   int `json:"correct"`
	Accuracy  int `json:"accuracy"` // Rounded percent, 0 when Attempted is 0
}
