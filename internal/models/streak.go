package models

import "time"

// StreakRecord represents a user's consecutive-day activity counter
type StreakRecord struct {
	UserID        int       `json:"userId"`
	Streak        int       `json:"streak"` // >= 1 once the record exists
	LastLoginDate time.Time `json:"lastLoginDate"`
}
