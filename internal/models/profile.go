package models

// DayActivity represents one day of the trailing-week activity chart
type DayActivity struct {
	Label string `json:"label"` // 3-letter weekday name
	Score int    `json:"score"` // Sum of session scores recorded that day
}

// ProfileStats is the denormalized statistics view shown on the profile page.
// Every field is recomputed from the ledgers on each call; nothing is materialized.
type ProfileStats struct {
	TotalTestsCovered       int           `json:"totalTestsCovered"`
	WordsKnown              int           `json:"wordsKnown"`
	PhrasalKnown            int           `json:"phrasalKnown"`
	IdiomsKnown             int           `json:"idiomsKnown"`
	NextWordNumber          int           `json:"nextWordNumber"`
	WeeklyActivity          []DayActivity `json:"weeklyActivity"` // Oldest to newest, 7 entries
	AverageAccuracy         int           `json:"averageAccuracy"`
	TotalQuestionsAttempted int           `json:"totalQuestionsAttempted"`
	CurrentStreak           int           `json:"currentStreak"`
	NeedsReviewCount        int           `json:"needsReviewCount"`
}
