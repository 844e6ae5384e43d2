package domain

import "time"

// StudySession is one completed study sitting. Sessions are produced and
// stored outside this engine; streak calculation only reads them.
type StudySession struct {
	StartedAt    time.Time `json:"started_at"`
	CardsStudied int       `json:"cards_studied"`
}

// StreakStats summarizes a learner's study consistency. A streak is a run
// of consecutive calendar days with at least one session that studied at
// least one card.
type StreakStats struct {
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	LastStudyDate time.Time `json:"last_study_date"` // Zero value: never studied
}
