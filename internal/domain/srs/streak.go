package srs

import (
	"sort"
	"time"

	"github.com/Sakeeb91/StudySync-sub000/internal/domain"
)

// calculateStreak reduces a session log to study-streak statistics. Only
// sessions that actually studied at least one card count, and multiple
// sessions on the same calendar day collapse into one studied date, so the
// result is independent of the order and granularity of the input log.
//
// The current streak is only alive when the most recent studied date is
// today or yesterday; it then extends backward one calendar day at a time
// until the first gap. The longest streak is the longest run of consecutive
// studied dates anywhere in the history.
func calculateStreak(sessions []domain.StudySession, now time.Time) *domain.StreakStats {
	studied := make(map[time.Time]bool)
	for _, session := range sessions {
		if session.CardsStudied > 0 {
			studied[startOfDayUTC(session.StartedAt)] = true
		}
	}

	if len(studied) == 0 {
		return &domain.StreakStats{}
	}

	dates := make([]time.Time, 0, len(studied))
	for date := range studied {
		dates = append(dates, date)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	last := dates[len(dates)-1]

	today := startOfDayUTC(now)
	yesterday := today.AddDate(0, 0, -1)

	current := 0
	if last.Equal(today) || last.Equal(yesterday) {
		for day := last; studied[day]; day = day.AddDate(0, 0, -1) {
			current++
		}
	}

	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Equal(dates[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	return &domain.StreakStats{
		CurrentStreak: current,
		LongestStreak: longest,
		LastStudyDate: last,
	}
}
