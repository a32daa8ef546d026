package loan

import "time"

// DateOf truncates a timestamp to its calendar date in UTC. All loan date
// arithmetic happens at whole-day granularity.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysLate returns how many whole days ref lies past due. Any part of a day
// past the due date counts as a full day; on or before the due date it is 0.
func DaysLate(due, ref time.Time) int {
	due = DateOf(due)
	end := ref.UTC()
	if !end.After(due) {
		return 0
	}
	elapsed := end.Sub(due)
	days := int(elapsed / (24 * time.Hour))
	if elapsed%(24*time.Hour) != 0 {
		days++
	}
	return days
}

// Fine computes the overdue fine for a loan returned (or evaluated) at ref.
func Fine(due, ref time.Time, finePerDay int64) (days int, amount int64) {
	days = DaysLate(due, ref)
	return days, int64(days) * finePerDay
}
