// Package schedule implements the spaced-repetition review schedule: a
// mapping from problem name to its pending review dates.
package schedule

import (
	"sort"

	"github.com/Nano1337/LeetcodeTrackerApp/internal/domain"
)

// reviewOffsets are the classic spaced-repetition intervals, in days after
// the solve date.
var reviewOffsets = [...]int{1, 3, 7, 14, 30}

// repeatIntervalDays is how far out a problem is rescheduled after a
// completed review.
const repeatIntervalDays = 7

// Urgency classifies how pressing a pending review date is.
type Urgency int

const (
	Overdue Urgency = iota
	Today
	Soon
	Upcoming
)

func (u Urgency) String() string {
	switch u {
	case Overdue:
		return "Overdue"
	case Today:
		return "Today"
	case Soon:
		return "Soon"
	default:
		return "Upcoming"
	}
}

// Classify buckets a review date relative to today. A date within two days
// out is Soon; anything further is Upcoming.
func Classify(reviewDate, today domain.Date) Urgency {
	days := today.DaysUntil(reviewDate)
	switch {
	case days < 0:
		return Overdue
	case days == 0:
		return Today
	case days <= 2:
		return Soon
	default:
		return Upcoming
	}
}

// Schedule maps a problem name to its pending review dates, in stored order.
// Invariant: no entry holds an empty date list.
type Schedule map[string][]domain.Date

// ScheduleReviews replaces any existing schedule for the problem with five
// review dates at fixed offsets from the solve date. Re-solving a problem
// deliberately resets its review cadence rather than merging with prior
// pending dates.
func (s Schedule) ScheduleReviews(problem string, solved domain.Date) {
	dates := make([]domain.Date, 0, len(reviewOffsets))
	for _, days := range reviewOffsets {
		dates = append(dates, solved.AddDays(days))
	}
	s[problem] = dates
}

// Due is one problem surfaced for review.
type Due struct {
	Problem    string
	ReviewDate domain.Date
	Urgency    Urgency
}

// DueToday returns at most one entry per problem: the first date in stored
// order that is on or before today. Later overdue dates for the same problem
// are intentionally not surfaced; this is a scan-and-break rule, not a
// most-urgent rule. Results are sorted by problem name for stable output.
func (s Schedule) DueToday(today domain.Date) []Due {
	var due []Due
	for problem, dates := range s {
		for _, d := range dates {
			if !d.After(today) {
				due = append(due, Due{
					Problem:    problem,
					ReviewDate: d,
					Urgency:    Classify(d, today),
				})
				break
			}
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].Problem < due[j].Problem })
	return due
}

// MarkReviewed removes every occurrence of reviewDate from the problem's
// pending list, then appends a fresh review date seven days from today so
// the problem re-enters the rotation. A problem with no current schedule
// ends up with that single new date.
func (s Schedule) MarkReviewed(problem string, reviewDate, today domain.Date) {
	if dates, ok := s[problem]; ok {
		kept := dates[:0]
		for _, d := range dates {
			if !d.Equal(reviewDate) {
				kept = append(kept, d)
			}
		}
		if len(kept) == 0 {
			delete(s, problem)
		} else {
			s[problem] = kept
		}
	}
	s[problem] = append(s[problem], today.AddDays(repeatIntervalDays))
}

// Clone returns a deep copy of the schedule.
func (s Schedule) Clone() Schedule {
	out := make(Schedule, len(s))
	for problem, dates := range s {
		out[problem] = append([]domain.Date(nil), dates...)
	}
	return out
}
