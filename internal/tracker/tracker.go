// Package tracker holds the in-memory study state and the operations the
// interactive shell drives. All state lives on the Tracker aggregate and is
// mutated through its methods; persistence is handled separately by the
// store package.
package tracker

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/Nano1337/LeetcodeTrackerApp/internal/analytics"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/domain"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/schedule"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/streak"
)

// Tracker aggregates the full study state: the problem catalog, daily logs,
// review schedule, streak and goals.
//
// Problems are joined by name across the catalog, logs and schedule.
// Renaming a problem in the catalog therefore orphans its history; the name
// is the external CSV/JSON identity and is kept as the key for
// compatibility.
type Tracker struct {
	Logs           []domain.DailyLog
	Catalog        []domain.Problem
	Schedule       schedule.Schedule
	Streak         streak.Tracker
	TotalStudyTime int // minutes, cumulative
	Goals          domain.Goals
}

// New builds a tracker over a freshly loaded catalog with default goals.
func New(catalog []domain.Problem, problemsPerWeek int) *Tracker {
	return &Tracker{
		Catalog:  catalog,
		Schedule: make(schedule.Schedule),
		Goals:    domain.Goals{domain.GoalProblemsPerWeek: problemsPerWeek},
	}
}

// AddDailyLog records one study event: the log is appended, the problem's
// review cadence is (re)started from the log date, its status flips to
// Completed, the streak advances and the study time accumulates.
func (t *Tracker) AddDailyLog(log domain.DailyLog) {
	t.Logs = append(t.Logs, log)
	t.Schedule.ScheduleReviews(log.Problem, log.Date)
	t.UpdateProblemStatus(log.Problem, domain.StatusCompleted)
	t.Streak.Record(log.Date)
	t.TotalStudyTime += log.TimeTaken
}

// UpdateProblemStatus sets the status of the named problem. It reports
// whether the problem was found in the catalog.
func (t *Tracker) UpdateProblemStatus(name, status string) bool {
	for i := range t.Catalog {
		if t.Catalog[i].Name == name {
			t.Catalog[i].Status = status
			return true
		}
	}
	return false
}

// ProblemByName returns a pointer into the catalog, or nil.
func (t *Tracker) ProblemByName(name string) *domain.Problem {
	for i := range t.Catalog {
		if t.Catalog[i].Name == name {
			return &t.Catalog[i]
		}
	}
	return nil
}

// NextProblem returns the first problem in catalog order that is not yet
// Completed, or nil when everything is done.
func (t *Tracker) NextProblem() *domain.Problem {
	for i := range t.Catalog {
		if !t.Catalog[i].Completed() {
			return &t.Catalog[i]
		}
	}
	return nil
}

// RandomProblem returns a uniformly random not-yet-Completed problem, or
// nil when everything is done.
func (t *Tracker) RandomProblem() *domain.Problem {
	var unsolved []*domain.Problem
	for i := range t.Catalog {
		if !t.Catalog[i].Completed() {
			unsolved = append(unsolved, &t.Catalog[i])
		}
	}
	if len(unsolved) == 0 {
		return nil
	}
	return unsolved[rand.Intn(len(unsolved))]
}

// Review is a due schedule entry joined with its catalog problem.
type Review struct {
	Problem    domain.Problem
	ReviewDate domain.Date
	Urgency    schedule.Urgency
}

// DueToday surfaces the problems due for review, at most one entry per
// problem. Scheduled names with no catalog entry are skipped: the join is
// by name, and a schedule can outlive a renamed problem.
func (t *Tracker) DueToday(today domain.Date) []Review {
	var reviews []Review
	for _, due := range t.Schedule.DueToday(today) {
		p := t.ProblemByName(due.Problem)
		if p == nil {
			continue
		}
		reviews = append(reviews, Review{
			Problem:    *p,
			ReviewDate: due.ReviewDate,
			Urgency:    due.Urgency,
		})
	}
	return reviews
}

// MarkReviewed clears the given pending date for the problem and schedules
// its next review a week out.
func (t *Tracker) MarkReviewed(name string, reviewDate, today domain.Date) {
	t.Schedule.MarkReviewed(name, reviewDate, today)
}

// Analytics returns the progress report for the current state.
func (t *Tracker) Analytics() analytics.Report {
	return analytics.Compute(t.Catalog, t.Streak.Streak, t.TotalStudyTime)
}

// SolvedThisWeek counts logs dated within the current week, Monday through
// today inclusive.
func (t *Tracker) SolvedThisWeek(today domain.Date) int {
	// Monday is day 0 of the week here; Go's Weekday has Sunday=0.
	offset := (int(today.Weekday()) + 6) % 7
	weekStart := today.AddDays(-offset)

	n := 0
	for _, log := range t.Logs {
		if !log.Date.Before(weekStart) && !log.Date.After(today) {
			n++
		}
	}
	return n
}

// RecentLogs returns up to n logs, most recent first. A non-positive n
// yields no entries. Logs are re-sorted by date because persisted order is
// not guaranteed after a reload; ties keep insertion order.
func (t *Tracker) RecentLogs(n int) []domain.DailyLog {
	if n <= 0 {
		return nil
	}
	logs := append([]domain.DailyLog(nil), t.Logs...)
	sort.SliceStable(logs, func(i, j int) bool { return logs[j].Date.Before(logs[i].Date) })
	if n < len(logs) {
		logs = logs[:n]
	}
	return logs
}

// Categories returns the distinct catalog categories, sorted.
func (t *Tracker) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, p := range t.Catalog {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// SearchByName returns catalog problems whose name contains the query,
// case-insensitively.
func (t *Tracker) SearchByName(query string) []domain.Problem {
	var matches []domain.Problem
	for _, p := range t.Catalog {
		if containsFold(p.Name, query) {
			matches = append(matches, p)
		}
	}
	return matches
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ProblemsInCategory returns catalog problems in the given category, in
// catalog order.
func (t *Tracker) ProblemsInCategory(category string) []domain.Problem {
	var matches []domain.Problem
	for _, p := range t.Catalog {
		if p.Category == category {
			matches = append(matches, p)
		}
	}
	return matches
}
