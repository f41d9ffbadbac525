// Package analytics derives read-only progress statistics from the catalog
// and study state.
package analytics

import "github.com/Nano1337/LeetcodeTrackerApp/internal/domain"

// Breakdown counts problems within one category or difficulty bucket.
type Breakdown struct {
	Total     int
	Completed int
}

// Rate returns the completion percentage for the bucket, 0 when empty.
func (b Breakdown) Rate() float64 {
	if b.Total == 0 {
		return 0
	}
	return float64(b.Completed) / float64(b.Total) * 100
}

// Report is a snapshot of overall progress.
type Report struct {
	TotalProblems     int
	CompletedProblems int
	CompletionRate    float64 // percentage
	ByCategory        map[string]Breakdown
	ByDifficulty      map[string]Breakdown
	StudyStreak       int
	TotalStudyTime    int // minutes
}

// Compute aggregates completion statistics over the catalog. Buckets are
// keyed by the literal category and difficulty strings present in the
// catalog. An empty catalog yields zero rates rather than a division fault.
func Compute(catalog []domain.Problem, studyStreak, totalStudyTime int) Report {
	r := Report{
		TotalProblems:  len(catalog),
		ByCategory:     make(map[string]Breakdown),
		ByDifficulty:   make(map[string]Breakdown),
		StudyStreak:    studyStreak,
		TotalStudyTime: totalStudyTime,
	}

	for _, p := range catalog {
		cat := r.ByCategory[p.Category]
		diff := r.ByDifficulty[p.Difficulty]
		cat.Total++
		diff.Total++
		if p.Completed() {
			r.CompletedProblems++
			cat.Completed++
			diff.Completed++
		}
		r.ByCategory[p.Category] = cat
		r.ByDifficulty[p.Difficulty] = diff
	}

	if r.TotalProblems > 0 {
		r.CompletionRate = float64(r.CompletedProblems) / float64(r.TotalProblems) * 100
	}
	return r
}
