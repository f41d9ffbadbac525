// Package store persists the full tracker state as a single JSON document.
// The store owns nothing: it is a pure serialization boundary, and every
// save rewrites the whole file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"

	"github.com/Nano1337/LeetcodeTrackerApp/internal/domain"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/schedule"
	"github.com/Nano1337/LeetcodeTrackerApp/internal/tracker"
)

// ErrCorrupt marks a progress file that exists but cannot be trusted:
// undecodable JSON, missing required sections, or values that fail
// validation. Loading such a file fails loudly instead of producing a
// partially initialized state.
var ErrCorrupt = errors.New("corrupt progress file")

// Store reads and writes progress snapshots at a fixed path. Write-up paths
// are persisted relative to the solutions root and rehydrated against it on
// load, so the file stays portable across checkouts.
type Store struct {
	path         string
	solutionsDir string
	validate     *validator.Validate
}

// New creates a store for the given progress file path and solutions root.
func New(path, solutionsDir string) *Store {
	return &Store{
		path:         path,
		solutionsDir: solutionsDir,
		validate:     validator.New(),
	}
}

// Path returns the progress file path.
func (s *Store) Path() string { return s.path }

// snapshot is the persisted shape. The json field names are the external
// contract and must not change.
type snapshot struct {
	DailyLogs      []logRecord              `json:"daily_logs" validate:"dive"`
	ReviewSchedule map[string][]domain.Date `json:"review_schedule"`
	Problems       []problemRecord          `json:"neetcode150" validate:"dive"`
	StudyStreak    int                      `json:"study_streak" validate:"gte=0"`
	LastStudyDate  *domain.Date             `json:"last_study_date"`
	TotalStudyTime int                      `json:"total_study_time" validate:"gte=0"`
	Goals          domain.Goals             `json:"goals"`
}

type logRecord struct {
	Date       domain.Date `json:"date"`
	Problem    string      `json:"problem" validate:"required"`
	TimeTaken  int         `json:"time_taken" validate:"gte=0"`
	Approach   string      `json:"approach"`
	Challenges string      `json:"challenges"`
	Solution   string      `json:"solution"`
}

type problemRecord struct {
	Category   string `json:"category"`
	Difficulty string `json:"difficulty"`
	Name       string `json:"name" validate:"required"`
	Status     string `json:"status"`
	Link       string `json:"link"`
	Notes      string `json:"notes"`
	// Relative to the solutions root, empty when no write-up exists.
	MarkdownFile string `json:"markdown_file"`
}

// Save writes the full tracker state to the progress file, replacing any
// previous snapshot. The write goes to a temp file in the same directory
// and is renamed into place so an interrupted save never leaves a
// truncated file behind.
func (s *Store) Save(t *tracker.Tracker) error {
	snap := s.toSnapshot(t)

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode progress: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".progress-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp progress file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write progress: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp progress file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace progress file: %w", err)
	}
	return nil
}

// Load replaces the tracker's state with the snapshot at the store's path.
// An absent file is a first run: the tracker is left untouched and no error
// is returned. A present file fully replaces logs, schedule, catalog,
// streak state and goals.
func (s *Store) Load(t *tracker.Tracker) error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		slog.Info("no progress file found, starting fresh", "path", s.path)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read progress file: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if err := s.checkSnapshot(&snap); err != nil {
		return err
	}

	s.fromSnapshot(&snap, t)
	return nil
}

// checkSnapshot rejects snapshots missing required sections or failing
// field validation.
func (s *Store) checkSnapshot(snap *snapshot) error {
	switch {
	case snap.DailyLogs == nil:
		return fmt.Errorf("%w: missing daily_logs", ErrCorrupt)
	case snap.ReviewSchedule == nil:
		return fmt.Errorf("%w: missing review_schedule", ErrCorrupt)
	case snap.Problems == nil:
		return fmt.Errorf("%w: missing neetcode150", ErrCorrupt)
	case snap.Goals == nil:
		return fmt.Errorf("%w: missing goals", ErrCorrupt)
	}
	// A log record with no date key decodes to the zero Date; a snapshot
	// this app wrote always carries one.
	for i, rec := range snap.DailyLogs {
		if rec.Date.IsZero() {
			return fmt.Errorf("%w: daily_logs[%d] has no date", ErrCorrupt, i)
		}
	}
	if err := s.validate.Struct(snap); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return nil
}

func (s *Store) toSnapshot(t *tracker.Tracker) *snapshot {
	snap := &snapshot{
		DailyLogs:      make([]logRecord, 0, len(t.Logs)),
		ReviewSchedule: t.Schedule.Clone(),
		Problems:       make([]problemRecord, 0, len(t.Catalog)),
		StudyStreak:    t.Streak.Streak,
		LastStudyDate:  t.Streak.LastStudy,
		TotalStudyTime: t.TotalStudyTime,
		Goals:          t.Goals,
	}
	if snap.ReviewSchedule == nil {
		snap.ReviewSchedule = make(map[string][]domain.Date)
	}
	if snap.Goals == nil {
		snap.Goals = make(domain.Goals)
	}

	for _, log := range t.Logs {
		snap.DailyLogs = append(snap.DailyLogs, logRecord{
			Date:       log.Date,
			Problem:    log.Problem,
			TimeTaken:  log.TimeTaken,
			Approach:   log.Approach,
			Challenges: log.Challenges,
			Solution:   log.Solution,
		})
	}
	for _, p := range t.Catalog {
		snap.Problems = append(snap.Problems, problemRecord{
			Category:     p.Category,
			Difficulty:   p.Difficulty,
			Name:         p.Name,
			Status:       p.Status,
			Link:         p.Link,
			Notes:        p.Notes,
			MarkdownFile: s.relWriteup(p.MarkdownFile),
		})
	}
	return snap
}

func (s *Store) fromSnapshot(snap *snapshot, t *tracker.Tracker) {
	t.Logs = make([]domain.DailyLog, 0, len(snap.DailyLogs))
	for _, rec := range snap.DailyLogs {
		t.Logs = append(t.Logs, domain.DailyLog{
			Date:       rec.Date,
			Problem:    rec.Problem,
			TimeTaken:  rec.TimeTaken,
			Approach:   rec.Approach,
			Challenges: rec.Challenges,
			Solution:   rec.Solution,
		})
	}

	t.Schedule = schedule.Schedule(snap.ReviewSchedule)

	t.Catalog = make([]domain.Problem, 0, len(snap.Problems))
	for _, rec := range snap.Problems {
		t.Catalog = append(t.Catalog, domain.Problem{
			Category:     rec.Category,
			Difficulty:   rec.Difficulty,
			Name:         rec.Name,
			Status:       rec.Status,
			Link:         rec.Link,
			Notes:        rec.Notes,
			MarkdownFile: s.absWriteup(rec.MarkdownFile),
		})
	}

	t.Streak.Streak = snap.StudyStreak
	t.Streak.LastStudy = snap.LastStudyDate
	t.TotalStudyTime = snap.TotalStudyTime
	t.Goals = snap.Goals
}

// relWriteup converts an in-memory write-up path to its persisted form,
// relative to the solutions root.
func (s *Store) relWriteup(path string) string {
	if path == "" {
		return ""
	}
	rel, err := filepath.Rel(s.solutionsDir, path)
	if err != nil {
		return filepath.Base(path)
	}
	return rel
}

// absWriteup rehydrates a persisted write-up path under the solutions root.
func (s *Store) absWriteup(rel string) string {
	if rel == "" {
		return ""
	}
	return filepath.Join(s.solutionsDir, rel)
}
