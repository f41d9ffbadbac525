package domain

// Problem statuses. Status is free-form text in the catalog; these are the
// two values the tracker itself assigns and branches on.
const (
	StatusUnsolved  = "Unsolved"
	StatusCompleted = "Completed"
)

// Problem is one entry of the practice catalog. Problems are identified by
// Name throughout: the review schedule and daily logs reference it directly.
type Problem struct {
	Category   string
	Difficulty string
	Name       string
	Status     string
	Link       string
	Notes      string
	// MarkdownFile is the path to the generated write-up under the
	// solutions root, empty when no write-up exists yet.
	MarkdownFile string
}

// Completed reports whether the problem has been solved.
func (p Problem) Completed() bool {
	return p.Status == StatusCompleted
}

// DailyLog is an immutable record of one study event. Logs are appended,
// never edited; persisted order is not guaranteed, so displays re-sort by
// Date.
type DailyLog struct {
	Date       Date
	Problem    string // problem name
	TimeTaken  int    // minutes
	Approach   string
	Challenges string
	Solution   string
}

// Goal names for the Goals mapping.
const GoalProblemsPerWeek = "problems_per_week"

// Goals maps goal names to numeric targets.
type Goals map[string]int
