// Package streak maintains the consecutive-day study streak.
package streak

import "github.com/Nano1337/LeetcodeTrackerApp/internal/domain"

// Tracker holds the streak state: the running count and the most recent
// study date. LastStudy is nil until the first study event is recorded.
type Tracker struct {
	Streak    int
	LastStudy *domain.Date
}

// Record updates the streak for a study event on the given date. The first
// event ever, or one exactly a day after the last, extends the streak; any
// other new date resets it to 1; repeating the last date leaves it alone.
// The last study date is updated unconditionally.
func (t *Tracker) Record(date domain.Date) {
	switch {
	case t.LastStudy == nil || t.LastStudy.DaysUntil(date) == 1:
		t.Streak++
	case !date.Equal(*t.LastStudy):
		t.Streak = 1
	}
	d := date
	t.LastStudy = &d
}
