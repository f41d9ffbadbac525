package schedule

import (
	"testing"
	"time"

	"github.com/Nano1337/LeetcodeTrackerApp/internal/domain"
)

func date(day int) domain.Date {
	return domain.NewDate(2024, time.March, day)
}

func TestScheduleReviews(t *testing.T) {
	s := make(Schedule)
	solved := date(1)
	s.ScheduleReviews("Two Sum", solved)

	want := []domain.Date{date(2), date(4), date(8), date(15), date(31)}
	got := s["Two Sum"]
	if len(got) != len(want) {
		t.Fatalf("got %d review dates, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("review date %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScheduleReviewsReplacesExisting(t *testing.T) {
	s := make(Schedule)
	s["Two Sum"] = []domain.Date{date(20), date(25)}

	s.ScheduleReviews("Two Sum", date(1))

	got := s["Two Sum"]
	if len(got) != 5 {
		t.Fatalf("got %d dates after re-solve, want 5", len(got))
	}
	for _, d := range got {
		if d.Equal(date(20)) || d.Equal(date(25)) {
			t.Errorf("old date %s survived re-scheduling", d)
		}
	}
}

func TestClassify(t *testing.T) {
	today := date(10)
	cases := []struct {
		review domain.Date
		want   Urgency
	}{
		{date(9), Overdue},
		{date(10), Today},
		{date(11), Soon},
		{date(12), Soon}, // boundary: two days out is still Soon
		{date(13), Upcoming},
	}
	for _, tc := range cases {
		if got := Classify(tc.review, today); got != tc.want {
			t.Errorf("Classify(%s, %s) = %s, want %s", tc.review, today, got, tc.want)
		}
	}
}

func TestDueToday(t *testing.T) {
	today := date(10)

	t.Run("one entry per problem even with multiple overdue dates", func(t *testing.T) {
		s := Schedule{
			"Two Sum": {date(5), date(8), date(20)},
		}
		due := s.DueToday(today)
		if len(due) != 1 {
			t.Fatalf("got %d entries, want 1", len(due))
		}
		if !due[0].ReviewDate.Equal(date(5)) {
			t.Errorf("surfaced date %s, want first stored due date %s", due[0].ReviewDate, date(5))
		}
		if due[0].Urgency != Overdue {
			t.Errorf("urgency = %s, want Overdue", due[0].Urgency)
		}
	})

	t.Run("first stored date wins, not the most urgent", func(t *testing.T) {
		// Stored order is not sorted: the scan stops at the first date
		// that is due, even when a later-stored date is more overdue.
		s := Schedule{
			"Valid Anagram": {date(9), date(3)},
		}
		due := s.DueToday(today)
		if len(due) != 1 {
			t.Fatalf("got %d entries, want 1", len(due))
		}
		if !due[0].ReviewDate.Equal(date(9)) {
			t.Errorf("surfaced date %s, want first-stored %s", due[0].ReviewDate, date(9))
		}
	})

	t.Run("future-only schedules are not surfaced", func(t *testing.T) {
		s := Schedule{
			"Two Sum":  {date(11)},
			"3Sum":     {date(10)},
			"Min Heap": {date(1)},
		}
		due := s.DueToday(today)
		if len(due) != 2 {
			t.Fatalf("got %d entries, want 2", len(due))
		}
		// Sorted by problem name.
		if due[0].Problem != "3Sum" || due[1].Problem != "Min Heap" {
			t.Errorf("got problems %q, %q", due[0].Problem, due[1].Problem)
		}
	})
}

func TestMarkReviewed(t *testing.T) {
	today := date(10)

	t.Run("removes every occurrence of the date", func(t *testing.T) {
		s := Schedule{
			"Two Sum": {date(5), date(5), date(20)},
		}
		s.MarkReviewed("Two Sum", date(5), today)

		got := s["Two Sum"]
		want := []domain.Date{date(20), date(17)} // survivor, then today+7
		if len(got) != len(want) {
			t.Fatalf("got %d dates, want %d: %v", len(got), len(want), got)
		}
		for i := range want {
			if !got[i].Equal(want[i]) {
				t.Errorf("date %d = %s, want %s", i, got[i], want[i])
			}
		}
	})

	t.Run("emptied schedule gets only the new date", func(t *testing.T) {
		s := Schedule{
			"Two Sum": {date(5)},
		}
		s.MarkReviewed("Two Sum", date(5), today)

		got := s["Two Sum"]
		if len(got) != 1 || !got[0].Equal(date(17)) {
			t.Fatalf("got %v, want [%s]", got, date(17))
		}
	})

	t.Run("untracked problem gets a fresh single-entry schedule", func(t *testing.T) {
		s := make(Schedule)
		s.MarkReviewed("Course Schedule", date(5), today)

		got := s["Course Schedule"]
		if len(got) != 1 || !got[0].Equal(date(17)) {
			t.Fatalf("got %v, want [%s]", got, date(17))
		}
	})

	t.Run("never leaves an empty mapping entry", func(t *testing.T) {
		s := Schedule{
			"Two Sum": {date(5)},
		}
		s.MarkReviewed("Two Sum", date(5), today)
		for name, dates := range s {
			if len(dates) == 0 {
				t.Errorf("dangling empty entry for %q", name)
			}
		}
	})
}

func TestClone(t *testing.T) {
	s := Schedule{
		"Two Sum": {date(5), date(8)},
	}
	c := s.Clone()
	c["Two Sum"][0] = date(25)
	c["3Sum"] = []domain.Date{date(1)}

	if !s["Two Sum"][0].Equal(date(5)) {
		t.Error("clone shares backing array with original")
	}
	if _, ok := s["3Sum"]; ok {
		t.Error("clone shares map with original")
	}
}
