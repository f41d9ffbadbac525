package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDateRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-03-01")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2024-03-01" {
		t.Errorf("String = %q, want 2024-03-01", d.String())
	}
}

func TestParseDateInvalid(t *testing.T) {
	for _, s := range []string{"", "03/01/2024", "2024-13-01", "not a date"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) should fail", s)
		}
	}
}

func TestAddDays(t *testing.T) {
	d := NewDate(2024, time.January, 30)
	if got := d.AddDays(3); got.String() != "2024-02-02" {
		t.Errorf("AddDays crossing a month = %s, want 2024-02-02", got)
	}
	if got := d.AddDays(-30); got.String() != "2023-12-31" {
		t.Errorf("AddDays negative = %s, want 2023-12-31", got)
	}
}

func TestDaysUntil(t *testing.T) {
	a := NewDate(2024, time.March, 1)
	b := NewDate(2024, time.March, 8)
	if got := a.DaysUntil(b); got != 7 {
		t.Errorf("DaysUntil = %d, want 7", got)
	}
	if got := b.DaysUntil(a); got != -7 {
		t.Errorf("reverse DaysUntil = %d, want -7", got)
	}
	if got := a.DaysUntil(a); got != 0 {
		t.Errorf("same-day DaysUntil = %d, want 0", got)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.March, 1)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"2024-03-01"` {
		t.Errorf("Marshal = %s, want quoted ISO date", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip = %s, want %s", back, d)
	}

	if err := json.Unmarshal([]byte(`"03/01/2024"`), &back); err == nil {
		t.Error("Unmarshal of a non-ISO date should fail")
	}
	if err := json.Unmarshal([]byte(`42`), &back); err == nil {
		t.Error("Unmarshal of a number should fail")
	}
}

func TestNullableDateJSON(t *testing.T) {
	type wrapper struct {
		Last *Date `json:"last_study_date"`
	}

	data, err := json.Marshal(wrapper{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"last_study_date":null}` {
		t.Errorf("Marshal nil = %s", data)
	}

	var w wrapper
	if err := json.Unmarshal([]byte(`{"last_study_date":"2024-03-01"}`), &w); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if w.Last == nil || w.Last.String() != "2024-03-01" {
		t.Errorf("Last = %v, want 2024-03-01", w.Last)
	}
}

func TestDateOfNormalizesTime(t *testing.T) {
	ts := time.Date(2024, time.March, 1, 23, 59, 58, 0, time.FixedZone("X", 5*3600))
	d := DateOf(ts)
	if d.String() != "2024-03-01" {
		t.Errorf("DateOf = %s, want the calendar date in the time's zone", d)
	}
	if !d.Equal(NewDate(2024, time.March, 1)) {
		t.Error("DateOf and NewDate disagree")
	}
}
