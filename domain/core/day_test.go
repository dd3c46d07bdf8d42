package core

import (
	"encoding/json"
	"testing"
	"time"
)

// TestParseDayRoundTrip tests ISO parsing and formatting
func TestParseDayRoundTrip(t *testing.T) {
	d, err := ParseDay("2024-01-03")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if d.String() != "2024-01-03" {
		t.Errorf("Expected '2024-01-03', got '%s'", d.String())
	}

	if _, err := ParseDay("03/01/2024"); err == nil {
		t.Error("Expected error for non-ISO date")
	}
}

// TestNewDayTruncation tests that time-of-day is discarded
func TestNewDayTruncation(t *testing.T) {
	stamp := time.Date(2024, 6, 15, 23, 59, 58, 0, time.UTC)
	d := NewDay(stamp)
	if d.String() != "2024-06-15" {
		t.Errorf("Expected '2024-06-15', got '%s'", d.String())
	}
	if !d.Time().Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected UTC midnight, got %v", d.Time())
	}
}

// TestDayOrdering tests Before/After/Equal/Compare
func TestDayOrdering(t *testing.T) {
	a := MustDay("2024-01-01")
	b := MustDay("2024-01-02")

	if !a.Before(b) || b.Before(a) {
		t.Error("Before ordering is wrong")
	}
	if !b.After(a) || a.After(b) {
		t.Error("After ordering is wrong")
	}
	if !a.Equal(MustDay("2024-01-01")) {
		t.Error("Equal should hold for same day")
	}
	if a.Compare(b) != -1 || b.Compare(a) != 1 || a.Compare(a) != 0 {
		t.Error("Compare ordering is wrong")
	}
	if a.AddDays(1).Compare(b) != 0 {
		t.Error("AddDays(1) should land on the next day")
	}
}

// TestDayJSON tests JSON round-trip as ISO string
func TestDayJSON(t *testing.T) {
	d := MustDay("2024-02-29")
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(raw) != `"2024-02-29"` {
		t.Errorf("Expected quoted ISO day, got %s", raw)
	}

	var back Day
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("Round trip changed the day: %s", back)
	}
}
