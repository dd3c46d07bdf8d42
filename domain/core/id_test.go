package core

import (
	"testing"
)

// TestNewIDUniqueness tests that NewID generates unique identifiers
func TestNewIDUniqueness(t *testing.T) {
	const numIDs = 10000

	ids := make(map[ID]bool, numIDs)
	for i := 0; i < numIDs; i++ {
		id := NewID()
		if id.IsEmpty() {
			t.Errorf("Generated empty ID at iteration %d", i)
		}
		if ids[id] {
			t.Errorf("Generated duplicate ID: %s", id)
		}
		ids[id] = true
	}

	if len(ids) != numIDs {
		t.Errorf("Expected %d unique IDs, got %d", numIDs, len(ids))
	}
}

// TestParseWaypointID tests waypoint ID parsing
func TestParseWaypointID(t *testing.T) {
	id, err := ParseWaypointID("wp-123")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if id.String() != "wp-123" {
		t.Errorf("Expected 'wp-123', got '%s'", id.String())
	}

	if _, err := ParseWaypointID("  "); err == nil {
		t.Error("Expected error for blank waypoint ID")
	}
}
