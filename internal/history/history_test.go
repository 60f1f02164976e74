package history

import (
	"fmt"
	"testing"

	"scamcheck/backend/internal/models"
)

func TestAppendAndListNewestFirst(t *testing.T) {
	log := New(10)
	for i := 0; i < 3; i++ {
		log.Append(&models.CheckRecord{ID: fmt.Sprintf("r%d", i)})
	}

	entries := log.List()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].ID != "r2" || entries[2].ID != "r0" {
		t.Fatalf("expected newest first, got %s ... %s", entries[0].ID, entries[2].ID)
	}
}

func TestLimitTrimsOldest(t *testing.T) {
	log := New(2)
	for i := 0; i < 5; i++ {
		log.Append(&models.CheckRecord{ID: fmt.Sprintf("r%d", i)})
	}

	if log.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", log.Len())
	}
	entries := log.List()
	if entries[0].ID != "r4" || entries[1].ID != "r3" {
		t.Fatalf("expected the two newest records, got %s, %s", entries[0].ID, entries[1].ID)
	}
}

func TestClear(t *testing.T) {
	log := New(10)
	log.Append(&models.CheckRecord{ID: "r0"})
	log.Clear()
	if log.Len() != 0 {
		t.Fatalf("expected empty log, got %d entries", log.Len())
	}
}

func TestZeroLimitUsesDefault(t *testing.T) {
	log := New(0)
	for i := 0; i < 150; i++ {
		log.Append(&models.CheckRecord{ID: fmt.Sprintf("r%d", i)})
	}
	if log.Len() != 100 {
		t.Fatalf("expected default cap of 100, got %d", log.Len())
	}
}
