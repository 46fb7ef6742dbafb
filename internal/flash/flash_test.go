package flash_test

import (
	"testing"

	"github.com/unclebandit/leadreach-webclient/internal/flash"
)

func TestPopDrainsNotices(t *testing.T) {
	store := flash.NewStore()
	store.Success("s1", "saved")
	store.Error("s1", "boom")

	notices := store.Pop("s1")
	if len(notices) != 2 {
		t.Fatalf("expected 2 notices, got %d", len(notices))
	}
	if notices[0].Level != flash.LevelSuccess || notices[0].Message != "saved" {
		t.Errorf("unexpected first notice: %+v", notices[0])
	}

	if again := store.Pop("s1"); len(again) != 0 {
		t.Errorf("expected drained store, got %d notices", len(again))
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	store := flash.NewStore()
	store.Success("s1", "for s1")

	if notices := store.Pop("s2"); len(notices) != 0 {
		t.Errorf("expected no notices for s2, got %d", len(notices))
	}
	if notices := store.Pop("s1"); len(notices) != 1 {
		t.Errorf("expected s1 notice intact, got %d", len(notices))
	}
}

func TestEmptySessionIDIsDropped(t *testing.T) {
	store := flash.NewStore()
	store.Push("", flash.LevelError, "nobody to show this to")
	if notices := store.Pop(""); len(notices) != 0 {
		t.Errorf("expected notices for empty session to be dropped, got %d", len(notices))
	}
}
