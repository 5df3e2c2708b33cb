package tui

import (
	"strings"
	"testing"
)

func TestTruncateHeight(t *testing.T) {
	s := "a\nb\nc\nd"
	got := truncateHeight(s, 2)
	if got != "a\nb" {
		t.Errorf("truncateHeight = %q, want %q", got, "a\nb")
	}
	if truncateHeight(s, 10) != s {
		t.Error("truncateHeight should not change content shorter than limit")
	}
}

func TestPadHeight(t *testing.T) {
	got := padHeight("a\nb", 5)
	// Content lines plus padding should reach exactly 5 rendered rows.
	rows := strings.Count(got, "\n")
	if rows != 5 {
		t.Errorf("padHeight produced %d rows, want 5", rows)
	}
}
