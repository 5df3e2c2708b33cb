package cli

import (
	"testing"
	"time"
	"unicode/utf8"
)

func TestFormatGrams(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0g"},
		{39, "39g"},
		{120, "120g"},
	}
	for _, tc := range cases {
		if got := FormatGrams(tc.in); got != tc.want {
			t.Errorf("FormatGrams(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSignedGrams(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{5, "+5g"},
		{0, "+0g"},
		{-7, "-7g"},
	}
	for _, tc := range cases {
		if got := FormatSignedGrams(tc.in); got != tc.want {
			t.Errorf("FormatSignedGrams(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDayLabel(t *testing.T) {
	// 2024-05-20 was a Monday.
	if got := FormatDayLabel("2024-05-20"); got != "Mon" {
		t.Errorf("FormatDayLabel = %q, want Mon", got)
	}
	if got := FormatDayLabel("not-a-date"); got != "not-a-date" {
		t.Errorf("FormatDayLabel fallback = %q", got)
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"short", 10, "short"},
		{"exactly ten", 11, "exactly ten"},
		{"hello world", 8, "hello w…"},
		{"Crème brûlée", 8, "Crème b…"},
		{"éé", 1, "…"},
		{"anything", 0, ""},
	}
	for _, tc := range cases {
		got := Truncate(tc.in, tc.max)
		if got != tc.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
		if !utf8.ValidString(got) {
			t.Errorf("Truncate(%q, %d) produced invalid UTF-8: %q", tc.in, tc.max, got)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("abcdef12-3456"); got != "abcdef12" {
		t.Errorf("ShortID = %q, want abcdef12", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID short input = %q, want abc", got)
	}
}

func TestFormatEntryTimeLocal(t *testing.T) {
	ts := time.Date(2024, 5, 20, 14, 30, 0, 0, time.Local)
	if got := FormatEntryTime(ts); got != "2024-05-20 14:30" {
		t.Errorf("FormatEntryTime = %q", got)
	}
}
