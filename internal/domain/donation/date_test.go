package donation

import (
	"testing"
	"time"
)

func TestParseDate_Accepts(t *testing.T) {
	want := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	for _, raw := range []string{
		"2024-01-15",
		"2024-01-15T10:00",
		"2024-01-15T10:00:00",
		"2024-01-15 10:00:00",
		"2024-01-15T10:00:00.123456",
		"2024-01-15T10:00:00Z",
		"2024-01-15T23:30:00+07:00",
		"2024-01-15T00:30:00-05:00",
	} {
		got, err := ParseDate(raw)
		if err != nil {
			t.Fatalf("ParseDate(%q) err: %v", raw, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseDate(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestParseDate_Rejects(t *testing.T) {
	for _, raw := range []string{
		"",
		"2024-1-15",
		"2024/01/15",
		"15-01-2024",
		"2024-02-30",
		"2024-13-01",
		"2024-01-15X10:00:00",
		"2024-01-15T",
		"2024-01-15T25:00:00",
		"2024-01-15Tnoon",
		"not-a-date",
		"0000-01-01",
		"0000-12-31T10:00:00",
	} {
		if _, err := ParseDate(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestFormatDate(t *testing.T) {
	got := FormatDate(time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))
	if got != "2024-01-15" {
		t.Fatalf("FormatDate = %q", got)
	}
	// calendar date of the value, no zone conversion
	loc := time.FixedZone("UTC+7", 7*3600)
	got = FormatDate(time.Date(2024, 1, 15, 1, 0, 0, 0, loc))
	if got != "2024-01-15" {
		t.Fatalf("FormatDate with zone = %q", got)
	}
}

func TestParseDate_FirstYear(t *testing.T) {
	got, err := ParseDate("0001-01-01")
	if err != nil {
		t.Fatalf("ParseDate(0001-01-01) err: %v", err)
	}
	if got.Year() != 1 {
		t.Fatalf("year = %d, want 1", got.Year())
	}
}
