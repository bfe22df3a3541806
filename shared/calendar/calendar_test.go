package calendar_test

import (
	"testing"
	"time"

	"posada/shared/calendar"
)

func TestDate(t *testing.T) {
	// A late evening in a western timezone is still the same UTC calendar day
	// once converted, not the local one.
	loc := time.FixedZone("UTC-5", -5*60*60)
	in := time.Date(2026, time.June, 10, 23, 30, 0, 0, loc)

	got := calendar.Date(in)
	want := time.Date(2026, time.June, 11, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("Date(%s) = %s, want %s", in, got, want)
	}
}

func TestParse(t *testing.T) {
	got, err := calendar.Parse("2026-06-10")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse = %s, want %s", got, want)
	}

	if _, err := calendar.Parse("10/06/2026"); err == nil {
		t.Error("expected error for non ISO date")
	}

	if _, err := calendar.Parse("2026-02-30"); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestFormat(t *testing.T) {
	in := time.Date(2026, time.June, 10, 0, 0, 0, 0, time.UTC)

	if got := calendar.Format(in); got != "2026-06-10" {
		t.Errorf("Format = %s, want 2026-06-10", got)
	}
}

func TestTodayIsMidnightUTC(t *testing.T) {
	today := calendar.Today()

	h, m, s := today.Clock()
	if h != 0 || m != 0 || s != 0 {
		t.Errorf("Today has a time of day: %s", today)
	}

	if today.Location() != time.UTC {
		t.Errorf("Today is not UTC: %s", today.Location())
	}
}
