package report

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestDailyWindowDefaultsToLastSevenDays(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/reports/daily-sales", nil)

	start, end, err := dailyWindow(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Now()
	wantEnd := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
	if !end.Equal(wantEnd) {
		t.Fatalf("expected end %v, got %v", wantEnd, end)
	}
	if !start.Equal(wantEnd.AddDate(0, 0, -7)) {
		t.Fatalf("expected start 7 days before end, got %v", start)
	}
}

func TestDailyWindowDaysParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/reports/daily-sales?days=30", nil)

	start, end, err := dailyWindow(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !start.Equal(end.AddDate(0, 0, -30)) {
		t.Fatalf("expected a 30 day window, got %v .. %v", start, end)
	}
}

func TestDailyWindowExplicitDatesWin(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/reports/daily-sales?start_date=2026-01-01&end_date=2026-01-31&days=3", nil)

	start, end, err := dailyWindow(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loc := time.Now().Location()
	if !start.Equal(time.Date(2026, 1, 1, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected start %v", start)
	}
	// end_date is an inclusive day, so the window runs to the next midnight
	if !end.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, loc)) {
		t.Fatalf("unexpected end %v", end)
	}
}

func TestDailyWindowRejectsInvalidDays(t *testing.T) {
	for _, v := range []string{"0", "-5", "week"} {
		req := httptest.NewRequest(http.MethodGet, "/reports/daily-sales?days="+v, nil)
		if _, _, err := dailyWindow(req); err == nil {
			t.Errorf("expected error for days=%s", v)
		}
	}
}
