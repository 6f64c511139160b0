package services

import (
	"testing"

	"github.com/prepmate/prepmate-backend/internal/types"
)

func TestDailyTotals(t *testing.T) {
	sessions := []*types.FocusSession{
		{Date: "2026-08-30", Duration: 1500},
		{Date: "2026-08-31", Duration: 1500},
		{Date: "2026-08-31", Duration: 300},
		{Date: "2026-08-29", Duration: 2700},
	}

	totals := dailyTotals(sessions)
	if len(totals) != 3 {
		t.Fatalf("got %d dates, want 3", len(totals))
	}
	if totals[0].Date != "2026-08-31" {
		t.Fatalf("not newest-first: %v", totals)
	}
	if totals[0].TotalSeconds != 1800 || totals[0].Sessions != 2 {
		t.Fatalf("same-day sessions not summed: %+v", totals[0])
	}
	if totals[2].Date != "2026-08-29" || totals[2].TotalSeconds != 2700 {
		t.Fatalf("unexpected oldest entry: %+v", totals[2])
	}
}

func TestDailyTotalsEmpty(t *testing.T) {
	if totals := dailyTotals(nil); len(totals) != 0 {
		t.Fatalf("got %d totals for no sessions", len(totals))
	}
}
