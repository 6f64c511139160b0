package services

import "testing"

func TestStreakEndingAt(t *testing.T) {
	cases := []struct {
		name  string
		dates []string
		day   string
		want  int
	}{
		{
			name:  "single_day",
			dates: []string{"2026-08-31"},
			day:   "2026-08-31",
			want:  1,
		},
		{
			name:  "three_consecutive_days",
			dates: []string{"2026-08-29", "2026-08-30", "2026-08-31"},
			day:   "2026-08-31",
			want:  3,
		},
		{
			name:  "gap_breaks_streak",
			dates: []string{"2026-08-27", "2026-08-28", "2026-08-30", "2026-08-31"},
			day:   "2026-08-31",
			want:  2,
		},
		{
			name:  "day_not_checked_in",
			dates: []string{"2026-08-29", "2026-08-30"},
			day:   "2026-08-31",
			want:  0,
		},
		{
			name:  "crosses_month_boundary",
			dates: []string{"2026-07-31", "2026-08-01", "2026-08-02"},
			day:   "2026-08-02",
			want:  3,
		},
		{
			name:  "empty_history",
			dates: nil,
			day:   "2026-08-31",
			want:  0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := streakEndingAt(tc.dates, tc.day); got != tc.want {
				t.Fatalf("streakEndingAt(%v, %s) = %d, want %d", tc.dates, tc.day, got, tc.want)
			}
		})
	}
}
