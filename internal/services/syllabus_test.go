package services

import "testing"

func TestPercent(t *testing.T) {
	cases := []struct {
		name      string
		completed int
		total     int
		want      int
	}{
		{"empty", 0, 0, 0},
		{"none_done", 0, 10, 0},
		{"all_done", 10, 10, 100},
		{"floor_not_round", 2, 3, 66},
		{"one_of_seven", 1, 7, 14},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := percent(tc.completed, tc.total); got != tc.want {
				t.Fatalf("percent(%d, %d) = %d, want %d", tc.completed, tc.total, got, tc.want)
			}
		})
	}
}
