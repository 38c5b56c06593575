package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDailyRecordEditable(t *testing.T) {
	created := time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	rec := NewDailyRecord(uuid.New(), uuid.New(), created, 25, "", created)

	cases := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"Same Instant", created, true},
		{"Later Same Day", time.Date(2024, 2, 15, 23, 59, 59, 0, time.UTC), true},
		{"Next Day", time.Date(2024, 2, 16, 0, 0, 1, 0, time.UTC), false},
		{"Much Later", created.AddDate(0, 1, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := rec.Editable(tc.now); got != tc.want {
				t.Errorf("Editable(%v) = %v, want %v", tc.now, got, tc.want)
			}
		})
	}
}

func TestSameCalendarDay(t *testing.T) {
	t.Run("Different Zones Same UTC Date", func(t *testing.T) {
		est := time.FixedZone("EST", -5*3600)
		a := time.Date(2024, 2, 15, 18, 0, 0, 0, est) // 23:00 UTC Feb 15
		b := time.Date(2024, 2, 15, 1, 0, 0, 0, time.UTC)
		if !SameCalendarDay(a, b) {
			t.Error("expected same UTC calendar day")
		}
	})

	t.Run("Zone Crosses Date Boundary", func(t *testing.T) {
		est := time.FixedZone("EST", -5*3600)
		a := time.Date(2024, 2, 15, 20, 0, 0, 0, est) // 01:00 UTC Feb 16
		b := time.Date(2024, 2, 15, 12, 0, 0, 0, time.UTC)
		if SameCalendarDay(a, b) {
			t.Error("expected different UTC calendar days")
		}
	})
}
