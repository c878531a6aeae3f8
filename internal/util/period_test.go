package util

import (
	"testing"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
)

func TestPeriodRange(t *testing.T) {
	tests := []struct {
		name      string
		period    domain.BudgetPeriod
		ref       time.Time
		wantStart string
		wantEnd   string
	}{
		{"monthly february leap year", domain.BudgetPeriodMonthly, time.Date(2024, 2, 10, 15, 0, 0, 0, time.UTC), "2024-02-01T00:00:00", "2024-02-29T23:59:00"},
		{"monthly december", domain.BudgetPeriodMonthly, time.Date(2026, 12, 31, 23, 0, 0, 0, time.UTC), "2026-12-01T00:00:00", "2026-12-31T23:59:00"},
		{"quarterly Q1", domain.BudgetPeriodQuarterly, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), "2026-01-01T00:00:00", "2026-03-31T23:59:00"},
		{"quarterly Q3", domain.BudgetPeriodQuarterly, time.Date(2026, 8, 5, 0, 0, 0, 0, time.UTC), "2026-07-01T00:00:00", "2026-09-30T23:59:00"},
		{"quarterly Q4", domain.BudgetPeriodQuarterly, time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), "2026-10-01T00:00:00", "2026-12-31T23:59:00"},
		{"yearly", domain.BudgetPeriodYearly, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), "2026-01-01T00:00:00", "2026-12-31T23:59:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end, err := PeriodRange(tt.period, tt.ref)
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got := start.Format(DateTimeLayout); got != tt.wantStart {
				t.Errorf("Expected start %s, got %s", tt.wantStart, got)
			}
			if got := end.Format(DateTimeLayout); got != tt.wantEnd {
				t.Errorf("Expected end %s, got %s", tt.wantEnd, got)
			}
		})
	}
}

func TestPeriodRange_InvalidPeriod(t *testing.T) {
	_, _, err := PeriodRange(domain.BudgetPeriod("weekly"), time.Now())
	if err == nil {
		t.Fatal("Expected error for unknown period")
	}
}

func TestNextPeriodRange_RollsOverYear(t *testing.T) {
	_, currentEnd, _ := PeriodRange(domain.BudgetPeriodMonthly, time.Date(2026, 12, 3, 0, 0, 0, 0, time.UTC))

	start, end, err := NextPeriodRange(domain.BudgetPeriodMonthly, currentEnd)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got := start.Format(DateTimeLayout); got != "2027-01-01T00:00:00" {
		t.Errorf("Expected next start 2027-01-01T00:00:00, got %s", got)
	}
	if got := end.Format(DateTimeLayout); got != "2027-01-31T23:59:00" {
		t.Errorf("Expected next end 2027-01-31T23:59:00, got %s", got)
	}
}

func TestDefaultCustomRange(t *testing.T) {
	start, end := DefaultCustomRange(time.Date(2026, 10, 16, 9, 30, 0, 0, time.Local))
	if start != "2026-10-16T00:00" {
		t.Errorf("Expected start 2026-10-16T00:00, got %s", start)
	}
	if end != "2026-11-16T23:59" {
		t.Errorf("Expected end 2026-11-16T23:59, got %s", end)
	}
}

func TestInclusiveDays(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2026-10-01T00:00:00", "2026-10-31T23:59:00", 31},
		{"2026-10-16", "2026-10-16", 1},
		{"2026-02-01T00:00", "2026-02-28T23:59", 28},
		{"2026-10-31", "2026-10-01", 0},
		{"bogus", "2026-10-01", 0},
		{"", "", 0},
	}

	for _, tt := range tests {
		if got := InclusiveDays(tt.start, tt.end); got != tt.want {
			t.Errorf("InclusiveDays(%q, %q) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}
}
