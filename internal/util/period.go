package util

import (
	"fmt"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
)

// Lexical layouts shared with the backend. Transaction dates sort and
// prefix-match correctly as plain strings in these forms.
const (
	DateLayout     = "2006-01-02"
	MonthLayout    = "2006-01"
	DateTimeLayout = "2006-01-02T15:04:05"
)

// DateKey returns t's local calendar date as YYYY-MM-DD
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// MonthKey returns t's local calendar month as YYYY-MM
func MonthKey(t time.Time) string {
	return t.Format(MonthLayout)
}

// PeriodRange returns the start (first day 00:00) and end (last day 23:59)
// of the recurring budget period containing ref.
func PeriodRange(period domain.BudgetPeriod, ref time.Time) (time.Time, time.Time, error) {
	year, month, loc := ref.Year(), ref.Month(), ref.Location()

	var startMonth, endMonth time.Month
	switch period {
	case domain.BudgetPeriodMonthly:
		startMonth, endMonth = month, month
	case domain.BudgetPeriodQuarterly:
		startMonth = ((month-1)/3)*3 + 1
		endMonth = startMonth + 2
	case domain.BudgetPeriodYearly:
		startMonth, endMonth = time.January, time.December
	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid period %q", domain.ErrInvalidInput, period)
	}

	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, loc)
	// Day 0 of the following month is the last day of endMonth
	lastDay := time.Date(year, endMonth+1, 0, 0, 0, 0, 0, loc).Day()
	end := time.Date(year, endMonth, lastDay, 23, 59, 0, 0, loc)
	return start, end, nil
}

// NextPeriodRange returns the period that starts one minute after currentEnd.
func NextPeriodRange(period domain.BudgetPeriod, currentEnd time.Time) (time.Time, time.Time, error) {
	return PeriodRange(period, currentEnd.Add(time.Minute))
}

// DefaultCustomRange returns the date range a new custom budget starts
// with: today 00:00 through the same day next month 23:59.
func DefaultCustomRange(now time.Time) (string, string) {
	next := now.AddDate(0, 1, 0)
	return DateKey(now) + "T00:00", DateKey(next) + "T23:59"
}

// InclusiveDays counts the calendar days from start to end, both included,
// using the YYYY-MM-DD prefix of each. Unparseable or reversed input yields 0.
func InclusiveDays(start, end string) int {
	if len(start) < len(DateLayout) || len(end) < len(DateLayout) {
		return 0
	}
	s, err := time.Parse(DateLayout, start[:len(DateLayout)])
	if err != nil {
		return 0
	}
	e, err := time.Parse(DateLayout, end[:len(DateLayout)])
	if err != nil {
		return 0
	}
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}
