package billing

import (
	"fmt"
	"time"
)

// =============================================================================
// MONTH PERIOD - The invoicing period
// =============================================================================

// MonthPeriod is one calendar month of one nominal year. Invoices carry a
// MonthPeriod; its Start/End bounds are used for display and its month is
// used to filter time entries.
type MonthPeriod struct {
	Year  int
	Month time.Month
}

func NewMonthPeriod(year int, month time.Month) MonthPeriod {
	return MonthPeriod{Year: year, Month: month}
}

// Start returns the first day of the period.
func (p MonthPeriod) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the last day of the period.
func (p MonthPeriod) End() time.Time {
	return time.Date(p.Year, p.Month+1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

// ContainsMonth reports whether the date falls in the period's calendar
// month. The year is deliberately not compared: period matching is
// month-only, a documented limitation of the invoicing rules.
func (p MonthPeriod) ContainsMonth(t time.Time) bool {
	return t.Month() == p.Month
}

// String returns the display form used in invoice headers, e.g. "March 2013".
func (p MonthPeriod) String() string {
	return fmt.Sprintf("%s %d", p.Month, p.Year)
}
