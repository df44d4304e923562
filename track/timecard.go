package track

import "time"

// =============================================================================
// TIME CARD - A consultant's collection of entries
// =============================================================================

// TimeCard holds one consultant's time entries, in the order they were
// logged, spanning any mix of accounts and dates. Read-only from the
// invoice core's perspective; invoices only consume
// BillableEntriesForClient.
//
// Not safe for concurrent mutation; each card is owned by its caller.
type TimeCard struct {
	consultant   Consultant
	weekStarting time.Time
	entries      []ConsultantTime
}

func NewTimeCard(consultant Consultant, weekStarting time.Time) *TimeCard {
	return &TimeCard{consultant: consultant, weekStarting: weekStarting}
}

func (tc *TimeCard) Consultant() Consultant   { return tc.consultant }
func (tc *TimeCard) WeekStarting() time.Time  { return tc.weekStarting }

// AddEntry appends an entry, preserving logging order.
func (tc *TimeCard) AddEntry(entry ConsultantTime) {
	tc.entries = append(tc.entries, entry)
}

// Entries returns a copy of all entries in logging order.
func (tc *TimeCard) Entries() []ConsultantTime {
	out := make([]ConsultantTime, len(tc.entries))
	copy(out, tc.entries)
	return out
}

// BillableEntriesForClient returns the billable entries charged to the
// named client, in logging order. Matching is exact on the account name.
// Callers filter by period themselves.
func (tc *TimeCard) BillableEntriesForClient(clientName string) []ConsultantTime {
	var matched []ConsultantTime
	for _, entry := range tc.entries {
		if entry.IsBillable() && entry.Account().Name() == clientName {
			matched = append(matched, entry)
		}
	}
	return matched
}

// TotalBillableHours sums hours over billable entries.
func (tc *TimeCard) TotalBillableHours() int {
	total := 0
	for _, entry := range tc.entries {
		if entry.IsBillable() {
			total += entry.Hours()
		}
	}
	return total
}

// TotalNonBillableHours sums hours over non-billable entries.
func (tc *TimeCard) TotalNonBillableHours() int {
	total := 0
	for _, entry := range tc.entries {
		if !entry.IsBillable() {
			total += entry.Hours()
		}
	}
	return total
}

// TotalHours sums hours over all entries.
func (tc *TimeCard) TotalHours() int {
	return tc.TotalBillableHours() + tc.TotalNonBillableHours()
}
