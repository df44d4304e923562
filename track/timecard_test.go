package track_test

import (
	"errors"
	"testing"
	"time"

	"github.com/warp/invoice-engine/billing"
	"github.com/warp/invoice-engine/track"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func testClient(name string) *track.ClientAccount {
	addr, _ := billing.NewAddress("1616 Index Ct.", "Redmond", "WA", "98055")
	return track.NewClientAccount(name,
		track.PersonalName{LastName: "Coyote", FirstName: "Wile", MiddleName: "E"},
		addr)
}

func testConsultant() track.Consultant {
	return track.Consultant{Name: track.PersonalName{LastName: "Spackle", FirstName: "Carl"}}
}

func mustEntry(t *testing.T, date time.Time, account track.Account, hours int) track.ConsultantTime {
	t.Helper()
	entry, err := track.NewConsultantTime(date, account, billing.SkillSoftwareEngineer, hours)
	if err != nil {
		t.Fatalf("NewConsultantTime: %v", err)
	}
	return entry
}

// =============================================================================
// BILLABLE-ENTRY QUERY TESTS
// =============================================================================

func TestTimeCard_BillableEntriesForClient(t *testing.T) {
	// GIVEN: A card with entries for two clients plus vacation time
	// WHEN: Querying billable entries for one client
	// THEN: Only that client's entries come back, in logging order

	acme := testClient("Acme Industries")
	other := testClient("Initech")
	day := time.Date(2013, time.March, 4, 0, 0, 0, 0, time.UTC)

	card := track.NewTimeCard(testConsultant(), day)
	card.AddEntry(mustEntry(t, day, acme, 8))
	card.AddEntry(mustEntry(t, day.AddDate(0, 0, 1), other, 6))
	card.AddEntry(mustEntry(t, day.AddDate(0, 0, 2), track.Vacation, 8))
	card.AddEntry(mustEntry(t, day.AddDate(0, 0, 3), acme, 4))

	entries := card.BillableEntriesForClient("Acme Industries")
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Hours() != 8 || entries[1].Hours() != 4 {
		t.Errorf("entries out of logging order: %d, %d", entries[0].Hours(), entries[1].Hours())
	}
}

func TestTimeCard_BillableEntriesForClient_ExactNameMatch(t *testing.T) {
	// Matching is case-sensitive and exact.

	acme := testClient("Acme Industries")
	day := time.Date(2013, time.March, 4, 0, 0, 0, 0, time.UTC)

	card := track.NewTimeCard(testConsultant(), day)
	card.AddEntry(mustEntry(t, day, acme, 8))

	if got := card.BillableEntriesForClient("acme industries"); len(got) != 0 {
		t.Errorf("lowercase name matched %d entries, want 0", len(got))
	}
	if got := card.BillableEntriesForClient("Acme"); len(got) != 0 {
		t.Errorf("prefix name matched %d entries, want 0", len(got))
	}
}

func TestTimeCard_NonBillableExcluded(t *testing.T) {
	// Non-billable buckets share names with nothing billable, but even a
	// direct query for their name returns nothing billable.

	day := time.Date(2013, time.March, 4, 0, 0, 0, 0, time.UTC)
	card := track.NewTimeCard(testConsultant(), day)
	card.AddEntry(mustEntry(t, day, track.SickLeave, 8))

	if got := card.BillableEntriesForClient("Sick Leave"); len(got) != 0 {
		t.Errorf("non-billable entries leaked into billable query: %d", len(got))
	}
}

// =============================================================================
// TOTALS AND VALIDATION
// =============================================================================

func TestTimeCard_HourTotals(t *testing.T) {
	acme := testClient("Acme Industries")
	day := time.Date(2013, time.March, 4, 0, 0, 0, 0, time.UTC)

	card := track.NewTimeCard(testConsultant(), day)
	card.AddEntry(mustEntry(t, day, acme, 8))
	card.AddEntry(mustEntry(t, day, track.Vacation, 8))
	card.AddEntry(mustEntry(t, day, track.BusinessDevelopment, 2))

	if got := card.TotalBillableHours(); got != 8 {
		t.Errorf("TotalBillableHours() = %d, want 8", got)
	}
	if got := card.TotalNonBillableHours(); got != 10 {
		t.Errorf("TotalNonBillableHours() = %d, want 10", got)
	}
	if got := card.TotalHours(); got != 18 {
		t.Errorf("TotalHours() = %d, want 18", got)
	}
}

func TestNewConsultantTime_NegativeHoursRejected(t *testing.T) {
	day := time.Date(2013, time.March, 4, 0, 0, 0, 0, time.UTC)
	_, err := track.NewConsultantTime(day, track.Vacation, billing.SkillSoftwareEngineer, -1)
	if !errors.Is(err, billing.ErrNegativeHours) {
		t.Errorf("expected ErrNegativeHours, got %v", err)
	}
}

func TestPersonalName_String(t *testing.T) {
	cases := []struct {
		name track.PersonalName
		want string
	}{
		{track.PersonalName{LastName: "Spackle", FirstName: "Carl"}, "Spackle, Carl"},
		{track.PersonalName{LastName: "Coyote", FirstName: "Wile", MiddleName: "E"}, "Coyote, Wile E"},
		{track.PersonalName{LastName: "Cher"}, "Cher"},
	}
	for _, tc := range cases {
		if got := tc.name.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}
