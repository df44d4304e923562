package invoice_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/invoice-engine/billing"
	"github.com/warp/invoice-engine/invoice"
	"github.com/warp/invoice-engine/track"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func testRates() billing.MapRateBook {
	return billing.MapRateBook{
		billing.SkillSoftwareEngineer: billing.MoneyFromInt(100),
		billing.SkillArchitect:        billing.MoneyFromInt(200),
	}
}

func testClient(t *testing.T, name string) *track.ClientAccount {
	t.Helper()
	addr, err := billing.NewAddress("1616 Index Ct.", "Redmond", "WA", "98055")
	require.NoError(t, err)
	return track.NewClientAccount(name,
		track.PersonalName{LastName: "Coyote", FirstName: "Wile", MiddleName: "E"},
		addr)
}

func testIdentity(t *testing.T) invoice.StaticIdentity {
	t.Helper()
	addr, err := billing.NewAddress("1024 Elm Street", "Seattle", "WA", "98101")
	require.NoError(t, err)
	return invoice.StaticIdentity{
		BusinessName: "The Small Consulting Group",
		Address:      addr,
	}
}

func testConsultant() track.Consultant {
	return track.Consultant{Name: track.PersonalName{LastName: "Spackle", FirstName: "Carl"}}
}

// cardFor builds a card with one 8-hour software engineering entry per
// given date, all charged to the account.
func cardFor(t *testing.T, account track.Account, dates ...time.Time) *track.TimeCard {
	t.Helper()
	week := time.Date(2013, time.March, 4, 0, 0, 0, 0, time.UTC)
	card := track.NewTimeCard(testConsultant(), week)
	for _, d := range dates {
		entry, err := track.NewConsultantTime(d, account, billing.SkillSoftwareEngineer, 8)
		require.NoError(t, err)
		card.AddEntry(entry)
	}
	return card
}

func march(day int) time.Time {
	return time.Date(2013, time.March, day, 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// EXTRACTION TESTS
// =============================================================================

func TestExtractLineItems_FiltersByClientAndMonth(t *testing.T) {
	// GIVEN: A card mixing the target client, another client, vacation
	//        time, and an out-of-month entry for the target client
	// WHEN: Extracting into an invoice for (Acme, March)
	// THEN: Only Acme's March entries become line items

	acme := testClient(t, "Acme Industries")
	other := testClient(t, "Initech")
	week := march(4)

	card := track.NewTimeCard(testConsultant(), week)
	for _, e := range []struct {
		date    time.Time
		account track.Account
	}{
		{march(4), acme},
		{march(5), other},
		{march(6), track.Vacation},
		{time.Date(2013, time.April, 1, 0, 0, 0, 0, time.UTC), acme},
		{march(7), acme},
	} {
		entry, err := track.NewConsultantTime(e.date, e.account, billing.SkillSoftwareEngineer, 8)
		require.NoError(t, err)
		card.AddEntry(entry)
	}

	inv := invoice.New(acme, time.March, 2013, testRates(), testIdentity(t))
	require.NoError(t, inv.ExtractLineItems(card))

	items := inv.LineItems()
	require.Len(t, items, 2)
	assert.Equal(t, march(4), items[0].Date())
	assert.Equal(t, march(7), items[1].Date())
	for _, item := range items {
		assert.Equal(t, time.March, item.Date().Month())
	}
}

func TestExtractLineItems_WrongYearStillIncluded(t *testing.T) {
	// Pins the documented limitation: period matching compares the month
	// only, so a March entry from a different year is still included.

	acme := testClient(t, "Acme Industries")
	wrongYear := time.Date(2011, time.March, 10, 0, 0, 0, 0, time.UTC)
	card := cardFor(t, acme, wrongYear)

	inv := invoice.New(acme, time.March, 2013, testRates(), testIdentity(t))
	require.NoError(t, inv.ExtractLineItems(card))

	require.Len(t, inv.LineItems(), 1)
	assert.Equal(t, wrongYear, inv.LineItems()[0].Date())
}

func TestExtractLineItems_SameCardTwiceDoubleCounts(t *testing.T) {
	// Pins the documented behavior: extraction does not deduplicate, so
	// feeding the same card twice doubles hours and charges.

	acme := testClient(t, "Acme Industries")
	card := cardFor(t, acme, march(4), march(5))
	inv := invoice.New(acme, time.March, 2013, testRates(), testIdentity(t))

	require.NoError(t, inv.ExtractLineItems(card))
	hoursOnce, chargesOnce := inv.TotalHours(), inv.TotalCharges()

	require.NoError(t, inv.ExtractLineItems(card))

	assert.Equal(t, 2*hoursOnce, inv.TotalHours())
	assert.True(t, inv.TotalCharges().Equal(chargesOnce.Add(chargesOnce)),
		"charges should double: %s vs %s", inv.TotalCharges(), chargesOnce)
}

func TestExtractLineItems_NoMatchesIsNotAnError(t *testing.T) {
	acme := testClient(t, "Acme Industries")
	other := testClient(t, "Initech")
	card := cardFor(t, other, march(4))

	inv := invoice.New(acme, time.March, 2013, testRates(), testIdentity(t))
	require.NoError(t, inv.ExtractLineItems(card))
	assert.Empty(t, inv.LineItems())
}

func TestExtractLineItems_UnknownSkillSurfaces(t *testing.T) {
	// An entry whose skill has no configured rate is a rate-book error.

	acme := testClient(t, "Acme Industries")
	week := march(4)
	card := track.NewTimeCard(testConsultant(), week)
	entry, err := track.NewConsultantTime(march(4), acme, billing.Skill("Dowsing"), 8)
	require.NoError(t, err)
	card.AddEntry(entry)

	inv := invoice.New(acme, time.March, 2013, testRates(), testIdentity(t))
	err = inv.ExtractLineItems(card)
	require.Error(t, err)
	assert.True(t, errors.Is(err, billing.ErrUnknownSkill))
}

// =============================================================================
// AGGREGATOR TESTS
// =============================================================================

func TestTotals_RecomputedAfterEachExtraction(t *testing.T) {
	// Totals are pure functions of current state: correct after zero,
	// one, and N extraction calls.

	acme := testClient(t, "Acme Industries")
	inv := invoice.New(acme, time.March, 2013, testRates(), testIdentity(t))

	assert.Equal(t, 0, inv.TotalHours())
	assert.True(t, inv.TotalCharges().IsZero())

	require.NoError(t, inv.ExtractLineItems(cardFor(t, acme, march(4))))
	assert.Equal(t, 8, inv.TotalHours())
	assert.True(t, inv.TotalCharges().Equal(billing.MoneyFromInt(800)))

	require.NoError(t, inv.ExtractLineItems(cardFor(t, acme, march(5), march(6))))
	assert.Equal(t, 24, inv.TotalHours())
	assert.True(t, inv.TotalCharges().Equal(billing.MoneyFromInt(2400)))
}

func TestTotals_MixedSkillRates(t *testing.T) {
	acme := testClient(t, "Acme Industries")
	week := march(4)
	card := track.NewTimeCard(testConsultant(), week)

	eng, err := track.NewConsultantTime(march(4), acme, billing.SkillSoftwareEngineer, 8)
	require.NoError(t, err)
	arch, err := track.NewConsultantTime(march(5), acme, billing.SkillArchitect, 4)
	require.NoError(t, err)
	card.AddEntry(eng)
	card.AddEntry(arch)

	inv := invoice.New(acme, time.March, 2013, testRates(), testIdentity(t))
	require.NoError(t, inv.ExtractLineItems(card))

	assert.Equal(t, 12, inv.TotalHours())
	// 8*100 + 4*200
	assert.True(t, inv.TotalCharges().Equal(billing.MoneyFromInt(1600)))
}

// =============================================================================
// CONSTRUCTION TESTS
// =============================================================================

func TestNew_DisplayBounds(t *testing.T) {
	acme := testClient(t, "Acme Industries")
	inv := invoice.New(acme, time.February, 2013, testRates(), testIdentity(t))

	assert.Equal(t, time.Date(2013, time.February, 1, 0, 0, 0, 0, time.UTC), inv.StartDate())
	assert.Equal(t, time.Date(2013, time.February, 28, 0, 0, 0, 0, time.UTC), inv.EndDate())
}

type failingProvider struct{}

func (failingProvider) BusinessIdentity() (invoice.Identity, error) {
	return invoice.Identity{}, errors.New("properties resource missing")
}

func TestNew_IdentityLoadFailureTolerated(t *testing.T) {
	// GIVEN: An identity provider that cannot load its resource
	// WHEN: Constructing and using the invoice
	// THEN: Construction succeeds and extraction/totals work normally

	acme := testClient(t, "Acme Industries")
	inv := invoice.New(acme, time.March, 2013, testRates(), failingProvider{})

	require.NoError(t, inv.ExtractLineItems(cardFor(t, acme, march(4))))
	assert.Equal(t, 8, inv.TotalHours())
}
