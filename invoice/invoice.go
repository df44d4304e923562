/*
Package invoice builds and renders client invoices from time cards.

PURPOSE:
  An Invoice covers one client and one calendar month. Time cards are fed
  in one at a time; qualifying billable entries become line items in
  processing order. Totals and the rendered document are computed on
  demand from the current line items.

KEY CONCEPTS:
  - Invoice: owns the line-item sequence for one client/month (this file)
  - LineItem: one row, charge = hours x hourly rate (lineitem.go)
  - Identity/IdentityProvider: the invoicing business block (identity.go)
  - Renderer: paginated fixed-width text report (render.go)

EXTRACTION RULES:
  1. The time card supplies billable entries for the client by exact
     name match (the card's own contract).
  2. Entries are kept when their date's calendar month equals the
     invoice month. The YEAR IS NOT COMPARED - a documented limitation
     of the invoicing rules, pinned by tests, not a feature.
  3. Kept entries are materialized in processing order. Repeated
     extraction of the same card double-counts; callers must feed each
     card at most once.

ERROR TOLERANCE:
  A failing identity provider does not fail construction. The failure is
  logged and the invoice renders with blank identity fields.

SEE ALSO:
  - track/timecard.go: BillableEntriesForClient capability
  - billing/rates.go: RateBook supplying hourly rates
*/
package invoice

import (
	"log/slog"
	"time"

	"github.com/warp/invoice-engine/billing"
	"github.com/warp/invoice-engine/track"
)

// defaultPageCapacity is the number of line items per rendered page.
const defaultPageCapacity = 5

// =============================================================================
// INVOICE - One client, one month
// =============================================================================

// Invoice accumulates line items for one client and month and renders
// them as a paginated text report. Not safe for concurrent extraction;
// each Invoice is owned by its caller.
type Invoice struct {
	client *track.ClientAccount
	period billing.MonthPeriod

	identity Identity
	rates    billing.RateBook
	clock    billing.Clock

	pageCapacity int

	// Insertion order across extraction calls, never sorted: pagination
	// depends on which entries landed on which page.
	items []LineItem
}

// Option adjusts invoice construction.
type Option func(*Invoice)

// WithClock injects the time source used to stamp the invoice date.
func WithClock(clock billing.Clock) Option {
	return func(inv *Invoice) { inv.clock = clock }
}

// WithPageCapacity overrides the items-per-page constant.
func WithPageCapacity(n int) Option {
	return func(inv *Invoice) {
		if n > 0 {
			inv.pageCapacity = n
		}
	}
}

// New constructs an Invoice for a client and month. The identity provider
// is resolved once, here; a provider failure is logged and tolerated, and
// the invoice renders with blank identity fields.
func New(client *track.ClientAccount, month time.Month, year int, rates billing.RateBook, provider IdentityProvider, opts ...Option) *Invoice {
	inv := &Invoice{
		client:       client,
		period:       billing.NewMonthPeriod(year, month),
		rates:        rates,
		clock:        billing.SystemClock{},
		pageCapacity: defaultPageCapacity,
	}
	for _, opt := range opts {
		opt(inv)
	}

	if provider != nil {
		identity, err := provider.BusinessIdentity()
		if err != nil {
			slog.Warn("business identity unavailable, invoice will render without it",
				"client", client.Name(), "error", err)
		} else {
			inv.identity = identity
		}
	}

	return inv
}

func (inv *Invoice) Client() *track.ClientAccount { return inv.client }
func (inv *Invoice) Month() time.Month            { return inv.period.Month }
func (inv *Invoice) Year() int                    { return inv.period.Year }

// StartDate returns the first day of the invoice month, used for display.
func (inv *Invoice) StartDate() time.Time { return inv.period.Start() }

// EndDate returns the last day of the invoice month, used for display.
func (inv *Invoice) EndDate() time.Time { return inv.period.End() }

// LineItems returns a copy of the current line items in insertion order.
func (inv *Invoice) LineItems() []LineItem {
	out := make([]LineItem, len(inv.items))
	copy(out, inv.items)
	return out
}

// =============================================================================
// LINE-ITEM BUILDER
// =============================================================================

// ExtractLineItems pulls the client's billable entries for the invoice
// month out of a time card and appends them as line items.
//
// Zero matching entries is a valid outcome, not an error. Extraction does
// NOT deduplicate: feeding the same card twice double-counts, so callers
// must extract each card at most once per invoice.
func (inv *Invoice) ExtractLineItems(card *track.TimeCard) error {
	for _, entry := range card.BillableEntriesForClient(inv.client.Name()) {
		if !inv.period.ContainsMonth(entry.Date()) {
			continue
		}
		item, err := newLineItem(entry.Date(), card.Consultant(), entry.Skill(), entry.Hours(), inv.rates)
		if err != nil {
			return err
		}
		inv.items = append(inv.items, item)
	}
	return nil
}

// =============================================================================
// AGGREGATOR - Running totals
// =============================================================================

// TotalHours sums hours over the current line items. Recomputed on every
// call; correct after any number of extraction calls, including zero.
func (inv *Invoice) TotalHours() int {
	hours := 0
	for _, item := range inv.items {
		hours += item.Hours()
	}
	return hours
}

// TotalCharges sums charges over the current line items. Recomputed on
// every call.
func (inv *Invoice) TotalCharges() billing.Money {
	charges := billing.Money{}
	for _, item := range inv.items {
		charges = charges.Add(item.Charge())
	}
	return charges
}
