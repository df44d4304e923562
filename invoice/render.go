/*
render.go - Paginated fixed-width invoice report

PURPOSE:
  Turns an invoice's line items plus header/footer metadata into the
  final text document. Rendering is a pure function of (line items,
  identity, client, injected clock, page capacity): the page counter is
  an explicit local threaded through page emission, never shared state.

PAGE STATE MACHINE:
  Start: rowsOnPage = 0, page = 1, emit header.
  Per item (insertion order): emit row, rowsOnPage++. When rowsOnPage
  reaches the page capacity: emit footer (showing the page just
  completed), page++, emit fresh header, rowsOnPage = 0.
  Terminal: emit the grand-total line, then exactly one final footer -
  always, even directly after a mid-document break left a page with no
  rows. There is no blank-page suppression.

LAYOUT:
  Five columns at fixed widths 10, 29, 18, 5, 10 with two-space gutters.
  Charges print with thousands separators and two decimals. Each footer
  is followed by an 80-column rule of '=' as the page separator.
*/
package invoice

import (
	"fmt"
	"strings"
	"time"
)

// Column widths for the Date / Consultant / Skill / Hours / Charge table.
const (
	colDate       = 10
	colConsultant = 29
	colSkill      = 18
	colHours      = 5
	colCharge     = 10

	pageRuleWidth = 80
)

// Render produces the complete invoice document. The wall clock is read
// once per call to stamp the invoice date, so output is deterministic
// only under an injected FixedClock.
func (inv *Invoice) Render() string {
	invoiceDate := inv.clock.Now()

	var b strings.Builder
	page := 1
	inv.writePageHeader(&b, invoiceDate)

	rowsOnPage := 0
	for _, item := range inv.items {
		inv.writeRow(&b, item)
		rowsOnPage++
		if rowsOnPage >= inv.pageCapacity {
			b.WriteString("\n")
			inv.writeFooter(&b, page)
			page++
			inv.writePageHeader(&b, invoiceDate)
			rowsOnPage = 0
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total: %61d  %10s\n", inv.TotalHours(), inv.TotalCharges().Grouped())
	inv.writeFooter(&b, page)

	return b.String()
}

// String renders the invoice; kept so an Invoice prints as its document.
func (inv *Invoice) String() string { return inv.Render() }

// writePageHeader emits the business block, the client block, the period
// and invoice-date lines, and the column headers with their dashed rule.
func (inv *Invoice) writePageHeader(b *strings.Builder, invoiceDate time.Time) {
	fmt.Fprintf(b, "%s\n%s\n", inv.identity.BusinessName, inv.identity.Address)

	b.WriteString("Invoice for:\n")
	fmt.Fprintf(b, "%s\n", inv.client)

	b.WriteString("\n")
	fmt.Fprintf(b, "Invoice for month of: %s\n", inv.period)
	fmt.Fprintf(b, "Invoice Date: %s\n", invoiceDate.Format("January 02, 2006"))
	b.WriteString("\n")

	fmt.Fprintf(b, "%-*s  %-*s  %-*s  %-*s  %-*s\n",
		colDate, "Date",
		colConsultant, "Consultant",
		colSkill, "Skill",
		colHours, "Hours",
		colCharge, "Charge")
	fmt.Fprintf(b, "%s  %s  %s  %s  %s\n",
		strings.Repeat("-", colDate),
		strings.Repeat("-", colConsultant),
		strings.Repeat("-", colSkill),
		strings.Repeat("-", colHours),
		strings.Repeat("-", colCharge))
}

// writeRow emits one line item at the fixed column widths.
func (inv *Invoice) writeRow(b *strings.Builder, item LineItem) {
	fmt.Fprintf(b, "%-*s  %-*s  %-*s  %*d  %*s\n",
		colDate, item.Date().Format("01/02/2006"),
		colConsultant, item.Consultant(),
		colSkill, string(item.Skill()),
		colHours, item.Hours(),
		colCharge, item.Charge().Grouped())
}

// writeFooter emits the business-name footer for the page just completed
// and the full-width page separator.
func (inv *Invoice) writeFooter(b *strings.Builder, page int) {
	b.WriteString("\n")
	fmt.Fprintf(b, "%-69s  Page: %3d\n", inv.identity.BusinessName, page)
	b.WriteString(strings.Repeat("=", pageRuleWidth))
	b.WriteString("\n")
}
