/*
Package track implements the consultant time-tracking domain.

PURPOSE:
  Time entries are logged by consultants against accounts. Billable
  entries belong to client accounts and flow into invoices; non-billable
  entries (sick leave, vacation, business development) are tracked but
  never billed.

KEY CONCEPTS:
  - Account: anything time can be charged to (client or internal bucket)
  - ClientAccount: a billable client with address and contact
  - NonBillableAccount: fixed internal buckets, never billable
  - ConsultantTime: one dated, skill-tagged hour count (entry.go)
  - TimeCard: a consultant's collection of entries (timecard.go)

SEE ALSO:
  - invoice: consumes TimeCard.BillableEntriesForClient
*/
package track

import (
	"fmt"
	"strings"

	"github.com/warp/invoice-engine/billing"
)

// =============================================================================
// PERSONAL NAME
// =============================================================================

// PersonalName is a person's name in its report display form.
type PersonalName struct {
	LastName   string
	FirstName  string
	MiddleName string
}

// String renders "Last, First Middle", dropping empty parts.
func (n PersonalName) String() string {
	var b strings.Builder
	b.WriteString(n.LastName)
	if n.FirstName != "" {
		b.WriteString(", ")
		b.WriteString(n.FirstName)
	}
	if n.MiddleName != "" {
		b.WriteString(" ")
		b.WriteString(n.MiddleName)
	}
	return b.String()
}

// Consultant identifies the person whose time a time card records.
type Consultant struct {
	Name PersonalName
}

func (c Consultant) String() string { return c.Name.String() }

// =============================================================================
// ACCOUNT - What time is charged to
// =============================================================================

// Account is the capability shared by billable clients and internal
// non-billable buckets.
type Account interface {
	// Name returns the account's display name. Entry-to-client matching
	// is exact (case-sensitive) on this name.
	Name() string

	// IsBillable reports whether time on this account is invoiced.
	IsBillable() bool
}

// =============================================================================
// CLIENT ACCOUNT - Billable client
// =============================================================================

// ClientAccount is a billing target: a client with a postal address and a
// contact person. Referenced (not owned) by invoices.
type ClientAccount struct {
	name    string
	contact PersonalName
	address billing.Address
}

func NewClientAccount(name string, contact PersonalName, address billing.Address) *ClientAccount {
	return &ClientAccount{name: name, contact: contact, address: address}
}

func (c *ClientAccount) Name() string             { return c.name }
func (c *ClientAccount) IsBillable() bool         { return true }
func (c *ClientAccount) Contact() PersonalName    { return c.contact }
func (c *ClientAccount) Address() billing.Address { return c.address }

func (c *ClientAccount) String() string {
	return fmt.Sprintf("%s\n%s\n%s", c.name, c.address, c.contact)
}

// =============================================================================
// NON-BILLABLE ACCOUNT - Internal time buckets
// =============================================================================

// NonBillableAccount is an internal account such as sick leave or
// vacation. Time logged here is tracked on time cards but excluded from
// every invoice.
type NonBillableAccount string

const (
	SickLeave           NonBillableAccount = "Sick Leave"
	Vacation            NonBillableAccount = "Vacation"
	BusinessDevelopment NonBillableAccount = "Business Development"
)

func (n NonBillableAccount) Name() string     { return string(n) }
func (n NonBillableAccount) IsBillable() bool { return false }

// =============================================================================
// ACCOUNT REF - Name-only account reference
// =============================================================================

// AccountRef is a lightweight account reference used when rehydrating
// entries from storage, where only the account name and billability were
// persisted.
type AccountRef struct {
	AccountName string
	Billable    bool
}

func (r AccountRef) Name() string     { return r.AccountName }
func (r AccountRef) IsBillable() bool { return r.Billable }

// Compile-time checks that all account kinds implement Account
var (
	_ Account = (*ClientAccount)(nil)
	_ Account = NonBillableAccount("")
	_ Account = AccountRef{}
)
