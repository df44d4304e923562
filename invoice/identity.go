package invoice

import "github.com/warp/invoice-engine/billing"

// =============================================================================
// BUSINESS IDENTITY - Who the invoice is from
// =============================================================================

// Identity is the invoicing business' name and address, printed in every
// page header and footer. A zero Identity renders as blank text; that is
// the degraded form used when the identity resource cannot be loaded.
type Identity struct {
	BusinessName string
	Address      billing.Address
}

// IdentityProvider resolves the business identity once, at invoice
// construction. Implementations decide where the identity lives (a
// properties file, environment, a literal); the invoice core only
// consumes the capability.
type IdentityProvider interface {
	BusinessIdentity() (Identity, error)
}

// StaticIdentity is an IdentityProvider for a known-in-advance identity.
type StaticIdentity Identity

func (s StaticIdentity) BusinessIdentity() (Identity, error) {
	return Identity(s), nil
}

// Compile-time check that StaticIdentity implements IdentityProvider
var _ IdentityProvider = StaticIdentity{}
