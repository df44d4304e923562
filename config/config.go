/*
Package config loads the external resources invoice generation consumes:
the invoicing business identity, the skill rate book, and the client
roster.

PURPOSE:
  The invoice core only consumes capabilities (IdentityProvider,
  RateBook); this package binds them to concrete files so the core stays
  decoupled from any loading mechanism.

FILES:
  business.properties  KEY=VALUE identity resource (godotenv format)
  rates.yaml           skill -> hourly rate
  clients.yaml         client accounts with address and contact

ERROR POLICY:
  Identity load failures are returned to the caller; the invoice core
  logs and tolerates them (degraded rendering). Rate book and client
  roster failures are hard errors - there is nothing sensible to bill
  without them. An unrecognized state code fails address construction
  and is never swallowed.
*/
package config

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/warp/invoice-engine/billing"
	"github.com/warp/invoice-engine/invoice"
)

// Identity resource keys.
const (
	KeyBusinessName   = "BUSINESS_NAME"
	KeyBusinessStreet = "BUSINESS_STREET"
	KeyBusinessCity   = "BUSINESS_CITY"
	KeyBusinessState  = "BUSINESS_STATE"
	KeyBusinessZip    = "BUSINESS_ZIP"
)

// =============================================================================
// IDENTITY PROVIDER - business.properties
// =============================================================================

// FileIdentityProvider resolves the business identity from a KEY=VALUE
// properties file.
type FileIdentityProvider struct {
	Path string
}

func NewIdentityProvider(path string) *FileIdentityProvider {
	return &FileIdentityProvider{Path: path}
}

// BusinessIdentity loads and validates the identity resource. A missing
// file or a bad state code both surface as errors; the invoice core
// decides how tolerant to be.
func (p *FileIdentityProvider) BusinessIdentity() (invoice.Identity, error) {
	values, err := godotenv.Read(p.Path)
	if err != nil {
		return invoice.Identity{}, fmt.Errorf("load business properties %s: %w", p.Path, err)
	}

	address, err := billing.NewAddress(
		values[KeyBusinessStreet],
		values[KeyBusinessCity],
		values[KeyBusinessState],
		values[KeyBusinessZip],
	)
	if err != nil {
		return invoice.Identity{}, fmt.Errorf("business address: %w", err)
	}

	return invoice.Identity{
		BusinessName: values[KeyBusinessName],
		Address:      address,
	}, nil
}

// Compile-time check that FileIdentityProvider implements IdentityProvider
var _ invoice.IdentityProvider = (*FileIdentityProvider)(nil)
