package billing

import (
	"fmt"
	"strings"
)

// =============================================================================
// STATE CODE - Validated US state/territory code
// =============================================================================

// StateCode is a two-letter US state, district, or territory code. Values
// are only created through NewStateCode, which validates against the
// recognized set; an invalid code is a configuration error and fails
// address construction.
type StateCode string

var stateNames = map[StateCode]string{
	"AL": "Alabama", "AK": "Alaska", "AZ": "Arizona", "AR": "Arkansas",
	"CA": "California", "CO": "Colorado", "CT": "Connecticut", "DE": "Delaware",
	"DC": "District of Columbia", "FL": "Florida", "GA": "Georgia", "HI": "Hawaii",
	"ID": "Idaho", "IL": "Illinois", "IN": "Indiana", "IA": "Iowa",
	"KS": "Kansas", "KY": "Kentucky", "LA": "Louisiana", "ME": "Maine",
	"MD": "Maryland", "MA": "Massachusetts", "MI": "Michigan", "MN": "Minnesota",
	"MS": "Mississippi", "MO": "Missouri", "MT": "Montana", "NE": "Nebraska",
	"NV": "Nevada", "NH": "New Hampshire", "NJ": "New Jersey", "NM": "New Mexico",
	"NY": "New York", "NC": "North Carolina", "ND": "North Dakota", "OH": "Ohio",
	"OK": "Oklahoma", "OR": "Oregon", "PA": "Pennsylvania", "PR": "Puerto Rico",
	"RI": "Rhode Island", "SC": "South Carolina", "SD": "South Dakota",
	"TN": "Tennessee", "TX": "Texas", "UT": "Utah", "VT": "Vermont",
	"VA": "Virginia", "WA": "Washington", "WV": "West Virginia",
	"WI": "Wisconsin", "WY": "Wyoming",
}

// NewStateCode validates and normalizes a state code.
func NewStateCode(code string) (StateCode, error) {
	sc := StateCode(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := stateNames[sc]; !ok {
		return "", &UnknownStateError{Code: code}
	}
	return sc, nil
}

// FullName returns the spelled-out state name, or the code itself if the
// value bypassed validation.
func (sc StateCode) FullName() string {
	if name, ok := stateNames[sc]; ok {
		return name
	}
	return string(sc)
}

// =============================================================================
// ADDRESS - Postal address value
// =============================================================================

// Address is an immutable postal address. Construction fails on an
// unrecognized state code; missing street/city/zip are not validated here
// and render as empty text.
type Address struct {
	Street string
	City   string
	State  StateCode
	Zip    string
}

func NewAddress(street, city, state, zip string) (Address, error) {
	sc, err := NewStateCode(state)
	if err != nil {
		return Address{}, err
	}
	return Address{Street: street, City: city, State: sc, Zip: zip}, nil
}

// IsZero reports whether the address carries no information, which is how
// a tolerated identity-load failure presents.
func (a Address) IsZero() bool {
	return a.Street == "" && a.City == "" && a.State == "" && a.Zip == ""
}

// String renders the two-line postal form:
//
//	1024 Elm Street
//	Seattle, WA 98101
func (a Address) String() string {
	return fmt.Sprintf("%s\n%s, %s %s", a.Street, a.City, a.State, a.Zip)
}
