package invoice

import (
	"time"

	"github.com/warp/invoice-engine/billing"
	"github.com/warp/invoice-engine/track"
)

// =============================================================================
// LINE ITEM - One invoice row
// =============================================================================

// LineItem is one invoice row derived from a qualifying time entry.
// Immutable; created only during extraction. The charge is computed at
// construction from the invoice's rate book (hours x hourly rate).
type LineItem struct {
	date       time.Time
	consultant track.Consultant
	skill      billing.Skill
	hours      int
	charge     billing.Money
}

// newLineItem materializes a row from an entry's fields. An unknown skill
// is a rate-book configuration error and fails extraction.
func newLineItem(date time.Time, consultant track.Consultant, skill billing.Skill, hours int, rates billing.RateBook) (LineItem, error) {
	rate, err := rates.HourlyRate(skill)
	if err != nil {
		return LineItem{}, err
	}
	return LineItem{
		date:       date,
		consultant: consultant,
		skill:      skill,
		hours:      hours,
		charge:     rate.MulInt(hours),
	}, nil
}

func (li LineItem) Date() time.Time              { return li.date }
func (li LineItem) Consultant() track.Consultant { return li.consultant }
func (li LineItem) Skill() billing.Skill         { return li.skill }
func (li LineItem) Hours() int                   { return li.hours }
func (li LineItem) Charge() billing.Money        { return li.charge }
