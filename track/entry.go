package track

import (
	"time"

	"github.com/warp/invoice-engine/billing"
)

// =============================================================================
// CONSULTANT TIME - One time entry
// =============================================================================

// ConsultantTime is a single dated, skill-tagged hour count logged against
// an account. Immutable once created; billability follows the account.
type ConsultantTime struct {
	date    time.Time
	account Account
	skill   billing.Skill
	hours   int
}

// NewConsultantTime creates a time entry. Hours must be non-negative.
func NewConsultantTime(date time.Time, account Account, skill billing.Skill, hours int) (ConsultantTime, error) {
	if hours < 0 {
		return ConsultantTime{}, billing.ErrNegativeHours
	}
	return ConsultantTime{date: date, account: account, skill: skill, hours: hours}, nil
}

func (ct ConsultantTime) Date() time.Time     { return ct.date }
func (ct ConsultantTime) Account() Account    { return ct.account }
func (ct ConsultantTime) Skill() billing.Skill { return ct.skill }
func (ct ConsultantTime) Hours() int          { return ct.hours }

// IsBillable reports whether the entry's account is billable.
func (ct ConsultantTime) IsBillable() bool { return ct.account.IsBillable() }
