package billing

// =============================================================================
// SKILL - Billable consulting skill
// =============================================================================

// Skill identifies a consulting skill as it appears on time entries and
// invoice rows. The set below covers the standard engagement roles; rate
// books may define rates for additional skills.
type Skill string

const (
	SkillProjectManager   Skill = "Project Manager"
	SkillArchitect        Skill = "Architect"
	SkillSystemArchitect  Skill = "System Architect"
	SkillSoftwareEngineer Skill = "Software Engineer"
	SkillSoftwareTester   Skill = "Software Tester"
)

// =============================================================================
// RATE BOOK - Skill to hourly rate lookup
// =============================================================================

// RateBook supplies the hourly charge for a skill. Line items use it to
// compute their charge; a skill without a rate is a configuration error
// and surfaces as UnknownSkillError.
type RateBook interface {
	HourlyRate(skill Skill) (Money, error)
}

// MapRateBook is the default in-memory RateBook.
type MapRateBook map[Skill]Money

func (rb MapRateBook) HourlyRate(skill Skill) (Money, error) {
	rate, ok := rb[skill]
	if !ok {
		return Money{}, &UnknownSkillError{Skill: skill}
	}
	return rate, nil
}

// Compile-time check that MapRateBook implements RateBook
var _ RateBook = MapRateBook(nil)
