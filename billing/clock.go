package billing

import "time"

// =============================================================================
// CLOCK - Injectable time source
// =============================================================================

// Clock supplies the wall-clock time stamped on rendered invoices as the
// "invoice date". Rendering reads it once per render call, so injecting a
// FixedClock makes output deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time { return c.At }
