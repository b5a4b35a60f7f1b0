package model

// QuranUnit is the measurement unit of a Quran completion plan.
type QuranUnit string

const (
	UnitPages  QuranUnit = "pages"
	UnitJuz    QuranUnit = "juz"
	UnitVerses QuranUnit = "verses"
)

// Fixed totals for one full read-through.
const (
	TotalPages  = 604
	TotalJuz    = 30
	TotalVerses = 6236
)

// Total returns the number of units in one full Quran read-through.
func (u QuranUnit) Total() int {
	switch u {
	case UnitJuz:
		return TotalJuz
	case UnitVerses:
		return TotalVerses
	default:
		return TotalPages
	}
}

// QuranPlan is the user's Ramadan completion pacing configuration.
// The daily target is deliberately not stored: it is recomputed on every
// read from the target, unit, progress so far, and days remaining.
type QuranPlan struct {
	CompletionTarget float64   `json:"completion_target"`
	Unit             QuranUnit `json:"unit"`
	TotalCompleted   int       `json:"total_completed"`
	PreferredTime    string    `json:"preferred_time,omitempty"` // fajr | night | anytime
}
