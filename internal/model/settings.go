package model

// Reminders configures push reminders for the tracked habits.
type Reminders struct {
	Enabled bool     `json:"enabled"`
	Times   []string `json:"times,omitempty"` // "HH:MM", device-local
}

// RamadanSettings is the per-user tracker configuration. StartDate anchors
// the day-number calculation. AutoAdjustOnMiss is recorded but nothing reads
// it yet; automatic plan recalculation is pending product clarification.
type RamadanSettings struct {
	StartDate        string    `json:"start_date"` // YYYY-MM-DD
	Reminders        Reminders `json:"reminders"`
	AutoAdjustOnMiss bool      `json:"auto_adjust_on_miss"`
}
