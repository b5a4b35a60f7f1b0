package model

// GoalKind is the closed set of trackable habit kinds.
type GoalKind string

const (
	GoalSalah    GoalKind = "salah"
	GoalQuran    GoalKind = "quran"
	GoalDhikr    GoalKind = "dhikr"
	GoalTaraweeh GoalKind = "taraweeh"
	GoalCustom   GoalKind = "custom"
)

// DhikrType is one named sub-counter of a dhikr goal, e.g. "SubhanAllah" x33.
type DhikrType struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Target int    `json:"target"`
}

// Goal is a trackable habit definition. DhikrTypes is only meaningful for
// GoalDhikr; for those goals DailyTarget must equal the sum of the sub-targets.
type Goal struct {
	ID          string      `json:"id"`
	Kind        GoalKind    `json:"kind"`
	Name        string      `json:"name"`
	Enabled     bool        `json:"enabled"`
	DailyTarget int         `json:"daily_target,omitempty"`
	DhikrTypes  []DhikrType `json:"dhikr_types,omitempty"`
}

// DhikrTotal sums the sub-counter targets of a dhikr goal.
func (g Goal) DhikrTotal() int {
	total := 0
	for _, dt := range g.DhikrTypes {
		total += dt.Target
	}
	return total
}
