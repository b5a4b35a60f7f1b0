package ramadan

import (
	"time"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"
)

// defaultState seeds a first-run tracker: the four standard goals, all
// enabled, with the three canonical dhikr phrases totalling 100 a day.
func defaultState(now time.Time) *State {
	return &State{
		Goals: []model.Goal{
			{ID: "salah", Kind: model.GoalSalah, Name: "Salah", Enabled: true},
			{ID: "quran", Kind: model.GoalQuran, Name: "Quran", Enabled: true},
			{
				ID:          "dhikr",
				Kind:        model.GoalDhikr,
				Name:        "Dhikr",
				Enabled:     true,
				DailyTarget: 100,
				DhikrTypes: []model.DhikrType{
					{ID: "subhanallah", Name: "SubhanAllah", Target: 33},
					{ID: "alhamdulillah", Name: "Alhamdulillah", Target: 33},
					{ID: "allahuakbar", Name: "Allahu Akbar", Target: 34},
				},
			},
			{ID: "taraweeh", Kind: model.GoalTaraweeh, Name: "Taraweeh", Enabled: true},
		},
		Days: make(map[string]*model.DailyProgress),
		Settings: model.RamadanSettings{
			StartDate: DateKey(now),
			Reminders: model.Reminders{Enabled: false},
		},
	}
}
