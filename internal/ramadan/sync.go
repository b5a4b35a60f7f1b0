package ramadan

import (
	"context"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"
)

// SyncQuranProgress absorbs the reader's running totalAyahsRead into today's
// Quran habit. Only the delta since the last sync is credited, and only when
// the plan measures in verses; other units ignore the reader entirely.
func (t *Tracker) SyncQuranProgress(ctx context.Context, userID int, totalAyahsRead int) error {
	return t.update(ctx, userID, func(s *State) {
		if s.Plan == nil || s.Plan.Unit != model.UnitVerses {
			return
		}
		delta := totalAyahsRead - s.LastSyncedAyahs
		if delta <= 0 {
			s.LastSyncedAyahs = totalAyahsRead
			return
		}
		s.applyQuranDelta(DateKey(t.now()), delta)
		s.LastSyncedAyahs = totalAyahsRead
	})
}
