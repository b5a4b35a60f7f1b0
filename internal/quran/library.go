// Package quran tracks per-chapter reading positions and favorites,
// independent of the Ramadan tracker. The Ramadan module absorbs the running
// ayah total only through an explicit sync call.
package quran

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"
	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/state"
)

// ReadingState is the per-user reading document.
type ReadingState struct {
	Surahs         map[int]*model.SurahProgress `json:"surahs"`
	Favorites      map[int]bool                 `json:"favorites,omitempty"`
	TotalAyahsRead int                          `json:"total_ayahs_read"`
}

// Library owns per-user Quran reading state, written through on mutation.
type Library struct {
	store state.Store
	now   func() time.Time

	mu sync.Mutex
}

func NewLibrary(store state.Store) *Library {
	return &Library{store: store, now: time.Now}
}

// WithClock overrides the wall clock, for tests.
func (l *Library) WithClock(now func() time.Time) *Library {
	l.now = now
	return l
}

func readingKey(userID int) string {
	return fmt.Sprintf("quran:reading:%d", userID)
}

func (l *Library) loadState(ctx context.Context, userID int) (*ReadingState, error) {
	raw, err := l.store.Load(ctx, readingKey(userID))
	if errors.Is(err, state.ErrNotFound) {
		return &ReadingState{Surahs: make(map[int]*model.SurahProgress)}, nil
	}
	if err != nil {
		return nil, err
	}
	var s ReadingState
	if err := json.Unmarshal(raw, &s); err != nil {
		log.Error().Err(err).Int("user_id", userID).Msg("failed to decode reading state")
		return nil, err
	}
	if s.Surahs == nil {
		s.Surahs = make(map[int]*model.SurahProgress)
	}
	return &s, nil
}

func (l *Library) update(ctx context.Context, userID int, fn func(s *ReadingState)) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	s, err := l.loadState(ctx, userID)
	if err != nil {
		return err
	}
	fn(s)
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return l.store.Save(ctx, readingKey(userID), raw, 0)
}

// GetState returns the user's reading document.
func (l *Library) GetState(ctx context.Context, userID int) (*ReadingState, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadState(ctx, userID)
}

// UpdatePosition records a new reading position for one chapter. The running
// total is adjusted by the delta against the previous position, not
// recomputed from scratch, so rereads never double count.
func (l *Library) UpdatePosition(ctx context.Context, userID, surahID, lastAyah, totalAyahs int, scroll float64) error {
	return l.update(ctx, userID, func(s *ReadingState) {
		sp, ok := s.Surahs[surahID]
		if !ok {
			sp = &model.SurahProgress{SurahID: surahID}
			s.Surahs[surahID] = sp
		}

		s.TotalAyahsRead += lastAyah - sp.LastAyahRead
		if s.TotalAyahsRead < 0 {
			s.TotalAyahsRead = 0
		}

		sp.LastAyahRead = lastAyah
		sp.TotalAyahs = totalAyahs
		sp.ScrollPosition = scroll
		sp.LastReadAt = l.now()
		switch {
		case totalAyahs > 0 && lastAyah >= totalAyahs:
			sp.Status = model.SurahCompleted
		case lastAyah > 0:
			sp.Status = model.SurahInProgress
		default:
			sp.Status = model.SurahNotStarted
		}
	})
}

// ToggleFavorite flips a chapter's favorite flag.
func (l *Library) ToggleFavorite(ctx context.Context, userID, surahID int) error {
	return l.update(ctx, userID, func(s *ReadingState) {
		if s.Favorites == nil {
			s.Favorites = make(map[int]bool)
		}
		s.Favorites[surahID] = !s.Favorites[surahID]
	})
}

// ReadingPercent is the share of the whole Quran read, in percent.
func (s *ReadingState) ReadingPercent() float64 {
	return 100 * float64(s.TotalAyahsRead) / float64(model.TotalVerses)
}
