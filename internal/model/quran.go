package model

import "time"

// SurahStatus is the reading state of one chapter.
type SurahStatus string

const (
	SurahNotStarted SurahStatus = "not-started"
	SurahInProgress SurahStatus = "in-progress"
	SurahCompleted  SurahStatus = "completed"
)

// SurahProgress is the per-chapter reading position.
type SurahProgress struct {
	SurahID        int         `json:"surah_id"`
	Status         SurahStatus `json:"status"`
	LastAyahRead   int         `json:"last_ayah_read"`
	TotalAyahs     int         `json:"total_ayahs"`
	LastReadAt     time.Time   `json:"last_read_at"`
	ScrollPosition float64     `json:"scroll_position,omitempty"`
}
