package packets

type UpdatePositionRequest struct {
	SurahID        int     `json:"surah_id" binding:"required,min=1,max=114"`
	LastAyahRead   int     `json:"last_ayah_read" binding:"min=0"`
	TotalAyahs     int     `json:"total_ayahs" binding:"required,min=1"`
	ScrollPosition float64 `json:"scroll_position"`
}

type ToggleFavoriteRequest struct {
	SurahID int `json:"surah_id" binding:"required,min=1,max=114"`
}
