package model

// PrayerTimes is one day of timings for a city, as returned by the upstream
// timings service. Timings is keyed by the canonical prayer names
// (Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha) with "HH:MM" values.
type PrayerTimes struct {
	City          string            `json:"city"`
	GregorianDate string            `json:"gregorian_date"`
	HijriDate     string            `json:"hijri_date"`
	Timings       map[string]string `json:"timings"`
}

// PrayerWindow names the prayer the clock currently falls in and the one
// coming up next.
type PrayerWindow struct {
	Current     string `json:"current"`
	Next        string `json:"next"`
	NextAt      string `json:"next_at"`       // "HH:MM"
	NextInMins  int    `json:"next_in_mins"`
	NextIsFajr  bool   `json:"next_is_fajr"` // next prayer rolls over to tomorrow
}
