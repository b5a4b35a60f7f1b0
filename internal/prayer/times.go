package prayer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mrfaizanshariff/mosqueProject-sub000/internal/model"
)

// dayOrder is the display order of the timings entries. Sunrise is not a
// prayer but marks where the Fajr window ends.
var dayOrder = []string{"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha"}

// parseHM reads "HH:MM" (upstream sometimes appends a timezone suffix like
// "05:12 (IST)") into minutes since midnight.
func parseHM(v string) (int, error) {
	if i := strings.IndexByte(v, ' '); i > 0 {
		v = v[:i]
	}
	parts := strings.SplitN(v, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("bad time %q", v)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// Window determines the current and next prayer for a wall-clock time.
// Before Fajr the current prayer is the previous night's Isha; after Isha
// the next prayer wraps to tomorrow's Fajr.
func Window(timings map[string]string, now time.Time) (*model.PrayerWindow, error) {
	nowMins := now.Hour()*60 + now.Minute()

	type entry struct {
		name string
		mins int
	}
	entries := make([]entry, 0, len(dayOrder))
	for _, name := range dayOrder {
		v, ok := timings[name]
		if !ok {
			continue
		}
		mins, err := parseHM(v)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry{name, mins})
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no usable timings")
	}

	current := "Isha" // before the first entry of the day
	next := entries[0]
	wrapped := true
	for i, e := range entries {
		if e.mins <= nowMins {
			current = e.name
			if i+1 < len(entries) {
				next = entries[i+1]
				wrapped = false
			} else {
				next = entries[0]
				wrapped = true
			}
		} else {
			break
		}
	}
	if entries[0].mins > nowMins {
		wrapped = false
	}

	untilNext := next.mins - nowMins
	if untilNext <= 0 {
		untilNext += 24 * 60
	}

	return &model.PrayerWindow{
		Current:    current,
		Next:       next.name,
		NextAt:     fmt.Sprintf("%02d:%02d", next.mins/60, next.mins%60),
		NextInMins: untilNext,
		NextIsFajr: wrapped,
	}, nil
}
