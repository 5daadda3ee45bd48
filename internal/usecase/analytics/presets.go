package analytics

import (
	"errors"
	"time"
)

const (
	PresetToday = "today"
	PresetWeek  = "week"
	PresetMonth = "month"
)

var ErrUnknownPreset = errors.New("unknown report preset")

// PresetRange maps a UI preset to an inclusive [start, end] date pair
// relative to today. "week" is the last seven days including today.
func PresetRange(preset string, today time.Time) (string, string, error) {
	end := today.Format(dateLayout)
	switch preset {
	case PresetToday:
		return end, end, nil
	case PresetWeek:
		return today.AddDate(0, 0, -6).Format(dateLayout), end, nil
	case PresetMonth:
		first := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
		last := first.AddDate(0, 1, -1)
		return first.Format(dateLayout), last.Format(dateLayout), nil
	}
	return "", "", ErrUnknownPreset
}
