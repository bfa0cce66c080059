package content

import "time"

// dailyTips is a fixed rotation of short wellbeing tips. The tip of the day
// is picked by day of year so every client sees the same tip on the same
// date.
var dailyTips = []string{
	"Drink enough water.",
	"Take a few deep breaths.",
	"Ginger tea helps with cramps.",
	"Prioritize a good night's sleep.",
	"Avoid caffeine.",
	"Eat iron-rich foods.",
}

// Tip is the tip of the day.
type Tip struct {
	Index int
	Text  string
}

// TipOfDay returns the deterministic tip for the given time's UTC date.
func (s *Service) TipOfDay(now time.Time) Tip {
	idx := (now.UTC().YearDay() - 1) % len(dailyTips)
	return Tip{Index: idx, Text: dailyTips[idx]}
}
