package weather

import (
	"time"

	"smartcrop/pkg/agronomy"
)

// CurrentSeason maps a calendar month onto the selectable seasons:
// June to October is Monsoon, November to March Winter, the rest Summer.
func CurrentSeason(t time.Time) agronomy.Season {
	switch m := t.Month(); {
	case m >= time.June && m <= time.October:
		return agronomy.Monsoon
	case m >= time.November || m <= time.March:
		return agronomy.Winter
	default:
		return agronomy.Summer
	}
}
