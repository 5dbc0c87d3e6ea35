package programguide

import (
	"fmt"
	"strings"
	"time"
)

// JST is the zone the guide's broadcast days are expressed in.
var JST = time.FixedZone("JST", 9*60*60)

// ParseDate accepts YYYY-MM-DD or one of "today", "tomorrow" and
// "yesterday" relative to now. The result is midnight JST.
func ParseDate(s string, now time.Time) (time.Time, error) {
	now = now.In(JST)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, JST)

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	t, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s), JST)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: want YYYY-MM-DD", ErrInvalidDate, s)
	}
	return t, nil
}
