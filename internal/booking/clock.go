package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// defaultTimezone is the office's civil calendar. Every date and business
// hour is interpreted in this one zone.
const defaultTimezone = "America/New_York"

// ErrInvalidDate reports date text that matched none of the accepted formats.
var ErrInvalidDate = errors.New("unrecognized date")

// dateLayouts lists the accepted date formats in priority order; the
// first layout that parses wins. Month-name forms come first, then
// space-, ISO-, slash- and dash-separated numeric forms, each with two-
// and four-digit year variants.
var dateLayouts = []string{
	"January 02, 2006",
	"January 02, 06",
	"January 2, 2006",
	"January 2, 06",
	"Jan 02, 2006",
	"Jan 02, 06",
	"Jan 2, 2006",
	"Jan 2, 06",
	"01 02, 2006",
	"01 02, 06",
	"01 2, 2006",
	"01 2, 06",
	"1 02, 2006",
	"1 02, 06",
	"1 2, 2006",
	"1 2, 06",
	"2006-01-02",
	"01/02/2006",
	"01/02/06",
	"01/2/2006",
	"01/2/06",
	"1/02/2006",
	"1/02/06",
	"1/2/2006",
	"1/2/06",
	"01-02-2006",
	"01-02-06",
	"01-2-2006",
	"01-2-06",
	"1-02-2006",
	"1-02-06",
	"1-2-2006",
	"1-2-06",
}

// Location resolves a timezone name to a *time.Location, defaulting to
// the office zone and falling back to UTC if the name is unknown.
func Location(name string) *time.Location {
	if name == "" {
		name = defaultTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// ParseDate parses free-form date text against the accepted layouts,
// interpreted in the given location.
func ParseDate(text string, loc *time.Location) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, text, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, text)
}

// IsValidDate reports whether at least one accepted layout parses the text.
func IsValidDate(text string, loc *time.Location) bool {
	_, err := ParseDate(text, loc)
	return err == nil
}

// IncrementHalfHour advances a half-hour mark: "10:00" -> "10:30",
// "10:30" -> "11:00". No bounds clamping; callers keep the result inside
// business hours where that matters.
func IncrementHalfHour(clock string) string {
	hour, minute := splitClock(clock)
	if minute == 30 {
		return fmt.Sprintf("%d:00", hour+1)
	}
	return fmt.Sprintf("%d:30", hour)
}

// FormatClockTime renders a 24-hour "HH:MM" as "h:MM a.m." / "h:MM p.m.".
func FormatClockTime(clock string) string {
	hour, _ := splitClock(clock)
	minutes := clock[strings.Index(clock, ":")+1:]
	switch {
	case hour > 12:
		return fmt.Sprintf("%d:%s p.m.", hour-12, minutes)
	case hour == 12:
		return "12:" + minutes + " p.m."
	case hour == 0:
		return "12:" + minutes + " a.m."
	}
	return fmt.Sprintf("%d:%s a.m.", hour, minutes)
}

func splitClock(clock string) (hour, minute int) {
	parts := strings.SplitN(clock, ":", 2)
	hour, _ = strconv.Atoi(parts[0])
	if len(parts) == 2 {
		minute, _ = strconv.Atoi(parts[1])
	}
	return hour, minute
}
