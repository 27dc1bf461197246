package booking

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// The office books half-hour slots between these marks; closingTime
// itself is never bookable.
const (
	openingTime = "10:00"
	closingTime = "17:00"
)

// SessionKeyBookingMap is the reserved session attribute the serialized
// calendar travels in between turns.
const SessionKeyBookingMap = "bookingMap"

// mondayOpenProbability is the chance each Monday hour has any opening.
const mondayOpenProbability = 0.3

// ErrUnknownDuration reports a duration outside the service table. With
// the fixed table this is unreachable from validated slots.
var ErrUnknownDuration = errors.New("unsupported appointment duration")

// appointmentDurations maps each offered service to its length in minutes.
var appointmentDurations = map[string]int{
	"cleaning":   30,
	"root canal": 60,
	"whitening":  30,
}

// DurationFor looks up the appointment length for a service,
// case-insensitively. The second return is false for unknown services.
func DurationFor(appointmentType string) (int, bool) {
	duration, ok := appointmentDurations[strings.ToLower(appointmentType)]
	return duration, ok
}

// Calendar maps a caller-supplied date string to the ordered list of
// bookable half-hour start times remaining on that date. The raw date
// text is used verbatim as the key. The calendar is the only state that
// survives across turns; it rides in the session attributes.
type Calendar map[string][]string

// DecodeCalendar reads the calendar out of the session attributes. A
// missing or empty attribute yields an empty calendar.
func DecodeCalendar(attrs map[string]string) (Calendar, error) {
	raw := attrs[SessionKeyBookingMap]
	if raw == "" {
		return Calendar{}, nil
	}
	var cal Calendar
	if err := json.Unmarshal([]byte(raw), &cal); err != nil {
		return nil, fmt.Errorf("decode booking map: %w", err)
	}
	if cal == nil {
		cal = Calendar{}
	}
	return cal, nil
}

// Store serializes the calendar back into the session attributes.
func (c Calendar) Store(attrs map[string]string) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode booking map: %w", err)
	}
	attrs[SessionKeyBookingMap] = string(raw)
	return nil
}

// Consume removes a booked slot, and the second half hour for hour-long
// appointments, from the date's entry. Returns false when the date has
// no entry; that is legal when fulfillment runs without the validating
// turns that would have populated the calendar.
func (c Calendar) Consume(date, clock string, durationMinutes int) bool {
	availabilities, ok := c[date]
	if !ok || len(availabilities) == 0 {
		return false
	}
	availabilities = removeTime(availabilities, clock)
	if durationMinutes == 60 {
		availabilities = removeTime(availabilities, IncrementHalfHour(clock))
	}
	c[date] = availabilities
	return true
}

// GenerateAvailability synthesizes the bookable start times for a date.
// Mondays are drawn from the random source hour by hour; Wednesdays and
// Fridays use a fixed pattern; every other day is fully booked. The
// result MUST be cached by the caller — regenerating for the same date
// would change availabilities the caller was already shown.
func GenerateAvailability(date string, loc *time.Location, rng *rand.Rand) ([]string, error) {
	day, err := ParseDate(date, loc)
	if err != nil {
		return nil, err
	}

	availabilities := []string{}
	switch day.Weekday() {
	case time.Monday:
		for hour := 10; hour <= 16; hour++ {
			if rng.Float64() >= mondayOpenProbability {
				continue
			}
			switch rng.Intn(3) {
			case 0:
				availabilities = append(availabilities, fmt.Sprintf("%d:00", hour))
			case 1:
				availabilities = append(availabilities, fmt.Sprintf("%d:30", hour))
			default:
				availabilities = append(availabilities, fmt.Sprintf("%d:00", hour), fmt.Sprintf("%d:30", hour))
			}
		}
	case time.Wednesday, time.Friday:
		availabilities = append(availabilities, "10:00", "16:00", "16:30")
	}

	return availabilities, nil
}

// FilterByDuration returns the slots usable for an appointment of the
// given length. It scans the canonical half-hour marks chronologically,
// so the result is sorted regardless of input order; hour-long
// appointments need the following half hour free as well.
func FilterByDuration(availabilities []string, durationMinutes int) []string {
	filtered := []string{}
	for slot := openingTime; slot != closingTime; slot = IncrementHalfHour(slot) {
		if !containsTime(availabilities, slot) {
			continue
		}
		if durationMinutes == 30 || containsTime(availabilities, IncrementHalfHour(slot)) {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}

// IsAvailable reports whether an appointment of the given length can
// start at the given time.
func IsAvailable(clock string, durationMinutes int, availabilities []string) (bool, error) {
	switch durationMinutes {
	case 30:
		return containsTime(availabilities, clock), nil
	case 60:
		return containsTime(availabilities, clock) &&
			containsTime(availabilities, IncrementHalfHour(clock)), nil
	}
	return false, fmt.Errorf("%w: %d", ErrUnknownDuration, durationMinutes)
}

func containsTime(availabilities []string, clock string) bool {
	for _, a := range availabilities {
		if a == clock {
			return true
		}
	}
	return false
}

func removeTime(availabilities []string, clock string) []string {
	out := make([]string, 0, len(availabilities))
	for _, a := range availabilities {
		if a != clock {
			out = append(out, a)
		}
	}
	return out
}
