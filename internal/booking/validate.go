package booking

import (
	"strconv"
	"time"
)

// Slot names of the MakeAppointment intent.
const (
	SlotAppointmentType = "AppointmentType"
	SlotDate            = "Date"
	SlotTime            = "Time"
)

// ValidationResult reports the first violated slot, if any. Either Valid
// is true, or ViolatedSlot and Message are set.
type ValidationResult struct {
	Valid        bool
	ViolatedSlot string
	Message      string
}

func invalidSlot(slot, message string) ValidationResult {
	return ValidationResult{ViolatedSlot: slot, Message: message}
}

// ValidateBooking checks the collected slots in priority order:
// appointment type, then time, then date. Evaluation stops at the first
// violation. Empty slots are skipped; a missing value is elicitation's
// problem, not a validation failure.
func ValidateBooking(appointmentType, date, clock string, now time.Time, loc *time.Location) ValidationResult {
	if appointmentType != "" {
		if _, known := DurationFor(appointmentType); !known {
			return invalidSlot(SlotAppointmentType,
				"I did not recognize that, can I book you a root canal, cleaning, or whitening?")
		}
	}

	if clock != "" {
		if result, ok := validateClock(clock); !ok {
			return result
		}
	}

	if date != "" {
		parsed, err := ParseDate(date, loc)
		if err != nil {
			return invalidSlot(SlotDate,
				"I did not understand that, what date works best for you?")
		}
		if beforeDay(parsed, now) {
			return invalidSlot(SlotDate,
				"Appointments must be scheduled a day in advance. Can you try a different date?")
		}
		if wd := parsed.Weekday(); wd == time.Saturday || wd == time.Sunday {
			return invalidSlot(SlotDate,
				"Our office is not open on the weekends, can you provide a work day?")
		}
	}

	return ValidationResult{Valid: true}
}

func validateClock(clock string) (ValidationResult, bool) {
	unrecognized := invalidSlot(SlotTime,
		"I did not recognize that, what time would you like to book your appointment?")

	if len(clock) != 5 || clock[2] != ':' {
		return unrecognized, false
	}
	hour, hourErr := strconv.Atoi(clock[:2])
	minute, minuteErr := strconv.Atoi(clock[3:])
	if hourErr != nil || minuteErr != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return unrecognized, false
	}

	if hour < 10 || hour > 16 {
		return invalidSlot(SlotTime,
			"Our business hours are ten a.m. to five p.m. What time works best for you?"), false
	}
	if minute != 0 && minute != 30 {
		return invalidSlot(SlotTime,
			"We schedule appointments every half hour, what time works best for you?"), false
	}

	return ValidationResult{}, true
}

// beforeDay reports whether day falls strictly before now's calendar date.
func beforeDay(day, now time.Time) bool {
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return day.Before(today)
}
