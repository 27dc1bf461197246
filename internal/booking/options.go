package booking

import (
	"fmt"
	"time"

	"github.com/CairoAtlas/schedule-appointment-lex-bot/internal/lex"
)

// appointmentTypeOptions are the fixed quick replies for the type slot.
func appointmentTypeOptions() []lex.Button {
	return []lex.Button{
		{Text: "cleaning (30 min)", Value: "cleaning"},
		{Text: "root canal (60 min)", Value: "root canal"},
		{Text: "whitening (30 min)", Value: "whitening"},
	}
}

// dateOptions proposes the next five non-weekend dates starting
// tomorrow. The button value is a long-form date the parser accepts.
func dateOptions(now time.Time) []lex.Button {
	options := []lex.Button{}
	day := now
	for len(options) < 5 {
		day = day.AddDate(0, 0, 1)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		options = append(options, lex.Button{
			Text:  fmt.Sprintf("%d-%d %s (%s)", int(day.Month()), day.Day(), day.Format("Mon"), day.Weekday()),
			Value: day.Format("January 2, 2006"),
		})
	}
	return options
}

// timeOptions lists the duration-filtered availabilities for the
// already-chosen type and date, label and value both display-formatted.
// Nil when either slot is missing or the date has no calendar entry yet.
func timeOptions(appointmentType, date string, cal Calendar) []lex.Button {
	if appointmentType == "" || date == "" {
		return nil
	}
	availabilities, ok := cal[date]
	if !ok {
		return nil
	}
	duration, known := DurationFor(appointmentType)
	if !known {
		return nil
	}
	filtered := FilterByDuration(availabilities, duration)
	if len(filtered) == 0 {
		return nil
	}

	options := make([]lex.Button, 0, len(filtered))
	for _, slot := range filtered {
		display := FormatClockTime(slot)
		options = append(options, lex.Button{Text: display, Value: display})
	}
	return options
}

// slotOptions picks the quick replies for the slot being elicited.
func slotOptions(slot, appointmentType, date string, cal Calendar, now time.Time) []lex.Button {
	switch slot {
	case SlotAppointmentType:
		return appointmentTypeOptions()
	case SlotDate:
		return dateOptions(now)
	case SlotTime:
		return timeOptions(appointmentType, date, cal)
	}
	return nil
}
