package booking

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/CairoAtlas/schedule-appointment-lex-bot/internal/lex"
	"github.com/CairoAtlas/schedule-appointment-lex-bot/internal/observability/metrics"
	"github.com/CairoAtlas/schedule-appointment-lex-bot/pkg/logging"
)

// IntentMakeAppointment is the only intent this handler serves.
const IntentMakeAppointment = "MakeAppointment"

// ErrUnsupportedIntent reports a turn for an intent this bot does not handle.
var ErrUnsupportedIntent = errors.New("unsupported intent")

// sessionKeyFormattedTime carries the display form of the proposed time
// so the bot's closing prompts can reuse it.
const sessionKeyFormattedTime = "formattedTime"

// Handler drives the MakeAppointment slot-filling dialog, one turn per
// invocation. All cross-turn state travels in the request's session
// attributes; the handler itself holds only its clock, random source,
// and collaborators.
type Handler struct {
	log     *logging.Logger
	metrics *metrics.DialogMetrics
	loc     *time.Location
	rng     *rand.Rand
	now     func() time.Time
}

// NewHandler builds a turn handler for the given office timezone.
// Metrics may be nil.
func NewHandler(logger *logging.Logger, m *metrics.DialogMetrics, timezone string) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	loc := Location(timezone)
	return &Handler{
		log:     logger,
		metrics: m,
		loc:     loc,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     func() time.Time { return time.Now().In(loc) },
	}
}

// HandleTurn dispatches one turn and returns exactly one directive.
func (h *Handler) HandleTurn(ctx context.Context, req *lex.Request) (*lex.Response, error) {
	if req == nil || req.CurrentIntent == nil {
		return nil, errors.New("request has no current intent")
	}
	h.log.Debug("dispatching turn",
		"user_id", req.UserID,
		"intent", req.CurrentIntent.Name,
		"source", req.InvocationSource,
	)

	if req.CurrentIntent.Name != IntentMakeAppointment {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedIntent, req.CurrentIntent.Name)
	}

	resp, err := h.makeAppointment(req)
	if err != nil {
		return nil, err
	}
	h.metrics.ObserveTurn(resp.DialogAction.Type, req.InvocationSource)
	return resp, nil
}

func (h *Handler) makeAppointment(req *lex.Request) (*lex.Response, error) {
	slots := req.CurrentIntent.Slots
	if slots == nil {
		slots = map[string]string{}
	}
	sessionAttributes := req.SessionAttributes
	if sessionAttributes == nil {
		sessionAttributes = map[string]string{}
	}

	cal, err := DecodeCalendar(sessionAttributes)
	if err != nil {
		return nil, err
	}

	if req.InvocationSource == lex.SourceDialogCodeHook {
		return h.validateTurn(req.CurrentIntent.Name, slots, sessionAttributes, cal)
	}
	return h.finalize(slots, sessionAttributes, cal)
}

// validateTurn runs the mid-dialog state machine: re-elicit a violated
// slot, elicit the next missing slot, regenerate an exhausted date,
// offer or confirm times, or delegate once everything checks out. Each
// check short-circuits on the first unmet condition.
func (h *Handler) validateTurn(intentName string, slots, sessionAttributes map[string]string, cal Calendar) (*lex.Response, error) {
	appointmentType := slots[SlotAppointmentType]
	date := slots[SlotDate]
	clock := slots[SlotTime]
	now := h.now()

	if result := ValidateBooking(appointmentType, date, clock, now, h.loc); !result.Valid {
		delete(slots, result.ViolatedSlot)
		h.metrics.ObserveValidationFailure(result.ViolatedSlot)
		return lex.ElicitSlot(sessionAttributes, intentName, slots, result.ViolatedSlot,
			lex.PlainText(result.Message),
			lex.NewResponseCard("Specify "+result.ViolatedSlot, result.Message,
				slotOptions(result.ViolatedSlot, appointmentType, date, cal, now))), nil
	}

	if appointmentType == "" {
		prompt := "What type of appointment would you like to schedule?"
		return lex.ElicitSlot(sessionAttributes, intentName, slots, SlotAppointmentType,
			lex.PlainText(prompt),
			lex.NewResponseCard("Specify Appointment Type", prompt, appointmentTypeOptions())), nil
	}

	if date == "" {
		prompt := "When would you like to schedule your " + appointmentType + "?"
		return lex.ElicitSlot(sessionAttributes, intentName, slots, SlotDate,
			lex.PlainText(prompt),
			lex.NewResponseCard("Specify Date", prompt, dateOptions(now))), nil
	}

	duration, known := DurationFor(appointmentType)
	if !known {
		return nil, fmt.Errorf("no duration for appointment type %q", appointmentType)
	}

	// Generate the date's availabilities on first reference and freeze
	// them in the session; a second generation would contradict what the
	// caller was already shown.
	availabilities, ok := cal[date]
	if !ok {
		generated, err := GenerateAvailability(date, h.loc, h.rng)
		if err != nil {
			return nil, fmt.Errorf("generate availability for %q: %w", date, err)
		}
		cal[date] = generated
		if err := cal.Store(sessionAttributes); err != nil {
			return nil, err
		}
		availabilities = generated
	}

	filtered := FilterByDuration(availabilities, duration)
	if len(filtered) == 0 {
		delete(slots, SlotDate)
		delete(slots, SlotTime)
		prompt := "We do not have any availability on that date, is there another day which works for you?"
		return lex.ElicitSlot(sessionAttributes, intentName, slots, SlotDate,
			lex.PlainText(prompt),
			lex.NewResponseCard("Specify Date", "What day works best for you?", dateOptions(now))), nil
	}

	prefix := ""
	if clock != "" {
		sessionAttributes[sessionKeyFormattedTime] = FormatClockTime(clock)
		available, err := IsAvailable(clock, duration, availabilities)
		if err != nil {
			return nil, err
		}
		if available {
			return lex.Delegate(sessionAttributes, slots), nil
		}
		prefix = "The time you requested is not available. "
	}

	if len(filtered) == 1 {
		only := filtered[0]
		display := FormatClockTime(only)
		slots[SlotTime] = only
		return lex.ConfirmIntent(sessionAttributes, intentName, slots,
			lex.PlainText(prefix+display+" is our only availability, does that work for you?"),
			lex.NewResponseCard("Confirm Appointment", "Is "+display+" on "+date+" okay?",
				[]lex.Button{{Text: "yes", Value: "yes"}, {Text: "no", Value: "no"}})), nil
	}

	return lex.ElicitSlot(sessionAttributes, intentName, slots, SlotTime,
		lex.PlainText(prefix+"What time on "+date+" works for you? "+availableTimesSentence(filtered)),
		lex.NewResponseCard("Specify Time", "What time works best for you?",
			timeOptions(appointmentType, date, cal))), nil
}

// finalize books the appointment. A real bot would call a backend
// scheduling service here; this one only consumes the session calendar.
func (h *Handler) finalize(slots, sessionAttributes map[string]string, cal Calendar) (*lex.Response, error) {
	appointmentType := slots[SlotAppointmentType]
	date := slots[SlotDate]
	clock := slots[SlotTime]
	if appointmentType == "" || date == "" || clock == "" {
		return nil, fmt.Errorf("fulfillment invoked with incomplete slots: type=%q date=%q time=%q",
			appointmentType, date, clock)
	}

	duration, known := DurationFor(appointmentType)
	if !known {
		return nil, fmt.Errorf("no duration for appointment type %q", appointmentType)
	}

	if cal.Consume(date, clock, duration) {
		if err := cal.Store(sessionAttributes); err != nil {
			return nil, err
		}
	} else {
		// Reachable when this function runs as fulfillment only, without
		// the validating turns that populate the calendar.
		h.log.Debug("no availabilities for date at fulfillment", "date", date)
	}

	return lex.Close(sessionAttributes, lex.PlainText(
		"Okay, I have booked your appointment. We will see you at "+
			FormatClockTime(clock)+" on "+date)), nil
}

// availableTimesSentence phrases the first few candidates: a plain
// lead-in for up to three, an "including" lead-in when more exist.
func availableTimesSentence(filtered []string) string {
	prefix := "We have availabilities at "
	if len(filtered) > 3 {
		prefix = "We have plenty of availability, including "
	}

	switch len(filtered) {
	case 1:
		return prefix + FormatClockTime(filtered[0])
	case 2:
		return prefix + FormatClockTime(filtered[0]) + " and " + FormatClockTime(filtered[1])
	}
	return prefix + FormatClockTime(filtered[0]) + ", " + FormatClockTime(filtered[1]) +
		" and " + FormatClockTime(filtered[2])
}
