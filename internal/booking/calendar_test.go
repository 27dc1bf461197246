package booking

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

// December 2024: the 23rd is a Monday, 24th a Tuesday, 25th a Wednesday,
// 27th a Friday.
const (
	testMonday    = "December 23, 2024"
	testTuesday   = "December 24, 2024"
	testWednesday = "December 25, 2024"
	testFriday    = "December 27, 2024"
)

func TestGenerateAvailabilityFixedDays(t *testing.T) {
	loc := Location("")
	rng := rand.New(rand.NewSource(1))

	want := []string{"10:00", "16:00", "16:30"}
	for _, date := range []string{testWednesday, testFriday} {
		got, err := GenerateAvailability(date, loc, rng)
		if err != nil {
			t.Fatalf("GenerateAvailability(%q): %v", date, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("GenerateAvailability(%q) = %v, want %v", date, got, want)
		}
	}
}

func TestGenerateAvailabilityClosedDay(t *testing.T) {
	got, err := GenerateAvailability(testTuesday, Location(""), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("GenerateAvailability: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Tuesday availabilities = %v, want none", got)
	}
}

func TestGenerateAvailabilityMondayIsCanonical(t *testing.T) {
	loc := Location("")
	// Whatever the random draw, the result must be a chronological subset
	// of the canonical half-hour marks, which is exactly what a 30-minute
	// duration filter preserves.
	for seed := int64(0); seed < 20; seed++ {
		got, err := GenerateAvailability(testMonday, loc, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		if !reflect.DeepEqual(FilterByDuration(got, 30), got) {
			t.Errorf("seed %d: %v is not a chronological canonical subset", seed, got)
		}
	}
}

func TestGenerateAvailabilityBadDate(t *testing.T) {
	_, err := GenerateAvailability("not a date", Location(""), rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("error = %v, want ErrInvalidDate", err)
	}
}

func TestFilterByDuration(t *testing.T) {
	// Storage order must not matter; output follows the canonical scan.
	unordered := []string{"16:30", "10:00", "16:00"}

	if got, want := FilterByDuration(unordered, 30), []string{"10:00", "16:00", "16:30"}; !reflect.DeepEqual(got, want) {
		t.Errorf("30 min filter = %v, want %v", got, want)
	}
	if got, want := FilterByDuration(unordered, 60), []string{"16:00"}; !reflect.DeepEqual(got, want) {
		t.Errorf("60 min filter = %v, want %v", got, want)
	}
	if got := FilterByDuration(nil, 30); len(got) != 0 {
		t.Errorf("empty input filter = %v, want none", got)
	}
}

func TestIsAvailable(t *testing.T) {
	availabilities := []string{"10:00", "16:00", "16:30"}

	tests := []struct {
		name     string
		clock    string
		duration int
		want     bool
	}{
		{"half hour present", "10:00", 30, true},
		{"half hour absent", "11:00", 30, false},
		{"hour with pair", "16:00", 60, true},
		{"hour without pair", "10:00", 60, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsAvailable(tt.clock, tt.duration, availabilities)
			if err != nil {
				t.Fatalf("IsAvailable: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsAvailable(%q, %d) = %v, want %v", tt.clock, tt.duration, got, tt.want)
			}
		})
	}

	if _, err := IsAvailable("10:00", 45, availabilities); !errors.Is(err, ErrUnknownDuration) {
		t.Errorf("45 minute error = %v, want ErrUnknownDuration", err)
	}
}

func TestCalendarConsume(t *testing.T) {
	cal := Calendar{testWednesday: {"10:00", "16:00", "16:30"}}

	if !cal.Consume(testWednesday, "10:00", 30) {
		t.Fatal("Consume returned false for a present date")
	}
	if got, want := cal[testWednesday], []string{"16:00", "16:30"}; !reflect.DeepEqual(got, want) {
		t.Errorf("after 30 min consume: %v, want %v", got, want)
	}

	if !cal.Consume(testWednesday, "16:00", 60) {
		t.Fatal("Consume returned false for a present date")
	}
	if got := cal[testWednesday]; len(got) != 0 {
		t.Errorf("after 60 min consume: %v, want none", got)
	}

	if cal.Consume("January 6, 2025", "10:00", 30) {
		t.Error("Consume should be a no-op for an unknown date")
	}
}

func TestCalendarSessionRoundTrip(t *testing.T) {
	attrs := map[string]string{}

	cal, err := DecodeCalendar(attrs)
	if err != nil {
		t.Fatalf("DecodeCalendar(empty): %v", err)
	}
	if len(cal) != 0 {
		t.Fatalf("expected empty calendar, got %v", cal)
	}

	cal[testWednesday] = []string{"10:00", "16:00", "16:30"}
	if err := cal.Store(attrs); err != nil {
		t.Fatalf("Store: %v", err)
	}

	decoded, err := DecodeCalendar(attrs)
	if err != nil {
		t.Fatalf("DecodeCalendar(stored): %v", err)
	}
	if !reflect.DeepEqual(decoded, cal) {
		t.Errorf("round trip = %v, want %v", decoded, cal)
	}

	attrs[SessionKeyBookingMap] = "{not json"
	if _, err := DecodeCalendar(attrs); err == nil {
		t.Error("expected error for malformed booking map")
	}
}

func TestDurationFor(t *testing.T) {
	tests := []struct {
		appointmentType string
		want            int
		known           bool
	}{
		{"cleaning", 30, true},
		{"root canal", 60, true},
		{"Root Canal", 60, true},
		{"WHITENING", 30, true},
		{"checkup", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, known := DurationFor(tt.appointmentType)
		if got != tt.want || known != tt.known {
			t.Errorf("DurationFor(%q) = %d, %v; want %d, %v", tt.appointmentType, got, known, tt.want, tt.known)
		}
	}
}
