package booking

import (
	"fmt"
	"time"

	"lumiere/models"
)

// SlotGranularityMinutes is the fixed spacing of candidate start times.
const SlotGranularityMinutes = 30

// AvailabilityInput carries everything the slot calculator needs. The
// computation is a pure function of this input; recomputing with identical
// input yields identical output.
type AvailabilityInput struct {
	Hours *models.BusinessHours // nil means no slots at all
	// Weekday of the target date, 0=Sunday.
	Weekday int
	// DayStart is midnight of the target date; appointment intervals are
	// compared against it.
	DayStart time.Time
	// RequestedDurationMinutes is the duration of the service being booked.
	// Zero or negative means the service is unknown: slots are generated but
	// none is available.
	RequestedDurationMinutes int
	// Appointments are the day's existing appointments.
	Appointments []models.Appointment
	// ServiceDurations maps serviceId to duration, used to derive each
	// existing appointment's blocking interval from its own service.
	ServiceDurations map[string]int
	// ExcludeAppointmentID removes one appointment from the booked set, so a
	// reschedule does not collide with itself.
	ExcludeAppointmentID string
}

// ComputeSlots produces the ordered slot grid for one day.
//
// Candidates run from opening to closing time in fixed 30-minute steps
// (right-open). A candidate is available when no active appointment covers
// it and the requested service still fits entirely before close.
func ComputeSlots(in AvailabilityInput) []models.Slot {
	if in.Hours == nil {
		return []models.Slot{}
	}
	open, err1 := parseClock(in.Hours.StartTime)
	close_, err2 := parseClock(in.Hours.EndTime)
	if err1 != nil || err2 != nil || close_ <= open {
		return []models.Slot{}
	}
	if !in.Hours.WorksOn(in.Weekday) {
		return []models.Slot{}
	}

	// Candidate grid, minutes from midnight.
	var starts []int
	for t := open; t < close_; t += SlotGranularityMinutes {
		starts = append(starts, t)
	}

	booked := make(map[int]bool, len(starts))
	for _, appt := range in.Appointments {
		if !appt.Active() || appt.ID == in.ExcludeAppointmentID {
			continue
		}
		s := minutesIntoDay(appt.Start, in.DayStart)
		e := s + blockingDuration(&appt, in.ServiceDurations)
		for _, t := range starts {
			if t >= s && t < e {
				booked[t] = true
			}
		}
	}

	slots := make([]models.Slot, 0, len(starts))
	for _, t := range starts {
		available := in.RequestedDurationMinutes > 0 &&
			!booked[t] &&
			t+in.RequestedDurationMinutes <= close_
		slots = append(slots, models.Slot{
			Time:      formatClock(t),
			Available: available,
		})
	}
	return slots
}

// blockingDuration derives how long an existing appointment occupies the
// calendar: its own service duration when known, otherwise the stored
// start/end distance.
func blockingDuration(appt *models.Appointment, durations map[string]int) int {
	if d, ok := durations[appt.ServiceID]; ok && d > 0 {
		return d
	}
	if d := int(appt.End.Sub(appt.Start).Minutes()); d > 0 {
		return d
	}
	return SlotGranularityMinutes
}

func minutesIntoDay(t, dayStart time.Time) int {
	return int(t.Sub(dayStart).Minutes())
}

// parseClock converts "HH:MM" into minutes from midnight.
func parseClock(s string) (int, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return h*60 + m, nil
}

// formatClock converts minutes from midnight into "HH:MM".
func formatClock(t int) string {
	return fmt.Sprintf("%02d:%02d", t/60, t%60)
}
