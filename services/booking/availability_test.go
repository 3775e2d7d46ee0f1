package booking

import (
	"testing"
	"time"

	"lumiere/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC) // a Monday

func workweekHours(start, end string) *models.BusinessHours {
	return &models.BusinessHours{
		StartTime:   start,
		EndTime:     end,
		WorkingDays: []int{1, 2, 3, 4, 5},
	}
}

func apptAt(id, serviceID string, hour, min, durationMinutes int) models.Appointment {
	start := testDay.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	return models.Appointment{
		ID:        id,
		ServiceID: serviceID,
		Start:     start,
		End:       start.Add(time.Duration(durationMinutes) * time.Minute),
		Status:    models.StatusConfirmed,
	}
}

func availableTimes(slots []models.Slot) []string {
	var out []string
	for _, s := range slots {
		if s.Available {
			out = append(out, s.Time)
		}
	}
	return out
}

func TestComputeSlotsGridShape(t *testing.T) {
	tests := []struct {
		name       string
		start, end string
		wantCount  int
	}{
		{"nine to six", "09:00", "18:00", 18},
		{"half-hour open", "09:30", "12:00", 5},
		{"single slot", "10:00", "10:30", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := ComputeSlots(AvailabilityInput{
				Hours:                    workweekHours(tt.start, tt.end),
				Weekday:                  1,
				DayStart:                 testDay,
				RequestedDurationMinutes: 30,
			})
			require.Len(t, slots, tt.wantCount)
			assert.Equal(t, tt.start, slots[0].Time)
		})
	}
}

func TestComputeSlotsUnevenClose(t *testing.T) {
	// Closing on a quarter hour: the grid still advances in half-hour steps,
	// so 18:00 is a candidate but a 30-minute visit would run past 18:15.
	slots := ComputeSlots(AvailabilityInput{
		Hours:                    workweekHours("09:00", "18:15"),
		Weekday:                  1,
		DayStart:                 testDay,
		RequestedDurationMinutes: 30,
	})
	require.Len(t, slots, 19)
	assert.Equal(t, "18:00", slots[len(slots)-1].Time)
	assert.False(t, slots[len(slots)-1].Available)
	assert.Contains(t, availableTimes(slots), "17:30")
	assert.NotContains(t, availableTimes(slots), "18:00")
}

func TestComputeSlotsBusyDayScenario(t *testing.T) {
	// 09:00-18:00, existing 60-minute appointment at 10:00, 30-minute request.
	slots := ComputeSlots(AvailabilityInput{
		Hours:                    workweekHours("09:00", "18:00"),
		Weekday:                  1,
		DayStart:                 testDay,
		RequestedDurationMinutes: 30,
		Appointments:             []models.Appointment{apptAt("a1", "cut", 10, 0, 60)},
		ServiceDurations:         map[string]int{"cut": 60},
	})
	require.Len(t, slots, 18)

	byTime := make(map[string]bool, len(slots))
	for _, s := range slots {
		byTime[s.Time] = s.Available
	}
	assert.True(t, byTime["09:00"])
	assert.True(t, byTime["09:30"])
	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["10:30"])
	assert.True(t, byTime["11:00"])
	assert.Equal(t, "17:30", slots[len(slots)-1].Time)
	assert.True(t, byTime["17:30"])
}

func TestComputeSlotsRequestMustFitBeforeClose(t *testing.T) {
	// 90-minute request: the last two candidates no longer fit.
	slots := ComputeSlots(AvailabilityInput{
		Hours:                    workweekHours("09:00", "12:00"),
		Weekday:                  1,
		DayStart:                 testDay,
		RequestedDurationMinutes: 90,
	})
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, availableTimes(slots))
}

func TestComputeSlotsFailClosed(t *testing.T) {
	t.Run("no business hours", func(t *testing.T) {
		assert.Empty(t, ComputeSlots(AvailabilityInput{Weekday: 1, DayStart: testDay, RequestedDurationMinutes: 30}))
	})

	t.Run("non-working day", func(t *testing.T) {
		slots := ComputeSlots(AvailabilityInput{
			Hours:                    workweekHours("09:00", "18:00"),
			Weekday:                  0, // Sunday
			DayStart:                 testDay,
			RequestedDurationMinutes: 30,
		})
		assert.Empty(t, slots)
	})

	t.Run("unknown service", func(t *testing.T) {
		slots := ComputeSlots(AvailabilityInput{
			Hours:    workweekHours("09:00", "18:00"),
			Weekday:  1,
			DayStart: testDay,
			// Duration zero: the grid renders but nothing is bookable.
		})
		require.Len(t, slots, 18)
		assert.Empty(t, availableTimes(slots))
	})

	t.Run("inverted hours", func(t *testing.T) {
		slots := ComputeSlots(AvailabilityInput{
			Hours:                    workweekHours("18:00", "09:00"),
			Weekday:                  1,
			DayStart:                 testDay,
			RequestedDurationMinutes: 30,
		})
		assert.Empty(t, slots)
	})
}

func TestComputeSlotsCancelledDoesNotBlock(t *testing.T) {
	cancelled := apptAt("a1", "cut", 10, 0, 60)
	cancelled.Status = models.StatusCancelled

	slots := ComputeSlots(AvailabilityInput{
		Hours:                    workweekHours("09:00", "12:00"),
		Weekday:                  1,
		DayStart:                 testDay,
		RequestedDurationMinutes: 30,
		Appointments:             []models.Appointment{cancelled},
		ServiceDurations:         map[string]int{"cut": 60},
	})
	assert.Contains(t, availableTimes(slots), "10:00")
	assert.Contains(t, availableTimes(slots), "10:30")
}

func TestComputeSlotsRescheduleExcludesSelf(t *testing.T) {
	in := AvailabilityInput{
		Hours:                    workweekHours("09:00", "12:00"),
		Weekday:                  1,
		DayStart:                 testDay,
		RequestedDurationMinutes: 30,
		Appointments:             []models.Appointment{apptAt("a1", "cut", 10, 0, 60)},
		ServiceDurations:         map[string]int{"cut": 60},
	}

	blocked := ComputeSlots(in)
	assert.NotContains(t, availableTimes(blocked), "10:00")

	in.ExcludeAppointmentID = "a1"
	freed := ComputeSlots(in)
	assert.Contains(t, availableTimes(freed), "10:00")
	assert.Contains(t, availableTimes(freed), "10:30")
}

func TestComputeSlotsBlockingUsesOwnServiceDuration(t *testing.T) {
	// The existing appointment is a 120-minute treatment; a 30-minute request
	// must still respect its full interval.
	slots := ComputeSlots(AvailabilityInput{
		Hours:                    workweekHours("09:00", "13:00"),
		Weekday:                  1,
		DayStart:                 testDay,
		RequestedDurationMinutes: 30,
		Appointments:             []models.Appointment{apptAt("a1", "balayage", 9, 0, 120)},
		ServiceDurations:         map[string]int{"balayage": 120},
	})
	assert.Equal(t, []string{"11:00", "11:30", "12:00", "12:30"}, availableTimes(slots))
}

func TestComputeSlotsPure(t *testing.T) {
	in := AvailabilityInput{
		Hours:                    workweekHours("09:00", "18:00"),
		Weekday:                  1,
		DayStart:                 testDay,
		RequestedDurationMinutes: 30,
		Appointments:             []models.Appointment{apptAt("a1", "cut", 10, 0, 60)},
		ServiceDurations:         map[string]int{"cut": 60},
	}
	first := ComputeSlots(in)
	second := ComputeSlots(in)
	assert.Equal(t, first, second)
}
