package booking

import (
	"context"
	"fmt"
	"time"

	"lumiere/models"
	"lumiere/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetAvailability computes the slot grid for one day. Absent business-hours
// config or an unknown service fails closed rather than erroring.
func (s *DefaultBookingService) GetAvailability(date, serviceID, excludeAppointmentID string) ([]models.Slot, error) {
	dayStart, err := parseDay(date)
	if err != nil {
		return nil, err
	}

	hours, err := s.Settings.GetBusinessHours()
	if err != nil {
		return nil, fmt.Errorf("failed to load business hours: %w", err)
	}

	requestedDuration := 0
	if serviceID != "" {
		svc, err := s.Catalog.GetByID(serviceID)
		if err != nil {
			return nil, fmt.Errorf("failed to load service: %w", err)
		}
		if svc != nil {
			requestedDuration = svc.DurationMinutes
		}
	}

	appts, err := s.Repo.GetByDay(dayStart, dayStart.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}

	durations, err := s.serviceDurations()
	if err != nil {
		return nil, err
	}

	return ComputeSlots(AvailabilityInput{
		Hours:                    hours,
		Weekday:                  int(dayStart.Weekday()),
		DayStart:                 dayStart,
		RequestedDurationMinutes: requestedDuration,
		Appointments:             appts,
		ServiceDurations:         durations,
		ExcludeAppointmentID:     excludeAppointmentID,
	}), nil
}

// Book creates a scheduled appointment after re-validating the slot.
func (s *DefaultBookingService) Book(clientID string, req BookRequest) (*models.Appointment, error) {
	svc, err := s.Catalog.GetByID(req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s not found", req.ServiceID)
	}

	start, err := s.validateSlot(req.Date, req.Time, req.ServiceID, "")
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:           uuid.NewString(),
		ClientID:     clientID,
		ServiceID:    req.ServiceID,
		Start:        start,
		End:          start.Add(time.Duration(svc.DurationMinutes) * time.Minute),
		Status:       models.StatusScheduled,
		HairPhotoURL: req.HairPhotoURL,
	}
	if err := s.Repo.Create(appt); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("appointment booked",
		zap.String("id", appt.ID),
		zap.String("clientID", clientID),
		zap.Time("start", appt.Start))
	return appt, nil
}

// Reschedule overwrites start/end and resets the appointment to scheduled.
// The appointment itself is excluded from the booked set while validating.
func (s *DefaultBookingService) Reschedule(clientID, appointmentID string, req RescheduleRequest) (*models.Appointment, error) {
	appt, err := s.GetAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.ClientID != clientID {
		return nil, NotOwnerError{}
	}
	if appt.Status == models.StatusCompleted || appt.Status == models.StatusCancelled {
		return nil, InvalidTransitionError{From: appt.Status, To: models.StatusScheduled}
	}

	svc, err := s.Catalog.GetByID(appt.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load service: %w", err)
	}
	if svc == nil {
		return nil, fmt.Errorf("service %s not found", appt.ServiceID)
	}

	start, err := s.validateSlot(req.Date, req.Time, appt.ServiceID, appointmentID)
	if err != nil {
		return nil, err
	}

	update := bson.M{
		"start":  start,
		"end":    start.Add(time.Duration(svc.DurationMinutes) * time.Minute),
		"status": models.StatusScheduled,
	}
	if err := s.Repo.UpdateSetDocument(appointmentID, update); err != nil {
		return nil, err
	}
	return s.GetAppointment(appointmentID)
}

// validateSlot recomputes availability for the requested day and checks the
// chosen slot is on the grid and free.
func (s *DefaultBookingService) validateSlot(date, clock, serviceID, excludeID string) (time.Time, error) {
	slots, err := s.GetAvailability(date, serviceID, excludeID)
	if err != nil {
		return time.Time{}, err
	}
	if len(slots) == 0 {
		return time.Time{}, ClosedError{Reason: "no bookable hours on " + date}
	}
	for _, slot := range slots {
		if slot.Time == clock {
			if !slot.Available {
				return time.Time{}, SlotTakenError{Time: clock}
			}
			dayStart, err := parseDay(date)
			if err != nil {
				return time.Time{}, err
			}
			mins, err := parseClock(clock)
			if err != nil {
				return time.Time{}, err
			}
			return dayStart.Add(time.Duration(mins) * time.Minute), nil
		}
	}
	return time.Time{}, SlotTakenError{Time: clock}
}

// GetAppointment retrieves one appointment.
func (s *DefaultBookingService) GetAppointment(id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if appt == nil {
		return nil, fmt.Errorf("appointment %s not found", id)
	}
	return appt, nil
}

// ListForClient retrieves a client's appointments, newest first.
func (s *DefaultBookingService) ListForClient(clientID string) ([]models.Appointment, error) {
	return s.Repo.GetByClient(clientID)
}

// ListForDay retrieves every appointment on a calendar day.
func (s *DefaultBookingService) ListForDay(date string) ([]models.Appointment, error) {
	dayStart, err := parseDay(date)
	if err != nil {
		return nil, err
	}
	return s.Repo.GetByDay(dayStart, dayStart.Add(24*time.Hour))
}

// ListUnviewed retrieves appointments the dashboard has not acknowledged.
func (s *DefaultBookingService) ListUnviewed() ([]models.Appointment, error) {
	return s.Repo.GetUnviewed()
}

// MarkViewed acknowledges a batch of appointments in one write.
func (s *DefaultBookingService) MarkViewed(ids []string) error {
	return s.Repo.MarkViewed(ids)
}

// statusTransitions lists the admin-reachable moves per current status.
var statusTransitions = map[string][]string{
	models.StatusScheduled: {models.StatusConfirmed, models.StatusCancelled, models.StatusContested},
	models.StatusConfirmed: {models.StatusCompleted, models.StatusCancelled},
	models.StatusContested: {models.StatusConfirmed, models.StatusCancelled},
}

func transitionAllowed(from, to string) bool {
	for _, t := range statusTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// SetStatus applies an admin status change and notifies the client.
func (s *DefaultBookingService) SetStatus(appointmentID, status string) (*models.Appointment, error) {
	appt, err := s.GetAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(appt.Status, status) {
		return nil, InvalidTransitionError{From: appt.Status, To: status}
	}

	if err := s.Repo.UpdateSetDocument(appointmentID, bson.M{"status": status}); err != nil {
		return nil, err
	}
	appt.Status = status

	s.notifyStatus(appt)
	return appt, nil
}

// Contest records the admin's counter-proposal and moves the appointment to contested.
func (s *DefaultBookingService) Contest(appointmentID string, contest models.Contest) (*models.Appointment, error) {
	appt, err := s.GetAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if !transitionAllowed(appt.Status, models.StatusContested) {
		return nil, InvalidTransitionError{From: appt.Status, To: models.StatusContested}
	}

	update := bson.M{
		"status":  models.StatusContested,
		"contest": contest,
	}
	if err := s.Repo.UpdateSetDocument(appointmentID, update); err != nil {
		return nil, err
	}
	appt.Status = models.StatusContested
	appt.Contest = &contest

	s.notifyStatus(appt)
	return appt, nil
}

// ResolveContest lets the owning client accept or decline the proposal.
// Accepting confirms the appointment with the proposed duration; declining
// cancels it.
func (s *DefaultBookingService) ResolveContest(clientID, appointmentID string, accept bool) (*models.Appointment, error) {
	appt, err := s.GetAppointment(appointmentID)
	if err != nil {
		return nil, err
	}
	if appt.ClientID != clientID {
		return nil, NotOwnerError{}
	}
	if appt.Status != models.StatusContested {
		return nil, InvalidTransitionError{From: appt.Status, To: models.StatusConfirmed}
	}

	update := bson.M{}
	if accept {
		update["status"] = models.StatusConfirmed
		if appt.Contest != nil && appt.Contest.ProposedDurationMinutes > 0 {
			update["end"] = appt.Start.Add(time.Duration(appt.Contest.ProposedDurationMinutes) * time.Minute)
		}
	} else {
		update["status"] = models.StatusCancelled
	}
	if err := s.Repo.UpdateSetDocument(appointmentID, update); err != nil {
		return nil, err
	}
	return s.GetAppointment(appointmentID)
}

// notifyStatus pushes a status-change notification to the client, best effort.
func (s *DefaultBookingService) notifyStatus(appt *models.Appointment) {
	if s.Notifier == nil {
		return
	}
	title := "Appointment update"
	body := fmt.Sprintf("Your appointment on %s is now %s.", appt.Start.Format("Jan 2 15:04"), appt.Status)
	if err := s.Notifier.SendToUser(context.Background(), appt.ClientID, title, body, map[string]string{
		"type":          "appointment_status",
		"appointmentId": appt.ID,
	}); err != nil {
		utils.GetLogger().Warn("status push failed", zap.String("appointmentID", appt.ID), zap.Error(err))
	}
}

// serviceDurations builds the serviceId -> duration map the calculator needs.
func (s *DefaultBookingService) serviceDurations() (map[string]int, error) {
	services, err := s.Catalog.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	durations := make(map[string]int, len(services))
	for _, svc := range services {
		durations[svc.ID] = svc.DurationMinutes
	}
	return durations, nil
}

// parseDay interprets "YYYY-MM-DD" as midnight UTC of that date.
func parseDay(date string) (time.Time, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return day, nil
}
