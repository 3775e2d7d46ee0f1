package cron

import (
	"context"
	"time"

	appointmentRepo "lumiere/database/repository/appointment"
	"lumiere/services/notification"
	"lumiere/utils"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// reminderWindow is how far ahead the scan looks for upcoming appointments.
const reminderWindow = 24 * time.Hour

// ReminderWorker periodically scans for confirmed appointments starting soon
// and pushes a reminder to the client. Appointments are marked so the
// reminder goes out once.
type ReminderWorker struct {
	Appointments appointmentRepo.AppointmentRepository
	Notifier     notification.NotificationService

	scheduler *cron.Cron
}

func NewReminderWorker(appointments appointmentRepo.AppointmentRepository, notifier notification.NotificationService) *ReminderWorker {
	return &ReminderWorker{Appointments: appointments, Notifier: notifier}
}

// Start schedules the scan every 15 minutes and runs one pass immediately.
func (w *ReminderWorker) Start() error {
	w.scheduler = cron.New()
	if _, err := w.scheduler.AddFunc("*/15 * * * *", w.runOnce); err != nil {
		return err
	}
	w.scheduler.Start()
	go w.runOnce()
	utils.GetLogger().Info("Reminder worker started")
	return nil
}

// Stop waits for a running scan to finish.
func (w *ReminderWorker) Stop() {
	if w.scheduler != nil {
		<-w.scheduler.Stop().Done()
	}
}

func (w *ReminderWorker) runOnce() {
	logger := utils.GetLogger()

	now := time.Now().UTC()
	due, err := w.Appointments.GetDueForReminder(now, now.Add(reminderWindow))
	if err != nil {
		logger.Error("Reminder scan failed", zap.Error(err))
		return
	}
	if len(due) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	sent := 0
	for _, appt := range due {
		when := appt.Start.Local().Format("Mon 02 Jan, 15:04")
		err := w.Notifier.SendToUser(ctx, appt.ClientID,
			"Appointment reminder",
			"See you at the salon on "+when,
			map[string]string{"type": "reminder", "appointmentId": appt.ID},
		)
		if err != nil {
			logger.Warn("Reminder push failed",
				zap.String("appointmentId", appt.ID), zap.Error(err))
			continue
		}
		if err := w.Appointments.UpdateSetDocument(appt.ID, bson.M{"reminderSent": true}); err != nil {
			logger.Error("Failed to mark reminder sent",
				zap.String("appointmentId", appt.ID), zap.Error(err))
			continue
		}
		sent++
	}
	logger.Info("Reminder pass complete", zap.Int("due", len(due)), zap.Int("sent", sent))
}
