package booking

import (
	"fmt"
	"testing"
	"time"

	"lumiere/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// In-memory fakes backing the service tests.

type fakeAppointmentRepo struct {
	appts map[string]*models.Appointment
}

func newFakeAppointmentRepo(appts ...*models.Appointment) *fakeAppointmentRepo {
	repo := &fakeAppointmentRepo{appts: make(map[string]*models.Appointment)}
	for _, a := range appts {
		repo.appts[a.ID] = a
	}
	return repo
}

func (r *fakeAppointmentRepo) Create(appt *models.Appointment) error {
	r.appts[appt.ID] = appt
	return nil
}

func (r *fakeAppointmentRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	appt, ok := r.appts[id]
	if !ok {
		return fmt.Errorf("appointment %s not found", id)
	}
	for k, v := range updateDoc {
		switch k {
		case "status":
			appt.Status = v.(string)
		case "start":
			appt.Start = v.(time.Time)
		case "end":
			appt.End = v.(time.Time)
		case "contest":
			c := v.(models.Contest)
			appt.Contest = &c
		case "viewedByAdmin":
			appt.ViewedByAdmin = v.(bool)
		}
	}
	return nil
}

func (r *fakeAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	appt, ok := r.appts[id]
	if !ok {
		return nil, nil
	}
	cp := *appt
	return &cp, nil
}

func (r *fakeAppointmentRepo) GetByClient(clientID string) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if a.ClientID == clientID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) GetByDay(dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if !a.Start.Before(dayStart) && a.Start.Before(dayEnd) {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) GetUnviewed() ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appts {
		if !a.ViewedByAdmin {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAppointmentRepo) MarkViewed(ids []string) error {
	for _, id := range ids {
		if a, ok := r.appts[id]; ok {
			a.ViewedByAdmin = true
		}
	}
	return nil
}

func (r *fakeAppointmentRepo) GetDueForReminder(from, to time.Time) ([]models.Appointment, error) {
	return nil, nil
}

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func newFakeServiceRepo(services ...*models.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[string]*models.Service)}
	for _, s := range services {
		repo.services[s.ID] = s
	}
	return repo
}

func (r *fakeServiceRepo) Create(svc *models.Service) error { r.services[svc.ID] = svc; return nil }
func (r *fakeServiceRepo) Update(svc *models.Service) error { r.services[svc.ID] = svc; return nil }
func (r *fakeServiceRepo) Delete(id string) error { delete(r.services, id); return nil }

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	svc, ok := r.services[id]
	if !ok {
		return nil, nil
	}
	return svc, nil
}

func (r *fakeServiceRepo) GetAll() ([]models.Service, error) {
	var out []models.Service
	for _, s := range r.services {
		out = append(out, *s)
	}
	return out, nil
}

type fakeSettingsRepo struct {
	hours *models.BusinessHours
}

func (r *fakeSettingsRepo) GetBusinessHours() (*models.BusinessHours, error) { return r.hours, nil }
func (r *fakeSettingsRepo) SetBusinessHours(b *models.BusinessHours) error { r.hours = b; return nil }
func (r *fakeSettingsRepo) GetTheme() (*models.Theme, error) { return nil, nil }
func (r *fakeSettingsRepo) SetTheme(t *models.Theme) error { return nil }
func (r *fakeSettingsRepo) GetHeroBanner() (*models.HeroBanner, error) { return nil, nil }
func (r *fakeSettingsRepo) SetHeroBanner(h *models.HeroBanner) error { return nil }
func (r *fakeSettingsRepo) GetSocialLinks() (*models.SocialLinks, error) { return nil, nil }
func (r *fakeSettingsRepo) SetSocialLinks(s *models.SocialLinks) error { return nil }
func (r *fakeSettingsRepo) ListGallery() ([]models.GalleryImage, error) { return nil, nil }
func (r *fakeSettingsRepo) UpsertGalleryImage(img *models.GalleryImage) error { return nil }
func (r *fakeSettingsRepo) DeleteGalleryImage(id string) error { return nil }

func newTestService(appts ...*models.Appointment) (*DefaultBookingService, *fakeAppointmentRepo) {
	repo := newFakeAppointmentRepo(appts...)
	return &DefaultBookingService{
		Repo: repo,
		Catalog: newFakeServiceRepo(
			&models.Service{ID: "cut", Name: "Haircut", DurationMinutes: 60},
			&models.Service{ID: "fringe", Name: "Fringe trim", DurationMinutes: 30},
		),
		Settings: &fakeSettingsRepo{hours: workweekHours("09:00", "18:00")},
	}, repo
}

func TestBookCreatesScheduledAppointment(t *testing.T) {
	svc, repo := newTestService()

	appt, err := svc.Book("client-1", BookRequest{
		ServiceID: "cut",
		Date:      "2026-03-02",
		Time:      "10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.Equal(t, "client-1", appt.ClientID)
	assert.Equal(t, testDay.Add(10*time.Hour), appt.Start)
	assert.Equal(t, testDay.Add(11*time.Hour), appt.End)
	assert.Len(t, repo.appts, 1)
}

func TestBookRejectsTakenSlot(t *testing.T) {
	existing := apptAt("a1", "cut", 10, 0, 60)
	svc, _ := newTestService(&existing)

	_, err := svc.Book("client-2", BookRequest{
		ServiceID: "fringe",
		Date:      "2026-03-02",
		Time:      "10:30",
	})
	require.Error(t, err)
	assert.IsType(t, SlotTakenError{}, err)
}

func TestBookRejectsClosedDay(t *testing.T) {
	svc, _ := newTestService()

	// 2026-03-01 is a Sunday, outside the configured working days.
	_, err := svc.Book("client-1", BookRequest{
		ServiceID: "cut",
		Date:      "2026-03-01",
		Time:      "10:00",
	})
	require.Error(t, err)
	assert.IsType(t, ClosedError{}, err)
}

func TestBookRejectsOffGridTime(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Book("client-1", BookRequest{
		ServiceID: "cut",
		Date:      "2026-03-02",
		Time:      "10:15",
	})
	require.Error(t, err)
	assert.IsType(t, SlotTakenError{}, err)
}

func TestRescheduleMovesAndResetsStatus(t *testing.T) {
	existing := apptAt("a1", "cut", 10, 0, 60)
	existing.ClientID = "client-1"
	existing.Status = models.StatusConfirmed
	svc, repo := newTestService(&existing)

	appt, err := svc.Reschedule("client-1", "a1", RescheduleRequest{
		Date: "2026-03-02",
		Time: "14:00",
	})
	require.NoError(t, err)

	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.Equal(t, testDay.Add(14*time.Hour), appt.Start)
	assert.Equal(t, testDay.Add(15*time.Hour), appt.End)
	assert.Len(t, repo.appts, 1)
}

func TestRescheduleIntoOwnSlotSucceeds(t *testing.T) {
	existing := apptAt("a1", "cut", 10, 0, 60)
	existing.ClientID = "client-1"
	svc, _ := newTestService(&existing)

	// Moving by half a step overlaps the vacated interval; only the
	// self-exclusion makes this legal.
	appt, err := svc.Reschedule("client-1", "a1", RescheduleRequest{
		Date: "2026-03-02",
		Time: "10:30",
	})
	require.NoError(t, err)
	assert.Equal(t, testDay.Add(10*time.Hour+30*time.Minute), appt.Start)
}

func TestRescheduleEnforcesOwnership(t *testing.T) {
	existing := apptAt("a1", "cut", 10, 0, 60)
	existing.ClientID = "client-1"
	svc, _ := newTestService(&existing)

	_, err := svc.Reschedule("intruder", "a1", RescheduleRequest{
		Date: "2026-03-02",
		Time: "14:00",
	})
	require.Error(t, err)
	assert.IsType(t, NotOwnerError{}, err)
}

func TestSetStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to string
		ok       bool
	}{
		{models.StatusScheduled, models.StatusConfirmed, true},
		{models.StatusScheduled, models.StatusCancelled, true},
		{models.StatusScheduled, models.StatusContested, true},
		{models.StatusScheduled, models.StatusCompleted, false},
		{models.StatusConfirmed, models.StatusCompleted, true},
		{models.StatusConfirmed, models.StatusScheduled, false},
		{models.StatusContested, models.StatusConfirmed, true},
		{models.StatusCompleted, models.StatusCancelled, false},
		{models.StatusCancelled, models.StatusConfirmed, false},
	}
	for _, tt := range tests {
		t.Run(tt.from+"_to_"+tt.to, func(t *testing.T) {
			existing := apptAt("a1", "cut", 10, 0, 60)
			existing.Status = tt.from
			svc, repo := newTestService(&existing)

			appt, err := svc.SetStatus("a1", tt.to)
			if tt.ok {
				require.NoError(t, err)
				assert.Equal(t, tt.to, appt.Status)
				assert.Equal(t, tt.to, repo.appts["a1"].Status)
			} else {
				require.Error(t, err)
				assert.IsType(t, InvalidTransitionError{}, err)
				assert.Equal(t, tt.from, repo.appts["a1"].Status)
			}
		})
	}
}

func TestContestAndResolve(t *testing.T) {
	t.Run("accept applies proposed duration", func(t *testing.T) {
		existing := apptAt("a1", "cut", 10, 0, 60)
		existing.ClientID = "client-1"
		existing.Status = models.StatusScheduled
		svc, _ := newTestService(&existing)

		_, err := svc.Contest("a1", models.Contest{
			Reason:                  "hair length needs the long treatment",
			ProposedDurationMinutes: 90,
			ProposedPrice:           120,
		})
		require.NoError(t, err)

		appt, err := svc.ResolveContest("client-1", "a1", true)
		require.NoError(t, err)
		assert.Equal(t, models.StatusConfirmed, appt.Status)
		assert.Equal(t, testDay.Add(11*time.Hour+30*time.Minute), appt.End)
	})

	t.Run("decline cancels", func(t *testing.T) {
		existing := apptAt("a1", "cut", 10, 0, 60)
		existing.ClientID = "client-1"
		existing.Status = models.StatusScheduled
		svc, _ := newTestService(&existing)

		_, err := svc.Contest("a1", models.Contest{Reason: "overbooked"})
		require.NoError(t, err)

		appt, err := svc.ResolveContest("client-1", "a1", false)
		require.NoError(t, err)
		assert.Equal(t, models.StatusCancelled, appt.Status)
	})

	t.Run("only owner may resolve", func(t *testing.T) {
		existing := apptAt("a1", "cut", 10, 0, 60)
		existing.ClientID = "client-1"
		existing.Status = models.StatusContested
		svc, _ := newTestService(&existing)

		_, err := svc.ResolveContest("intruder", "a1", true)
		require.Error(t, err)
		assert.IsType(t, NotOwnerError{}, err)
	})
}

func TestMarkViewedBatch(t *testing.T) {
	a1 := apptAt("a1", "cut", 9, 0, 60)
	a2 := apptAt("a2", "cut", 11, 0, 60)
	a3 := apptAt("a3", "cut", 14, 0, 60)
	svc, repo := newTestService(&a1, &a2, &a3)

	require.NoError(t, svc.MarkViewed([]string{"a1", "a3"}))

	assert.True(t, repo.appts["a1"].ViewedByAdmin)
	assert.False(t, repo.appts["a2"].ViewedByAdmin)
	assert.True(t, repo.appts["a3"].ViewedByAdmin)
}
