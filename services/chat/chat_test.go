package chat

import (
	"testing"
	"time"

	"lumiere/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type memoryChatRepo struct {
	messages []*models.ChatMessage
}

func (r *memoryChatRepo) Insert(msg *models.ChatMessage) error {
	msg.CreatedAt = time.Now()
	r.messages = append(r.messages, msg)
	return nil
}

func (r *memoryChatRepo) ListByAppointment(appointmentID string) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	for _, m := range r.messages {
		if m.AppointmentID == appointmentID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *memoryChatRepo) MarkRead(appointmentID, readerID string) error {
	for _, m := range r.messages {
		if m.AppointmentID == appointmentID && m.SenderID != readerID {
			m.IsRead = true
		}
	}
	return nil
}

func (r *memoryChatRepo) CountUnread(appointmentID, readerID string) (int64, error) {
	var n int64
	for _, m := range r.messages {
		if m.AppointmentID == appointmentID && m.SenderID != readerID && !m.IsRead {
			n++
		}
	}
	return n, nil
}

type stubAppointmentRepo struct {
	appt *models.Appointment
}

func (r *stubAppointmentRepo) Create(appt *models.Appointment) error { return nil }
func (r *stubAppointmentRepo) UpdateSetDocument(id string, updateDoc bson.M) error { return nil }
func (r *stubAppointmentRepo) GetByClient(clientID string) ([]models.Appointment, error) {
	return nil, nil
}
func (r *stubAppointmentRepo) GetByDay(dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	return nil, nil
}
func (r *stubAppointmentRepo) GetUnviewed() ([]models.Appointment, error) { return nil, nil }
func (r *stubAppointmentRepo) MarkViewed(ids []string) error { return nil }
func (r *stubAppointmentRepo) GetDueForReminder(from, to time.Time) ([]models.Appointment, error) {
	return nil, nil
}

func (r *stubAppointmentRepo) GetByID(id string) (*models.Appointment, error) {
	if r.appt != nil && r.appt.ID == id {
		return r.appt, nil
	}
	return nil, nil
}

func newChatService() (*DefaultChatService, *memoryChatRepo) {
	repo := &memoryChatRepo{}
	return &DefaultChatService{
		Repo: repo,
		Appointments: &stubAppointmentRepo{
			appt: &models.Appointment{ID: "appt-1", ClientID: "client-1"},
		},
	}, repo
}

func TestSendAndListConversation(t *testing.T) {
	svc, _ := newChatService()

	_, err := svc.Send("client-1", "appt-1", "Can I come 10 minutes late?", false)
	require.NoError(t, err)
	_, err = svc.Send("admin-1", "appt-1", "No problem, see you then.", true)
	require.NoError(t, err)

	msgs, err := svc.List("client-1", "appt-1", false)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "client-1", msgs[0].SenderID)
	assert.Equal(t, "admin-1", msgs[1].SenderID)
}

func TestSendRejectsEmptyText(t *testing.T) {
	svc, _ := newChatService()
	_, err := svc.Send("client-1", "appt-1", "", false)
	assert.Error(t, err)
}

func TestChatMembership(t *testing.T) {
	svc, _ := newChatService()

	t.Run("stranger cannot post", func(t *testing.T) {
		_, err := svc.Send("stranger", "appt-1", "hello?", false)
		require.Error(t, err)
		assert.IsType(t, NotParticipantError{}, err)
	})

	t.Run("stranger cannot read", func(t *testing.T) {
		_, err := svc.List("stranger", "appt-1", false)
		require.Error(t, err)
		assert.IsType(t, NotParticipantError{}, err)
	})

	t.Run("stranger cannot read unread count", func(t *testing.T) {
		_, err := svc.UnreadCount("stranger", "appt-1", false)
		require.Error(t, err)
		assert.IsType(t, NotParticipantError{}, err)
	})

	t.Run("admin may read unread count", func(t *testing.T) {
		_, err := svc.UnreadCount("admin-1", "appt-1", true)
		assert.NoError(t, err)
	})

	t.Run("admin may read any conversation", func(t *testing.T) {
		_, err := svc.List("admin-1", "appt-1", true)
		assert.NoError(t, err)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		_, err := svc.Send("client-1", "appt-missing", "anyone?", false)
		assert.Error(t, err)
	})
}

func TestMarkReadAndUnreadCount(t *testing.T) {
	svc, _ := newChatService()

	_, err := svc.Send("admin-1", "appt-1", "Your color arrived.", true)
	require.NoError(t, err)
	_, err = svc.Send("admin-1", "appt-1", "We can fit you in Friday.", true)
	require.NoError(t, err)

	unread, err := svc.UnreadCount("client-1", "appt-1", false)
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	require.NoError(t, svc.MarkRead("client-1", "appt-1", false))

	unread, err = svc.UnreadCount("client-1", "appt-1", false)
	require.NoError(t, err)
	assert.Zero(t, unread)
}
