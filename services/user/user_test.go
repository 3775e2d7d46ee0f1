package user

import (
	"fmt"
	"testing"

	"lumiere/config"
	"lumiere/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memoryUserRepo implements the repository on a map, mirroring the document
// store's set semantics for fcmTokens.
type memoryUserRepo struct {
	users map[string]*models.User
}

func newMemoryUserRepo(users ...*models.User) *memoryUserRepo {
	repo := &memoryUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		repo.users[u.ID] = u
	}
	return repo
}

func (r *memoryUserRepo) Create(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memoryUserRepo) Update(u *models.User) error {
	r.users[u.ID] = u
	return nil
}

func (r *memoryUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *memoryUserRepo) GetByIDWithProjection(id string, projection bson.M) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}

func (r *memoryUserRepo) GetByEmailWithProjection(email string, projection bson.M) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) GetByTokenHash(tokenHash string) (*models.User, error) {
	for _, u := range r.users {
		if u.TokenHash != "" && u.TokenHash == tokenHash {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memoryUserRepo) GetAllWithProjection(projection bson.M) ([]models.User, error) {
	out := make([]models.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *memoryUserRepo) UpdateSetDocument(id string, updateDoc bson.M) error {
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id)
	}
	for k, v := range updateDoc {
		switch k {
		case "tokenHash":
			u.TokenHash = v.(string)
		case "passwordHash":
			u.PasswordHash = v.(string)
		case "isAdmin":
			u.IsAdmin = v.(bool)
		case "name":
			u.Name = v.(string)
		}
	}
	return nil
}

func (r *memoryUserRepo) AddTokenToSet(id, token string) error {
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id)
	}
	for _, t := range u.FCMTokens {
		if t == token {
			return nil
		}
	}
	u.FCMTokens = append(u.FCMTokens, token)
	return nil
}

func (r *memoryUserRepo) RemoveToken(id, token string) error {
	u, ok := r.users[id]
	if !ok {
		return fmt.Errorf("user %s not found", id)
	}
	kept := u.FCMTokens[:0]
	for _, t := range u.FCMTokens {
		if t != token {
			kept = append(kept, t)
		}
	}
	u.FCMTokens = kept
	return nil
}

func (r *memoryUserRepo) RemoveTokenEverywhere(token string) error {
	for _, u := range r.users {
		_ = r.RemoveToken(u.ID, token)
	}
	return nil
}

func TestSubscribeTokenIsSetLike(t *testing.T) {
	repo := newMemoryUserRepo(&models.User{ID: "u1"})
	svc := &DefaultUserService{Repo: repo}

	require.NoError(t, svc.SubscribeToken("u1", "tok-a"))
	require.NoError(t, svc.SubscribeToken("u1", "tok-a"))
	require.NoError(t, svc.SubscribeToken("u1", "tok-b"))

	assert.Equal(t, []string{"tok-a", "tok-b"}, repo.users["u1"].FCMTokens)
}

func TestUnsubscribeTokenIsIdempotent(t *testing.T) {
	repo := newMemoryUserRepo(&models.User{ID: "u1", FCMTokens: []string{"tok-a", "tok-b"}})
	svc := &DefaultUserService{Repo: repo}

	require.NoError(t, svc.UnsubscribeToken("u1", "tok-a"))
	require.NoError(t, svc.UnsubscribeToken("u1", "tok-a"))

	assert.Equal(t, []string{"tok-b"}, repo.users["u1"].FCMTokens)
}

func TestSubscribeTokenRejectsEmpty(t *testing.T) {
	svc := &DefaultUserService{Repo: newMemoryUserRepo(&models.User{ID: "u1"})}
	assert.Error(t, svc.SubscribeToken("u1", ""))
	assert.Error(t, svc.UnsubscribeToken("u1", ""))
}

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(RegistrationRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.IsAdmin)

	// Registration never grants admin, whatever the payload carried.
	assert.False(t, repo.users[resp.ID].IsAdmin)

	t.Run("duplicate email rejected", func(t *testing.T) {
		_, err := svc.Register(RegistrationRequest{
			Name:     "Ana Again",
			Email:    "ana@example.com",
			Password: "another pass",
		})
		require.Error(t, err)
		assert.IsType(t, DuplicateEmailError{}, err)
	})

	t.Run("valid credentials", func(t *testing.T) {
		got, err := svc.Authenticate("ana@example.com", "correct horse battery")
		require.NoError(t, err)
		assert.Equal(t, resp.ID, got.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate("ana@example.com", "nope")
		require.Error(t, err)
		assert.IsType(t, AuthError{}, err)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate("ghost@example.com", "whatever")
		require.Error(t, err)
		assert.IsType(t, AuthError{}, err)
	})
}

func TestUpdatePasswordRequiresCurrent(t *testing.T) {
	repo := newMemoryUserRepo()
	svc := &DefaultUserService{Repo: repo}

	resp, err := svc.Register(RegistrationRequest{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "old password",
	})
	require.NoError(t, err)

	err = svc.UpdatePassword(resp.ID, "wrong guess", "new password")
	require.Error(t, err)
	assert.IsType(t, AuthError{}, err)

	require.NoError(t, svc.UpdatePassword(resp.ID, "old password", "new password"))

	// The active session was revoked along with the old password.
	assert.Empty(t, repo.users[resp.ID].TokenHash)
	_, err = svc.Authenticate("ana@example.com", "new password")
	assert.NoError(t, err)
}

func TestRevokeAuthTokenClearsSession(t *testing.T) {
	repo := newMemoryUserRepo(&models.User{ID: "u1", TokenHash: "stored-hash"})
	svc := &DefaultUserService{Repo: repo}

	require.NoError(t, svc.RevokeAuthToken("u1"))
	assert.Empty(t, repo.users["u1"].TokenHash)
}

func TestDeleteUserRemovesAccount(t *testing.T) {
	repo := newMemoryUserRepo(&models.User{ID: "u1", TokenHash: "stored-hash"})
	svc := &DefaultUserService{Repo: repo}

	require.NoError(t, svc.DeleteUser("u1"))
	assert.NotContains(t, repo.users, "u1")
}

func TestGrantAdmin(t *testing.T) {
	origKey := config.AppConfig.AdminBootstrapKey
	t.Cleanup(func() { config.AppConfig.AdminBootstrapKey = origKey })

	repo := newMemoryUserRepo(&models.User{ID: "u1", Email: "ana@example.com"})
	svc := &DefaultUserService{Repo: repo}

	t.Run("disabled without configured key", func(t *testing.T) {
		config.AppConfig.AdminBootstrapKey = ""
		assert.Error(t, svc.GrantAdmin("ana@example.com", "anything"))
		assert.False(t, repo.users["u1"].IsAdmin)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		config.AppConfig.AdminBootstrapKey = "ops-key"
		err := svc.GrantAdmin("ana@example.com", "wrong")
		require.Error(t, err)
		assert.IsType(t, AuthError{}, err)
		assert.False(t, repo.users["u1"].IsAdmin)
	})

	t.Run("correct key grants", func(t *testing.T) {
		config.AppConfig.AdminBootstrapKey = "ops-key"
		require.NoError(t, svc.GrantAdmin("ana@example.com", "ops-key"))
		assert.True(t, repo.users["u1"].IsAdmin)
	})
}
