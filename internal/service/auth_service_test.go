package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edusync_gateway/internal/config"
	"edusync_gateway/internal/model"
	"edusync_gateway/internal/upstream"
	"edusync_gateway/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	sessions map[string]*model.Session
	ttls     map[string]time.Duration
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: map[string]*model.Session{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStore) Init(ctx context.Context, sess *model.Session, ttl time.Duration) error {
	m.sessions[sess.ID] = sess
	m.ttls[sess.ID] = ttl
	return nil
}

func (m *memoryStore) Get(ctx context.Context, id string) (*model.Session, error) {
	sess, ok := m.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	return sess, nil
}

func (m *memoryStore) Clear(ctx context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func signedLikeToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	header, _ := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatal(err)
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("sig"))
}

func newAuthFixture(t *testing.T, status int, response upstream.LoginResponse) (*AuthService, *memoryStore) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/Auth/login" {
			http.NotFound(w, r)
			return
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		json.NewEncoder(w).Encode(response)
	}))
	t.Cleanup(srv.Close)

	store := newMemoryStore()
	return NewAuthService(upstream.NewClient(&config.UpstreamConfig{BaseURL: srv.URL}), store), store
}

func TestLoginCreatesSession(t *testing.T) {
	token := signedLikeToken(t, map[string]interface{}{
		"sub": "user-7",
		"exp": time.Now().Add(2 * time.Hour).Unix(),
	})
	svc, store := newAuthFixture(t, http.StatusOK, upstream.LoginResponse{Token: token, Role: "Student"})

	result, err := svc.Login(context.Background(), "alice@example.com", "pw")
	require.NoError(t, err)

	assert.Equal(t, model.Student, result.Role)
	assert.Equal(t, "/student-dashboard", result.Landing)
	require.NotEmpty(t, result.SessionID)

	sess, err := store.Get(context.Background(), result.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "user-7", sess.UserID)
	assert.Equal(t, "alice@example.com", sess.Email)
	assert.Equal(t, token, sess.Token)

	// The session lives as long as the token does.
	ttl := store.ttls[result.SessionID]
	assert.Greater(t, ttl, time.Hour)
	assert.LessOrEqual(t, ttl, 2*time.Hour)
}

func TestLoginInstructorLanding(t *testing.T) {
	token := signedLikeToken(t, map[string]interface{}{"sub": "u"})
	svc, _ := newAuthFixture(t, http.StatusOK, upstream.LoginResponse{Token: token, Role: "INSTRUCTOR"})

	result, err := svc.Login(context.Background(), "jdoe@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, model.Instructor, result.Role)
	assert.Equal(t, "/instructor-dashboard", result.Landing)
}

func TestLoginRejectsMissingToken(t *testing.T) {
	svc, _ := newAuthFixture(t, http.StatusOK, upstream.LoginResponse{Role: "student"})
	_, err := svc.Login(context.Background(), "a@b.c", "pw")
	require.ErrorIs(t, err, ErrNoToken)
}

func TestLoginRejectsUnknownRole(t *testing.T) {
	token := signedLikeToken(t, map[string]interface{}{"sub": "u"})
	svc, _ := newAuthFixture(t, http.StatusOK, upstream.LoginResponse{Token: token, Role: "admin"})
	_, err := svc.Login(context.Background(), "a@b.c", "pw")
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t, http.StatusUnauthorized, upstream.LoginResponse{})
	_, err := svc.Login(context.Background(), "a@b.c", "wrong")
	var se *upstream.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.Code)
}

func TestLogoutClearsSession(t *testing.T) {
	svc, store := newAuthFixture(t, http.StatusOK, upstream.LoginResponse{})
	store.sessions["sid"] = &model.Session{ID: "sid"}

	require.NoError(t, svc.Logout(context.Background(), "sid"))
	_, err := store.Get(context.Background(), "sid")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}
