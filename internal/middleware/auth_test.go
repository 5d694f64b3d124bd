package middleware

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edusync_gateway/internal/model"
	"edusync_gateway/internal/util"
	"edusync_gateway/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
}

type fakeStore struct {
	sessions map[string]*model.Session
}

func (f *fakeStore) Init(ctx context.Context, sess *model.Session, ttl time.Duration) error {
	f.sessions[sess.ID] = sess
	return nil
}

func (f *fakeStore) Get(ctx context.Context, id string) (*model.Session, error) {
	sess, ok := f.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	return sess, nil
}

func (f *fakeStore) Clear(ctx context.Context, id string) error {
	delete(f.sessions, id)
	return nil
}

func unsignedToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	header, _ := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatal(err)
	}
	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(payload) + "." + enc.EncodeToString([]byte("sig"))
}

func newAuthRouter(store *fakeStore, roles ...model.Role) *gin.Engine {
	router := gin.New()
	group := router.Group("/", SessionMiddleware(store))
	if len(roles) > 0 {
		group.Use(RoleMiddleware(roles...))
	}
	group.GET("/whoami", func(c *gin.Context) {
		sess := GetSession(c)
		c.String(http.StatusOK, sess.Email)
	})
	return router
}

func doRequest(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSessionMiddleware(t *testing.T) {
	token := unsignedToken(t, map[string]interface{}{
		"sub": "u1", "exp": time.Now().Add(time.Hour).Unix(),
	})
	store := &fakeStore{sessions: map[string]*model.Session{
		"sid-1": {ID: "sid-1", Token: token, Role: model.Student, Email: "alice@example.com"},
	}}
	router := newAuthRouter(store)

	t.Run("missing header", func(t *testing.T) {
		w := doRequest(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		w := doRequest(router, "Bearer nope")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid session", func(t *testing.T) {
		w := doRequest(router, "Bearer sid-1")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "alice@example.com", w.Body.String())
	})
}

func TestSessionMiddlewareDiscardsExpiredSession(t *testing.T) {
	expired := unsignedToken(t, map[string]interface{}{
		"sub": "u1", "exp": time.Now().Add(-time.Minute).Unix(),
	})
	store := &fakeStore{sessions: map[string]*model.Session{
		"sid-1": {ID: "sid-1", Token: expired, Role: model.Student, Email: "alice@example.com"},
	}}
	router := newAuthRouter(store)

	w := doRequest(router, "Bearer sid-1")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Session expired")

	// The expired session is gone; the store no longer holds it.
	_, err := store.Get(context.Background(), "sid-1")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestRoleMiddleware(t *testing.T) {
	token := unsignedToken(t, map[string]interface{}{"sub": "u1"})
	store := &fakeStore{sessions: map[string]*model.Session{
		"student": {ID: "student", Token: token, Role: model.Student, Email: "s@example.com"},
		"instructor": {ID: "instructor", Token: token, Role: model.Instructor, Email: "t@example.com"},
	}}
	router := newAuthRouter(store, model.Instructor)

	w := doRequest(router, "Bearer student")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(router, "Bearer instructor")
	assert.Equal(t, http.StatusOK, w.Code)
}
