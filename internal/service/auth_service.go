package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"edusync_gateway/internal/model"
	"edusync_gateway/internal/upstream"
	"edusync_gateway/internal/util"
	"edusync_gateway/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService struct {
	Upstream *upstream.Client
	Sessions SessionStore
}

func NewAuthService(up *upstream.Client, sessions SessionStore) *AuthService {
	return &AuthService{Upstream: up, Sessions: sessions}
}

// LoginResult is what the SPA needs after a successful login: the session
// handle to present on later requests and where to land next.
type LoginResult struct {
	SessionID string     `json:"sessionId"`
	Role      model.Role `json:"role"`
	Landing   string     `json:"landing"`
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	resp, err := s.Upstream.Login(ctx, upstream.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if resp.Token == "" {
		return nil, ErrNoToken
	}

	role := model.Role(strings.ToLower(strings.TrimSpace(resp.Role)))
	if role != model.Student && role != model.Instructor {
		return nil, ErrInvalidRole
	}

	claims, err := util.DecodeToken(resp.Token)
	if err != nil {
		return nil, err
	}

	sess := &model.Session{
		ID:     uuid.NewString(),
		Token:  resp.Token,
		Role:   role,
		Email:  email,
		UserID: claims.Subject,
	}

	var ttl time.Duration
	if !claims.ExpiresAt.IsZero() {
		ttl = time.Until(claims.ExpiresAt)
	}
	if err := s.Sessions.Init(ctx, sess, ttl); err != nil {
		return nil, err
	}

	logger.Log.Info("session created",
		zap.String("sessionId", sess.ID),
		zap.String("role", string(role)))

	return &LoginResult{
		SessionID: sess.ID,
		Role:      role,
		Landing:   landingFor(role),
	}, nil
}

func landingFor(role model.Role) string {
	if role == model.Instructor {
		return "/instructor-dashboard"
	}
	return "/student-dashboard"
}

// Logout tears the session down. A missing session is not an error; the
// outcome the caller wants is already true.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.Sessions.Clear(ctx, sessionID)
}

// Register forwards the signup body untouched; the backend owns the user
// records and their validation.
func (s *AuthService) Register(ctx context.Context, body json.RawMessage) (json.RawMessage, error) {
	return s.Upstream.Register(ctx, body)
}
