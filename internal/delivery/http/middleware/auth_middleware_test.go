package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-healthcare-records/config"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/service"
	"go-healthcare-records/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubSessionService struct {
	active map[string]bool
}

var _ service.SessionService = (*stubSessionService)(nil)

func (s *stubSessionService) key(userID uuid.UUID, tokenID string) string {
	return userID.String() + ":" + tokenID
}

func (s *stubSessionService) Register(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	s.active[s.key(userID, tokenID)] = true
	return nil
}

func (s *stubSessionService) IsActive(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	return s.active[s.key(userID, tokenID)], nil
}

func (s *stubSessionService) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	delete(s.active, s.key(userID, tokenID))
	return nil
}

func (s *stubSessionService) RevokeAll(ctx context.Context, userID uuid.UUID) error {
	for k := range s.active {
		delete(s.active, k)
	}
	return nil
}

func setupAuthMiddleware() (*AuthMiddleware, *jwt.JWTService, *stubSessionService) {
	jwtService := jwt.NewJWTService(config.SessionConfig{Secret: "test-secret", Expiry: time.Hour})
	sessions := &stubSessionService{active: make(map[string]bool)}
	return NewAuthMiddleware(jwtService, sessions), jwtService, sessions
}

func identityEcho(t *testing.T, captured **Identity) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := GetIdentityFromContext(r.Context())
		assert.True(t, ok)
		*captured = identity
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_CookieToken(t *testing.T) {
	mw, jwtService, sessions := setupAuthMiddleware()
	userID := uuid.New()
	profileID := uuid.New()

	token, tokenID, err := jwtService.GenerateSessionToken(userID, "p@example.com", jwt.RolePatient, profileID, "Pat", "Ient")
	assert.NoError(t, err)
	sessions.Register(context.Background(), userID, tokenID, time.Hour)

	var identity *Identity
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()

	mw.Authenticate(identityEcho(t, &identity)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, identity.UserID)
	assert.Equal(t, entity.RolePatient, identity.Role)
	assert.Equal(t, profileID, identity.ProfileID)
	assert.Equal(t, tokenID, identity.TokenID)
}

func TestAuthenticate_BearerFallback(t *testing.T) {
	mw, jwtService, sessions := setupAuthMiddleware()
	userID := uuid.New()

	token, tokenID, err := jwtService.GenerateSessionToken(userID, "d@example.com", jwt.RoleDoctor, uuid.New(), "Doc", "Tor")
	assert.NoError(t, err)
	sessions.Register(context.Background(), userID, tokenID, time.Hour)

	var identity *Identity
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	mw.Authenticate(identityEcho(t, &identity)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, entity.RoleDoctor, identity.Role)
}

func TestAuthenticate_MissingToken(t *testing.T) {
	mw, _, _ := setupAuthMiddleware()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	called := false
	mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

func TestAuthenticate_RevokedSession(t *testing.T) {
	mw, jwtService, sessions := setupAuthMiddleware()
	userID := uuid.New()

	// Valid signature, but the session was revoked server-side.
	token, tokenID, err := jwtService.GenerateSessionToken(userID, "p@example.com", jwt.RolePatient, uuid.New(), "Pat", "Ient")
	assert.NoError(t, err)
	sessions.Register(context.Background(), userID, tokenID, time.Hour)
	sessions.Revoke(context.Background(), userID, tokenID)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
	rec := httptest.NewRecorder()

	mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	mw, _, _ := setupAuthMiddleware()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-jwt"})
	rec := httptest.NewRecorder()

	mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireDoctor(t *testing.T) {
	handler := RequireDoctor(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Doctor passes.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), &Identity{Role: entity.RoleDoctor}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Patient is forbidden.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithIdentity(req.Context(), &Identity{Role: entity.RolePatient}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// No identity at all is unauthorized.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
