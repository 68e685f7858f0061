package jwt

import (
	"testing"
	"time"

	"go-healthcare-records/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestService(secret string, expiry time.Duration) *JWTService {
	return NewJWTService(config.SessionConfig{Secret: secret, Expiry: expiry})
}

func TestGenerateAndValidateSessionToken(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)
	userID := uuid.New()
	profileID := uuid.New()

	token, tokenID, err := svc.GenerateSessionToken(userID, "doc@example.com", RoleDoctor, profileID, "Alice", "Smith")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NotEmpty(t, tokenID)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "doc@example.com", claims.Email)
	assert.Equal(t, RoleDoctor, claims.Role)
	assert.Equal(t, profileID, claims.ProfileID)
	assert.Equal(t, "Alice", claims.FirstName)
	assert.Equal(t, "Smith", claims.LastName)
	assert.Equal(t, tokenID, claims.TokenID)
}

func TestGenerateSessionToken_UniqueTokenIDs(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)
	userID := uuid.New()

	_, first, err := svc.GenerateSessionToken(userID, "a@example.com", RolePatient, uuid.New(), "A", "B")
	assert.NoError(t, err)
	_, second, err := svc.GenerateSessionToken(userID, "a@example.com", RolePatient, uuid.New(), "A", "B")
	assert.NoError(t, err)

	// Each login gets its own session key.
	assert.NotEqual(t, first, second)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)
	other := newTestService("different-secret", time.Hour)

	token, _, err := svc.GenerateSessionToken(uuid.New(), "a@example.com", RolePatient, uuid.New(), "A", "B")
	assert.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestService("test-secret", -time.Minute)

	token, _, err := svc.GenerateSessionToken(uuid.New(), "a@example.com", RolePatient, uuid.New(), "A", "B")
	assert.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestService("test-secret", time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
	_, err = svc.ValidateToken("")
	assert.Error(t, err)
}
