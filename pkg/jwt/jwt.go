package jwt

import (
	"errors"
	"time"

	"go-healthcare-records/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Role values carried in session claims. Mirrors entity role constants;
// duplicated here so the token package has no domain dependency.
const (
	RolePatient = "PATIENT"
	RoleDoctor  = "DOCTOR"
)

// Claims is the identity embedded in a session token. ProfileID is the
// patient or doctor profile id depending on Role, never the user id.
type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ProfileID uuid.UUID `json:"profile_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	TokenID   string    `json:"token_id"`
	jwt.RegisteredClaims
}

type JWTService struct {
	config config.SessionConfig
}

func NewJWTService(cfg config.SessionConfig) *JWTService {
	return &JWTService{config: cfg}
}

// GenerateSessionToken signs a session token for the given identity.
// Returns the signed token and its token id (used as the Redis session key).
func (s *JWTService) GenerateSessionToken(userID uuid.UUID, email, role string, profileID uuid.UUID, firstName, lastName string) (string, string, error) {
	tokenID := uuid.New().String()
	claims := Claims{
		UserID:    userID,
		Email:     email,
		Role:      role,
		ProfileID: profileID,
		FirstName: firstName,
		LastName:  lastName,
		TokenID:   tokenID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}

	return signedToken, tokenID, nil
}

// ValidateToken parses and verifies a session token. An expired or
// malformed token is an ordinary error return, never a panic; callers
// treat it as "no session".
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.config.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

func (s *JWTService) GetSessionExpiry() time.Duration {
	return s.config.Expiry
}
