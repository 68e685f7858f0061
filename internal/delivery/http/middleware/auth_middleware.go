package middleware

import (
	"context"
	"net/http"
	"strings"

	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/service"
	"go-healthcare-records/pkg/jwt"
	"go-healthcare-records/pkg/response"

	"github.com/google/uuid"
)

type contextKey string

const identityKey contextKey = "identity"

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "token"

// Identity is the verified caller identity placed in the request context.
type Identity struct {
	UserID    uuid.UUID
	Email     string
	Role      entity.Role
	ProfileID uuid.UUID
	FirstName string
	LastName  string
	TokenID   string
}

type AuthMiddleware struct {
	jwtService     *jwt.JWTService
	sessionService service.SessionService
}

func NewAuthMiddleware(jwtService *jwt.JWTService, sessionService service.SessionService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:     jwtService,
		sessionService: sessionService,
	}
}

// Authenticate resolves the session token from the "token" cookie (or an
// Authorization: Bearer header), validates it and checks the server-side
// session registry. A missing or expired token is an expected condition
// and yields a plain 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString := extractToken(r)
		if tokenString == "" {
			response.Unauthorized(w, "Not authenticated")
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			response.Unauthorized(w, "Invalid or expired session")
			return
		}

		active, err := m.sessionService.IsActive(r.Context(), claims.UserID, claims.TokenID)
		if err != nil {
			response.InternalServerError(w, "Failed to validate session")
			return
		}
		if !active {
			response.Unauthorized(w, "Session has been revoked")
			return
		}

		identity := &Identity{
			UserID:    claims.UserID,
			Email:     claims.Email,
			Role:      entity.Role(claims.Role),
			ProfileID: claims.ProfileID,
			FirstName: claims.FirstName,
			LastName:  claims.LastName,
			TokenID:   claims.TokenID,
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

func extractToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}

// WithIdentity returns a context carrying the caller identity.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentityFromContext extracts the caller identity from context.
func GetIdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityKey).(*Identity)
	return identity, ok
}
