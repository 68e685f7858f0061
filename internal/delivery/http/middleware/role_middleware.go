package middleware

import (
	"net/http"

	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/pkg/response"
)

// RequireRole checks that the authenticated caller has one of the allowed
// roles. Role comes from the context identity set by Authenticate.
func RequireRole(allowedRoles ...entity.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := GetIdentityFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "Not authenticated")
				return
			}

			allowed := false
			for _, role := range allowedRoles {
				if identity.Role == role {
					allowed = true
					break
				}
			}

			if !allowed {
				response.Forbidden(w, "You don't have permission to access this resource")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireDoctor is a convenience middleware for doctor-only endpoints
func RequireDoctor(next http.Handler) http.Handler {
	return RequireRole(entity.RoleDoctor)(next)
}

// RequirePatient is a convenience middleware for patient-only endpoints
func RequirePatient(next http.Handler) http.Handler {
	return RequireRole(entity.RolePatient)(next)
}
