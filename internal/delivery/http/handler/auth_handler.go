package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/delivery/http/middleware"
	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/response"
	"go-healthcare-records/pkg/validator"
)

type AuthHandler struct {
	authUsecase  usecase.AuthUsecase
	validator    *validator.CustomValidator
	cookieMaxAge time.Duration
	cookieSecure bool
}

// NewAuthHandler builds the auth handler. cookieSecure should be true in
// production so the session cookie is HTTPS-only.
func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, cookieMaxAge time.Duration, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authUsecase:  authUsecase,
		validator:    validator,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

// setSessionCookie installs the session token as an HTTP-only cookie. The
// token is also returned in the response body for non-browser clients.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// RegisterPatient handles patient self-registration and logs the new
// account in immediately.
func (h *AuthHandler) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.RegisterPatient(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already registered")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to register patient")
		}
		return
	}

	h.setSessionCookie(w, result.Token)
	response.Success(w, http.StatusCreated, "Patient registered successfully", result)
}

// RegisterDoctor handles doctor self-registration.
func (h *AuthHandler) RegisterDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.RegisterDoctor(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already registered")
		case usecase.ErrLicenseAlreadyExists:
			response.Conflict(w, "License number already registered")
		default:
			response.InternalServerError(w, "Failed to register doctor")
		}
		return
	}

	h.setSessionCookie(w, result.Token)
	response.Success(w, http.StatusCreated, "Doctor registered successfully", result)
}

// Login authenticates with email and password and starts a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Error(w, http.StatusUnauthorized, "Invalid email or password", nil)
		case usecase.ErrProfileMissing:
			response.InternalServerError(w, "Account profile is missing")
		default:
			response.InternalServerError(w, "Failed to login")
		}
		return
	}

	h.setSessionCookie(w, result.Token)
	response.Success(w, http.StatusOK, "Login successful", result)
}

// Logout revokes the current session and clears the cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), identity.UserID, identity.TokenID); err != nil {
		response.InternalServerError(w, "Failed to logout")
		return
	}

	h.clearSessionCookie(w)
	response.Success(w, http.StatusOK, "Logout successful", nil)
}

// GetCurrentUser returns the authenticated user's identity.
func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	user, err := h.authUsecase.GetCurrentUser(r.Context(), identity.UserID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrProfileMissing:
			response.InternalServerError(w, "Account profile is missing")
		default:
			response.InternalServerError(w, "Failed to get user info")
		}
		return
	}

	response.Success(w, http.StatusOK, "User retrieved successfully", user)
}

// ChangePassword verifies the current password, stores the new hash and
// revokes every session for the user. The client must log in again.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	if err := h.authUsecase.ChangePassword(r.Context(), identity.UserID, &req); err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Error(w, http.StatusUnauthorized, "Current password is incorrect", nil)
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		default:
			response.InternalServerError(w, "Failed to change password")
		}
		return
	}

	h.clearSessionCookie(w)
	response.Success(w, http.StatusOK, "Password changed successfully", nil)
}

// CreatePatient provisions a patient account with a generated password.
// Doctor only.
func (h *AuthHandler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePatientByDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.CreatePatientByDoctor(r.Context(), identity.UserID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already registered")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient account created", result)
}

// CreateDoctor provisions a doctor account with a generated password.
// Doctor only.
func (h *AuthHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateDoctorByDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.CreateDoctorByDoctor(r.Context(), identity.UserID, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.Conflict(w, "Email already registered")
		case usecase.ErrLicenseAlreadyExists:
			response.Conflict(w, "License number already registered")
		default:
			response.InternalServerError(w, "Failed to create doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor account created", result)
}
