package handler

import (
	"encoding/json"
	"net/http"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/delivery/http/middleware"
	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/response"
	"go-healthcare-records/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// Create books an appointment. A patient names the doctor, a doctor names
// the patient; the caller's own side comes from the session.
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.appointmentUsecase.Create(r.Context(), callerFrom(identity), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrCounterpartRequired, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", result)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	result, err := h.appointmentUsecase.GetByID(r.Context(), callerFrom(identity), id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You do not have access to this appointment")
		default:
			response.InternalServerError(w, "Failed to get appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", result)
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.appointmentUsecase.List(r.Context(), callerFrom(identity))
	if err != nil {
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", result)
}

// Update changes status or notes. Appointment's doctor only.
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	var req dto.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.appointmentUsecase.Update(r.Context(), callerFrom(identity), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Only the appointment's doctor can update it")
		default:
			response.InternalServerError(w, "Failed to update appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment updated successfully", result)
}

// Delete cancels and removes an appointment. Appointment's doctor only.
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	if err := h.appointmentUsecase.Delete(r.Context(), callerFrom(identity), id); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Only the appointment's doctor can delete it")
		default:
			response.InternalServerError(w, "Failed to delete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted successfully", nil)
}
