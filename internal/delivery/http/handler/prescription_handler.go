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

type PrescriptionHandler struct {
	prescriptionUsecase usecase.PrescriptionUsecase
	validator           *validator.CustomValidator
}

func NewPrescriptionHandler(prescriptionUsecase usecase.PrescriptionUsecase, validator *validator.CustomValidator) *PrescriptionHandler {
	return &PrescriptionHandler{
		prescriptionUsecase: prescriptionUsecase,
		validator:           validator,
	}
}

// Create issues a prescription for a patient. Doctor only.
func (h *PrescriptionHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.prescriptionUsecase.Create(r.Context(), callerFrom(identity), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You cannot link another doctor's record")
		case usecase.ErrRecordMismatch:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create prescription")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Prescription created successfully", result)
}

func (h *PrescriptionHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	result, err := h.prescriptionUsecase.GetByID(r.Context(), callerFrom(identity), id)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You do not have access to this prescription")
		default:
			response.InternalServerError(w, "Failed to get prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription retrieved successfully", result)
}

func (h *PrescriptionHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.prescriptionUsecase.List(r.Context(), callerFrom(identity))
	if err != nil {
		response.InternalServerError(w, "Failed to list prescriptions")
		return
	}

	response.Success(w, http.StatusOK, "Prescriptions retrieved successfully", result)
}

// Update edits a prescription. Authoring doctor only.
func (h *PrescriptionHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	var req dto.UpdatePrescriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.prescriptionUsecase.Update(r.Context(), callerFrom(identity), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Only the authoring doctor can update this prescription")
		default:
			response.InternalServerError(w, "Failed to update prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription updated successfully", result)
}

// Delete removes a prescription. Authoring doctor only.
func (h *PrescriptionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid prescription ID", nil)
		return
	}

	if err := h.prescriptionUsecase.Delete(r.Context(), callerFrom(identity), id); err != nil {
		switch err {
		case usecase.ErrPrescriptionNotFound:
			response.NotFound(w, "Prescription not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Only the authoring doctor can delete this prescription")
		default:
			response.InternalServerError(w, "Failed to delete prescription")
		}
		return
	}

	response.Success(w, http.StatusOK, "Prescription deleted successfully", nil)
}
