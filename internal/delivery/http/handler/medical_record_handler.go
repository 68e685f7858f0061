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

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
	validator     *validator.CustomValidator
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase, validator *validator.CustomValidator) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		recordUsecase: recordUsecase,
		validator:     validator,
	}
}

// Create authors a medical record for a patient. Doctor only.
func (h *MedicalRecordHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}
	if req.TestResult != nil {
		if err := h.validator.Validate(req.TestResult); err != nil {
			response.ValidationError(w, h.validator.FormatValidationErrors(err))
			return
		}
	}

	result, err := h.recordUsecase.Create(r.Context(), callerFrom(identity), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentMismatch, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to create medical record")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Medical record created successfully", result)
}

// Get returns one record: the subject patient or the authoring doctor.
func (h *MedicalRecordHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	result, err := h.recordUsecase.GetByID(r.Context(), callerFrom(identity), id)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "You do not have access to this record")
		default:
			response.InternalServerError(w, "Failed to get medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record retrieved successfully", result)
}

// List returns the caller's records: own for a patient, authored for a
// doctor.
func (h *MedicalRecordHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	result, err := h.recordUsecase.List(r.Context(), callerFrom(identity))
	if err != nil {
		response.InternalServerError(w, "Failed to list medical records")
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", result)
}

// Update edits a record. Authoring doctor only.
func (h *MedicalRecordHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	var req dto.UpdateMedicalRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.recordUsecase.Update(r.Context(), callerFrom(identity), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Only the authoring doctor can update this record")
		default:
			response.InternalServerError(w, "Failed to update medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record updated successfully", result)
}

// Delete removes a record. Authoring doctor only.
func (h *MedicalRecordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	if err := h.recordUsecase.Delete(r.Context(), callerFrom(identity), id); err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Only the authoring doctor can delete this record")
		default:
			response.InternalServerError(w, "Failed to delete medical record")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical record deleted successfully", nil)
}

// AddTestResult attaches a test result to a record. Authoring doctor only.
func (h *MedicalRecordHandler) AddTestResult(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid record ID", nil)
		return
	}

	var req dto.AddTestResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.recordUsecase.AddTestResult(r.Context(), callerFrom(identity), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrRecordNotFound:
			response.NotFound(w, "Medical record not found")
		case usecase.ErrForbidden:
			response.Forbidden(w, "Only the authoring doctor can attach test results")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, err.Error(), nil)
		default:
			response.InternalServerError(w, "Failed to add test result")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Test result added successfully", result)
}
