package handler

import (
	"net/http"

	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/response"
)

type DirectoryHandler struct {
	directoryUsecase usecase.DirectoryUsecase
}

func NewDirectoryHandler(directoryUsecase usecase.DirectoryUsecase) *DirectoryHandler {
	return &DirectoryHandler{directoryUsecase: directoryUsecase}
}

// ListPatients returns the patient directory with activity counts. The
// route is doctor-only.
func (h *DirectoryHandler) ListPatients(w http.ResponseWriter, r *http.Request) {
	result, err := h.directoryUsecase.ListPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", result)
}

// ListDoctors returns the doctor directory, open to any authenticated
// user so patients can pick a doctor when booking.
func (h *DirectoryHandler) ListDoctors(w http.ResponseWriter, r *http.Request) {
	result, err := h.directoryUsecase.ListDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", result)
}
