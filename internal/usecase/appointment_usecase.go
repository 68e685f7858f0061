package usecase

import (
	"context"
	"errors"
	"time"

	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound = errors.New("doctor not found")
	// ErrCounterpartRequired means the caller did not name the other side
	// of the appointment: a patient must name a doctor and vice versa.
	ErrCounterpartRequired = errors.New("missing appointment counterpart")
)

type AppointmentUsecase interface {
	Create(ctx context.Context, caller Caller, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetByID(ctx context.Context, caller Caller, id uuid.UUID) (*dto.AppointmentResponse, error)
	List(ctx context.Context, caller Caller) (*dto.AppointmentListResponse, error)
	Update(ctx context.Context, caller Caller, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	Delete(ctx context.Context, caller Caller, id uuid.UUID) error
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
	}
}

// Create books an appointment. The caller's own side is always taken from
// the session; only the counterpart comes from the payload.
func (u *appointmentUsecase) Create(ctx context.Context, caller Caller, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	var patientID, doctorID uuid.UUID
	if caller.IsDoctor() {
		doctorID = caller.ProfileID
		if req.PatientID == nil {
			return nil, ErrCounterpartRequired
		}
		patientID, err = uuid.Parse(*req.PatientID)
		if err != nil {
			return nil, ErrPatientNotFound
		}
		patient, err := u.patientRepo.FindByID(ctx, patientID)
		if err != nil {
			u.log.Warnf("Failed to find patient: %+v", err)
			return nil, err
		}
		if patient == nil {
			return nil, ErrPatientNotFound
		}
	} else {
		patientID = caller.ProfileID
		if req.DoctorID == nil {
			return nil, ErrCounterpartRequired
		}
		doctorID, err = uuid.Parse(*req.DoctorID)
		if err != nil {
			return nil, ErrDoctorNotFound
		}
		doctor, err := u.doctorRepo.FindByID(ctx, doctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor: %+v", err)
			return nil, err
		}
		if doctor == nil {
			return nil, ErrDoctorNotFound
		}
	}

	appointment := &entity.Appointment{
		PatientID:       patientID,
		DoctorID:        doctorID,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		Status:          entity.AppointmentStatusScheduled,
		Reason:          req.Reason,
		Notes:           req.Notes,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &caller.UserID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(),
		entity.JSON{"patient_id": patientID.String(), "doctor_id": doctorID.String()})

	created, err := u.appointmentRepo.FindByID(ctx, appointment.ID)
	if err != nil {
		u.log.Warnf("Failed to reload appointment: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(created), nil
}

func (u *appointmentUsecase) GetByID(ctx context.Context, caller Caller, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if err := guardRecordRead(caller, appointment.PatientID, appointment.DoctorID); err != nil {
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context, caller Caller) (*dto.AppointmentListResponse, error) {
	var (
		appointments []entity.Appointment
		err          error
	)
	if caller.IsDoctor() {
		appointments, err = u.appointmentRepo.FindByDoctorID(ctx, caller.ProfileID)
	} else {
		appointments, err = u.appointmentRepo.FindByPatientID(ctx, caller.ProfileID)
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	responses := converter.AppointmentsToResponses(appointments)
	return &dto.AppointmentListResponse{Appointments: responses, Total: len(responses)}, nil
}

// Update changes status or notes. Only the appointment's doctor may
// mutate it; patients cancel by asking their doctor.
func (u *appointmentUsecase) Update(ctx context.Context, caller Caller, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if appointment.DoctorID != caller.ProfileID {
		return nil, ErrForbidden
	}

	if req.Status != nil {
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := u.appointmentRepo.Update(ctx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &caller.UserID, entity.AuditActionAppointmentUpdate, "appointment", appointment.ID.String(), nil)

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, caller Caller, id uuid.UUID) error {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return err
	}
	if appointment == nil {
		return ErrAppointmentNotFound
	}

	if appointment.DoctorID != caller.ProfileID {
		return ErrForbidden
	}

	if err := u.appointmentRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}

	u.auditService.Record(ctx, &caller.UserID, entity.AuditActionAppointmentDelete, "appointment", id.String(), nil)

	return nil
}
