package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/service"
	"go-healthcare-records/pkg/jwt"
	"go-healthcare-records/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidCredentials is returned for unknown email and wrong
	// password alike; the message never reveals which one was wrong.
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrLicenseAlreadyExists = errors.New("license number already registered")
	// ErrProfileMissing means the 1:1 profile row for the user's role is
	// absent, which is a data-integrity fault.
	ErrProfileMissing    = errors.New("user profile not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
)

type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error)
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.AuthResponse, error)
	CreatePatientByDoctor(ctx context.Context, actorID uuid.UUID, req *dto.CreatePatientByDoctorRequest) (*dto.ProvisionedAccountResponse, error)
	CreateDoctorByDoctor(ctx context.Context, actorID uuid.UUID, req *dto.CreateDoctorByDoctorRequest) (*dto.ProvisionedAccountResponse, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error
	Logout(ctx context.Context, userID uuid.UUID, tokenID string) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.IdentityResponse, error)
}

type authUsecase struct {
	log            *logrus.Logger
	userRepo       repository.UserRepository
	doctorRepo     repository.DoctorRepository
	jwtService     *jwt.JWTService
	sessionService service.SessionService
	auditService   service.AuditService
}

func NewAuthUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	jwtService *jwt.JWTService,
	sessionService service.SessionService,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		log:            log,
		userRepo:       userRepo,
		doctorRepo:     doctorRepo,
		jwtService:     jwtService,
		sessionService: sessionService,
		auditService:   auditService,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !password.Verify(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	identity, err := identityFromUser(user)
	if err != nil {
		return nil, err
	}

	token, err := u.issueSession(ctx, identity)
	if err != nil {
		return nil, err
	}

	u.auditService.Record(ctx, &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), nil)

	return &dto.AuthResponse{User: *identity, Token: token}, nil
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         entity.RolePatient,
		Patient: &entity.Patient{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			DateOfBirth: dob,
			Phone:       req.Phone,
			Address:     req.Address,
			BloodGroup:  req.BloodGroup,
		},
	}

	if err := u.userRepo.CreateWithProfile(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create patient user: %+v", err)
		return nil, err
	}

	identity, err := identityFromUser(user)
	if err != nil {
		return nil, err
	}

	token, err := u.issueSession(ctx, identity)
	if err != nil {
		return nil, err
	}

	u.auditService.Record(ctx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), entity.JSON{"role": string(entity.RolePatient)})

	return &dto.AuthResponse{User: *identity, Token: token}, nil
}

func (u *authUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest) (*dto.AuthResponse, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	existingLicense, err := u.doctorRepo.FindByLicenseNumber(ctx, req.LicenseNumber)
	if err != nil {
		u.log.Warnf("Failed to check license number: %+v", err)
		return nil, err
	}
	if existingLicense != nil {
		return nil, ErrLicenseAlreadyExists
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         entity.RoleDoctor,
		Doctor: &entity.Doctor{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Specialization: req.Specialization,
			LicenseNumber:  req.LicenseNumber,
			Phone:          req.Phone,
			Department:     req.Department,
		},
	}

	if err := u.userRepo.CreateWithProfile(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "license") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create doctor user: %+v", err)
		return nil, err
	}

	identity, err := identityFromUser(user)
	if err != nil {
		return nil, err
	}

	token, err := u.issueSession(ctx, identity)
	if err != nil {
		return nil, err
	}

	u.auditService.Record(ctx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), entity.JSON{"role": string(entity.RoleDoctor)})

	return &dto.AuthResponse{User: *identity, Token: token}, nil
}

// CreatePatientByDoctor provisions a patient account with a generated
// password. The plaintext appears only in the returned response; the
// system stores its hash and nothing else.
func (u *authUsecase) CreatePatientByDoctor(ctx context.Context, actorID uuid.UUID, req *dto.CreatePatientByDoctorRequest) (*dto.ProvisionedAccountResponse, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	generated, err := password.GenerateSecure()
	if err != nil {
		u.log.Warnf("Failed to generate password: %+v", err)
		return nil, err
	}

	hashed, err := password.Hash(generated)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         entity.RolePatient,
		Patient: &entity.Patient{
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			DateOfBirth: dob,
			Phone:       req.Phone,
			Address:     req.Address,
			BloodGroup:  req.BloodGroup,
		},
	}

	if err := u.userRepo.CreateWithProfile(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to provision patient: %+v", err)
		return nil, err
	}

	identity, err := identityFromUser(user)
	if err != nil {
		return nil, err
	}

	u.auditService.Record(ctx, &actorID, entity.AuditActionPatientProvision, "user", user.ID.String(), nil)

	return &dto.ProvisionedAccountResponse{User: *identity, Password: generated}, nil
}

func (u *authUsecase) CreateDoctorByDoctor(ctx context.Context, actorID uuid.UUID, req *dto.CreateDoctorByDoctorRequest) (*dto.ProvisionedAccountResponse, error) {
	existing, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to check email: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	existingLicense, err := u.doctorRepo.FindByLicenseNumber(ctx, req.LicenseNumber)
	if err != nil {
		u.log.Warnf("Failed to check license number: %+v", err)
		return nil, err
	}
	if existingLicense != nil {
		return nil, ErrLicenseAlreadyExists
	}

	generated, err := password.GenerateSecure()
	if err != nil {
		u.log.Warnf("Failed to generate password: %+v", err)
		return nil, err
	}

	hashed, err := password.Hash(generated)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		Email:        req.Email,
		PasswordHash: hashed,
		Role:         entity.RoleDoctor,
		Doctor: &entity.Doctor{
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Specialization: req.Specialization,
			LicenseNumber:  req.LicenseNumber,
			Phone:          req.Phone,
			Department:     req.Department,
		},
	}

	if err := u.userRepo.CreateWithProfile(ctx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "license") {
			return nil, ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to provision doctor: %+v", err)
		return nil, err
	}

	identity, err := identityFromUser(user)
	if err != nil {
		return nil, err
	}

	u.auditService.Record(ctx, &actorID, entity.AuditActionDoctorProvision, "user", user.ID.String(), nil)

	return &dto.ProvisionedAccountResponse{User: *identity, Password: generated}, nil
}

// ChangePassword rehashes on success and revokes every session for the
// user, so stolen tokens die with the old password.
func (u *authUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, req *dto.ChangePasswordRequest) error {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user: %+v", err)
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !password.Verify(req.CurrentPassword, user.PasswordHash) {
		return ErrInvalidCredentials
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	if err := u.userRepo.UpdatePasswordHash(ctx, userID, hashed); err != nil {
		u.log.Warnf("Failed to update password: %+v", err)
		return err
	}

	if err := u.sessionService.RevokeAll(ctx, userID); err != nil {
		u.log.Warnf("Failed to revoke sessions after password change: %+v", err)
	}

	u.auditService.Record(ctx, &userID, entity.AuditActionPasswordChange, "user", userID.String(), nil)

	return nil
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if err := u.sessionService.Revoke(ctx, userID, tokenID); err != nil {
		return err
	}
	u.auditService.Record(ctx, &userID, entity.AuditActionUserLogout, "user", userID.String(), nil)
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.IdentityResponse, error) {
	user, err := u.userRepo.FindByID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return identityFromUser(user)
}

func (u *authUsecase) issueSession(ctx context.Context, identity *dto.IdentityResponse) (string, error) {
	token, tokenID, err := u.jwtService.GenerateSessionToken(
		identity.ID, identity.Email, identity.Role, identity.ProfileID, identity.FirstName, identity.LastName,
	)
	if err != nil {
		u.log.Warnf("Failed to generate session token: %+v", err)
		return "", err
	}

	if err := u.sessionService.Register(ctx, identity.ID, tokenID, u.jwtService.GetSessionExpiry()); err != nil {
		return "", err
	}

	return token, nil
}

func identityFromUser(user *entity.User) (*dto.IdentityResponse, error) {
	profileID, firstName, lastName, ok := user.Profile()
	if !ok {
		return nil, ErrProfileMissing
	}
	return &dto.IdentityResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		ProfileID: profileID,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique
// constraint violation containing the specified constraint name. Backstop
// for the races the pre-checks cannot close.
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
