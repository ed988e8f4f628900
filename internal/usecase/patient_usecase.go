package usecase

import (
	"context"
	"time"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientUsecase interface {
	// FindAll lists patients, narrowed to a case-insensitive name match when name is set.
	FindAll(ctx context.Context, name string) (*dto.PatientListResponse, error)
	FindByID(ctx context.Context, id int64) (*dto.PatientResponse, error)
	Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	Update(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error)
	Delete(ctx context.Context, id int64) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	listCache   service.ListCache
}

func NewPatientUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	listCache service.ListCache,
) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		listCache:   listCache,
	}
}

func (u *patientUsecase) FindAll(ctx context.Context, name string) (*dto.PatientListResponse, error) {
	if name == "" {
		return cachedList(ctx, u.listCache, u.log, service.ListKeyPatients, func() (*dto.PatientListResponse, error) {
			return u.list(ctx, name)
		})
	}
	return u.list(ctx, name)
}

func (u *patientUsecase) list(ctx context.Context, name string) (*dto.PatientListResponse, error) {
	db := u.db.WithContext(ctx)

	var patients []entity.Patient
	var err error
	if name != "" {
		patients, err = u.patientRepo.FindByName(db, name)
	} else {
		patients, err = u.patientRepo.FindAll(db)
	}
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}

	responses := converter.PatientsToResponses(patients)
	return &dto.PatientListResponse{
		Patients: responses,
		Total:    len(responses),
	}, nil
}

func (u *patientUsecase) FindByID(ctx context.Context, id int64) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	dateOfBirth, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	patient := &entity.Patient{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		DateOfBirth: dateOfBirth,
		Address:     req.Address,
		BloodGroup:  req.BloodGroup,
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}
	invalidateLists(ctx, u.listCache, u.log)

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Update(ctx context.Context, id int64, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	dateOfBirth, err := parseDateOfBirth(req.DateOfBirth)
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	patient.Name = req.Name
	patient.Email = req.Email
	patient.Phone = req.Phone
	patient.DateOfBirth = dateOfBirth
	patient.Address = req.Address
	patient.BloodGroup = req.BloodGroup

	if err := u.patientRepo.Update(tx, patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	invalidateLists(ctx, u.listCache, u.log)

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.patientRepo.ExistsByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if !exists {
		return ErrPatientNotFound
	}

	if _, err := u.patientRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed delete patient: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	invalidateLists(ctx, u.listCache, u.log)

	return nil
}

func parseDateOfBirth(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	dateOfBirth, err := converter.ParseDate(value)
	if err != nil {
		return nil, ErrInvalidDate
	}
	return &dateOfBirth, nil
}
