package usecase

import (
	"context"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DoctorUsecase interface {
	FindAll(ctx context.Context, filter dto.DoctorFilter) (*dto.DoctorListResponse, error)
	FindByID(ctx context.Context, id int64) (*dto.DoctorResponse, error)
	Create(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	Update(ctx context.Context, id int64, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id int64) error
}

type doctorUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	doctorRepo     repository.DoctorRepository
	departmentRepo repository.DepartmentRepository
	listCache      service.ListCache
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	departmentRepo repository.DepartmentRepository,
	listCache service.ListCache,
) DoctorUsecase {
	return &doctorUsecase{
		db:             db,
		log:            log,
		doctorRepo:     doctorRepo,
		departmentRepo: departmentRepo,
		listCache:      listCache,
	}
}

func (u *doctorUsecase) FindAll(ctx context.Context, filter dto.DoctorFilter) (*dto.DoctorListResponse, error) {
	if filter.IsEmpty() {
		return cachedList(ctx, u.listCache, u.log, service.ListKeyDoctors, func() (*dto.DoctorListResponse, error) {
			return u.list(ctx, filter)
		})
	}
	return u.list(ctx, filter)
}

func (u *doctorUsecase) list(ctx context.Context, filter dto.DoctorFilter) (*dto.DoctorListResponse, error) {
	db := u.db.WithContext(ctx)

	var doctors []entity.Doctor
	var err error
	switch {
	case filter.DepartmentID != nil:
		doctors, err = u.doctorRepo.FindByDepartmentID(db, *filter.DepartmentID)
	case filter.Specialization != "":
		doctors, err = u.doctorRepo.FindBySpecialization(db, filter.Specialization)
	default:
		doctors, err = u.doctorRepo.FindAll(db)
	}
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}

	responses := converter.DoctorsToResponses(doctors)
	return &dto.DoctorListResponse{
		Doctors: responses,
		Total:   len(responses),
	}, nil
}

func (u *doctorUsecase) FindByID(ctx context.Context, id int64) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor := &entity.Doctor{
		Name:           req.Name,
		Specialization: req.Specialization,
		Email:          req.Email,
		Phone:          req.Phone,
	}

	// A department id, when given, must resolve
	if req.DepartmentID != nil {
		department, err := u.findDepartment(tx, *req.DepartmentID)
		if err != nil {
			return nil, err
		}
		doctor.DepartmentID = &department.ID
		doctor.Department = department
	}

	if err := u.doctorRepo.Create(tx, doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	invalidateLists(ctx, u.listCache, u.log)

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id int64, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	doctor, err := u.doctorRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	// Department only moves when a new one is named
	if req.DepartmentID != nil {
		department, err := u.findDepartment(tx, *req.DepartmentID)
		if err != nil {
			return nil, err
		}
		doctor.DepartmentID = &department.ID
		doctor.Department = department
	}

	doctor.Name = req.Name
	doctor.Specialization = req.Specialization
	doctor.Email = req.Email
	doctor.Phone = req.Phone

	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	invalidateLists(ctx, u.listCache, u.log)

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.doctorRepo.ExistsByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if !exists {
		return ErrDoctorNotFound
	}

	if _, err := u.doctorRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed delete doctor: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	invalidateLists(ctx, u.listCache, u.log)

	return nil
}

func (u *doctorUsecase) findDepartment(tx *gorm.DB, id int64) (*entity.Department, error) {
	department, err := u.departmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find department: %+v", err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}
	return department, nil
}
