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

type DepartmentUsecase interface {
	FindAll(ctx context.Context) (*dto.DepartmentListResponse, error)
	FindByID(ctx context.Context, id int64) (*dto.DepartmentResponse, error)
	Create(ctx context.Context, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error)
	Update(ctx context.Context, id int64, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type departmentUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	departmentRepo repository.DepartmentRepository
	listCache      service.ListCache
}

func NewDepartmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	departmentRepo repository.DepartmentRepository,
	listCache service.ListCache,
) DepartmentUsecase {
	return &departmentUsecase{
		db:             db,
		log:            log,
		departmentRepo: departmentRepo,
		listCache:      listCache,
	}
}

func (u *departmentUsecase) FindAll(ctx context.Context) (*dto.DepartmentListResponse, error) {
	return cachedList(ctx, u.listCache, u.log, service.ListKeyDepartments, func() (*dto.DepartmentListResponse, error) {
		departments, err := u.departmentRepo.FindAll(u.db.WithContext(ctx))
		if err != nil {
			u.log.Warnf("Failed to find all departments: %+v", err)
			return nil, err
		}

		responses := converter.DepartmentsToResponses(departments)
		return &dto.DepartmentListResponse{
			Departments: responses,
			Total:       len(responses),
		}, nil
	})
}

func (u *departmentUsecase) FindByID(ctx context.Context, id int64) (*dto.DepartmentResponse, error) {
	department, err := u.departmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find department: %+v", err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	return converter.DepartmentToResponse(department), nil
}

func (u *departmentUsecase) Create(ctx context.Context, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.departmentRepo.ExistsByName(tx, req.Name)
	if err != nil {
		u.log.Warnf("Failed to check department name: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrDepartmentNameExists
	}

	department := &entity.Department{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := u.departmentRepo.Create(tx, department); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDepartmentNameExists
		}
		u.log.Warnf("Failed to create department: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	invalidateLists(ctx, u.listCache, u.log)

	return converter.DepartmentToResponse(department), nil
}

func (u *departmentUsecase) Update(ctx context.Context, id int64, req *dto.DepartmentRequest) (*dto.DepartmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	department, err := u.departmentRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find department: %+v", err)
		return nil, err
	}
	if department == nil {
		return nil, ErrDepartmentNotFound
	}

	if req.Name != department.Name {
		other, err := u.departmentRepo.FindByName(tx, req.Name)
		if err != nil {
			u.log.Warnf("Failed to check department name: %+v", err)
			return nil, err
		}
		if other != nil && other.ID != department.ID {
			return nil, ErrDepartmentNameExists
		}
	}

	department.Name = req.Name
	department.Description = req.Description

	if err := u.departmentRepo.Update(tx, department); err != nil {
		if isDuplicateKeyError(err) {
			return nil, ErrDepartmentNameExists
		}
		u.log.Warnf("Failed to update department: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	invalidateLists(ctx, u.listCache, u.log)

	return converter.DepartmentToResponse(department), nil
}

func (u *departmentUsecase) Delete(ctx context.Context, id int64) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	exists, err := u.departmentRepo.ExistsByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find department: %+v", err)
		return err
	}
	if !exists {
		return ErrDepartmentNotFound
	}

	if _, err := u.departmentRepo.Delete(tx, id); err != nil {
		u.log.Warnf("Failed delete department: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	invalidateLists(ctx, u.listCache, u.log)

	return nil
}
