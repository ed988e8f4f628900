package repository

import (
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type departmentRepository struct{}

func NewDepartmentRepository() domainRepo.DepartmentRepository {
	return &departmentRepository{}
}

func (r *departmentRepository) Create(db *gorm.DB, department *entity.Department) error {
	return db.Omit(clause.Associations).Create(department).Error
}

func (r *departmentRepository) FindAll(db *gorm.DB) ([]entity.Department, error) {
	var departments []entity.Department
	err := db.Order("id ASC").Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Department, error) {
	var department entity.Department
	err := db.Where("id = ?", id).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) FindByName(db *gorm.DB, name string) (*entity.Department, error) {
	var department entity.Department
	err := db.Where("name = ?", name).First(&department).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &department, nil
}

func (r *departmentRepository) ExistsByID(db *gorm.DB, id int64) (bool, error) {
	var count int64
	err := db.Model(&entity.Department{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *departmentRepository) ExistsByName(db *gorm.DB, name string) (bool, error) {
	var count int64
	err := db.Model(&entity.Department{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *departmentRepository) Count(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&entity.Department{}).Count(&count).Error
	return count, err
}

func (r *departmentRepository) Update(db *gorm.DB, department *entity.Department) error {
	return db.Omit(clause.Associations).Save(department).Error
}

func (r *departmentRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	var doctorIDs []int64
	if err := db.Model(&entity.Doctor{}).Where("department_id = ?", id).Pluck("id", &doctorIDs).Error; err != nil {
		return 0, err
	}

	appointments := db.Where("department_id = ?", id)
	if len(doctorIDs) > 0 {
		appointments = db.Where("department_id = ? OR doctor_id IN ?", id, doctorIDs)
	}
	if err := appointments.Delete(&entity.Appointment{}).Error; err != nil {
		return 0, err
	}

	if err := db.Where("department_id = ?", id).Delete(&entity.Doctor{}).Error; err != nil {
		return 0, err
	}

	affected := db.Where("id = ?", id).Delete(&entity.Department{})
	return affected.RowsAffected, affected.Error
}
