package repository

import (
	"hospital-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	FindByID(db *gorm.DB, id int64) (*entity.Doctor, error)
	FindByDepartmentID(db *gorm.DB, departmentID int64) ([]entity.Doctor, error)
	FindBySpecialization(db *gorm.DB, specialization string) ([]entity.Doctor, error)
	ExistsByID(db *gorm.DB, id int64) (bool, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
