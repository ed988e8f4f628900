package repository

import (
	"hospital-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type DepartmentRepository interface {
	Create(db *gorm.DB, department *entity.Department) error
	FindAll(db *gorm.DB) ([]entity.Department, error)
	FindByID(db *gorm.DB, id int64) (*entity.Department, error)
	FindByName(db *gorm.DB, name string) (*entity.Department, error)
	ExistsByID(db *gorm.DB, id int64) (bool, error)
	ExistsByName(db *gorm.DB, name string) (bool, error)
	Count(db *gorm.DB) (int64, error)
	Update(db *gorm.DB, department *entity.Department) error
	// Delete removes the department together with its doctors, their
	// appointments and the department's own appointments.
	Delete(db *gorm.DB, id int64) (int64, error)
}
