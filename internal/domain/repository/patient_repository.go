package repository

import (
	"hospital-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	FindByID(db *gorm.DB, id int64) (*entity.Patient, error)
	FindByName(db *gorm.DB, name string) ([]entity.Patient, error)
	ExistsByID(db *gorm.DB, id int64) (bool, error)
	Update(db *gorm.DB, patient *entity.Patient) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
