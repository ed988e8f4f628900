package repository

import (
	"time"

	"hospital-management-api/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByID(db *gorm.DB, id int64) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID int64) ([]entity.Appointment, error)
	FindByDateBetween(db *gorm.DB, start, end time.Time) ([]entity.Appointment, error)
	ExistsByID(db *gorm.DB, id int64) (bool, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
	Delete(db *gorm.DB, id int64) (int64, error)
}
