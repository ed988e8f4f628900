package repository

import (
	"errors"
	"time"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Create(appointment).Error
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := withRelations(db).Order("appointment_date ASC, id ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id int64) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := withRelations(db).Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID int64) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := withRelations(db).Where("patient_id = ?", patientID).Order("appointment_date ASC, id ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID int64) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := withRelations(db).Where("doctor_id = ?", doctorID).Order("appointment_date ASC, id ASC").Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindByDateBetween returns appointments with start <= appointment_date <= end.
func (r *appointmentRepository) FindByDateBetween(db *gorm.DB, start, end time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := withRelations(db).
		Where("appointment_date >= ? AND appointment_date <= ?", start, end).
		Order("appointment_date ASC, id ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) ExistsByID(db *gorm.DB, id int64) (bool, error) {
	var count int64
	err := db.Model(&entity.Appointment{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit(clause.Associations).Save(appointment).Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Appointment{})
	return affected.RowsAffected, affected.Error
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Patient").Preload("Doctor").Preload("Department")
}
