package repository

import (
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Omit(clause.Associations).Create(patient).Error
}

func (r *patientRepository) FindAll(db *gorm.DB) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Order("id ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) FindByID(db *gorm.DB, id int64) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindByName(db *gorm.DB, name string) ([]entity.Patient, error) {
	var patients []entity.Patient
	err := db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, containsPattern(name)).Order("id ASC").Find(&patients).Error
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *patientRepository) ExistsByID(db *gorm.DB, id int64) (bool, error) {
	var count int64
	err := db.Model(&entity.Patient{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Omit(clause.Associations).Save(patient).Error
}

func (r *patientRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	if err := db.Where("patient_id = ?", id).Delete(&entity.Appointment{}).Error; err != nil {
		return 0, err
	}

	affected := db.Where("id = ?", id).Delete(&entity.Patient{})
	return affected.RowsAffected, affected.Error
}
