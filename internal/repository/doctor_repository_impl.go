package repository

import (
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit(clause.Associations).Create(doctor).Error
}

func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("Department").Order("id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) FindByID(db *gorm.DB, id int64) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("Department").Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindByDepartmentID(db *gorm.DB, departmentID int64) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("Department").Where("department_id = ?", departmentID).Order("id ASC").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

// FindBySpecialization matches a case-insensitive substring of the specialization.
func (r *doctorRepository) FindBySpecialization(db *gorm.DB, specialization string) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("Department").
		Where(`LOWER(specialization) LIKE ? ESCAPE '\'`, containsPattern(specialization)).
		Order("id ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) ExistsByID(db *gorm.DB, id int64) (bool, error) {
	var count int64
	err := db.Model(&entity.Doctor{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit(clause.Associations).Save(doctor).Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id int64) (int64, error) {
	if err := db.Where("doctor_id = ?", id).Delete(&entity.Appointment{}).Error; err != nil {
		return 0, err
	}

	affected := db.Where("id = ?", id).Delete(&entity.Doctor{})
	return affected.RowsAffected, affected.Error
}
