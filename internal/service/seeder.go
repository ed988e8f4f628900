package service

import (
	"context"
	"fmt"
	"time"

	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Seeder fills an empty store with a small set of demo records.
type Seeder struct {
	db              *gorm.DB
	log             *logrus.Logger
	departmentRepo  repository.DepartmentRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	listCache       ListCache
	now             func() time.Time
}

func NewSeeder(
	db *gorm.DB,
	log *logrus.Logger,
	departmentRepo repository.DepartmentRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	listCache ListCache,
) *Seeder {
	return &Seeder{
		db:              db,
		log:             log,
		departmentRepo:  departmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		listCache:       listCache,
		now:             time.Now,
	}
}

// Seed inserts the fixtures unless at least one department already exists.
// It reports whether anything was written. Cached lists are dropped after
// a successful seed.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	count, err := s.departmentRepo.Count(tx)
	if err != nil {
		return false, fmt.Errorf("count departments: %w", err)
	}
	if count > 0 {
		s.log.Info("Store already populated, skipping seed")
		return false, nil
	}

	cardiology := &entity.Department{Name: "Cardiology", Description: "Heart and cardiovascular system"}
	neurology := &entity.Department{Name: "Neurology", Description: "Brain and nervous system"}
	orthopedics := &entity.Department{Name: "Orthopedics", Description: "Bones and musculoskeletal system"}
	for _, department := range []*entity.Department{cardiology, neurology, orthopedics} {
		if err := s.departmentRepo.Create(tx, department); err != nil {
			return false, fmt.Errorf("seed department %s: %w", department.Name, err)
		}
	}

	mitchell := &entity.Doctor{
		Name:           "Dr. Sarah Mitchell",
		Specialization: "Cardiologist",
		Email:          "sarah.mitchell@hospital.com",
		Phone:          "555-0101",
		DepartmentID:   &cardiology.ID,
	}
	wilson := &entity.Doctor{
		Name:           "Dr. James Wilson",
		Specialization: "Neurologist",
		Email:          "james.wilson@hospital.com",
		Phone:          "555-0102",
		DepartmentID:   &neurology.ID,
	}
	chen := &entity.Doctor{
		Name:           "Dr. Emily Chen",
		Specialization: "Orthopedic Surgeon",
		Email:          "emily.chen@hospital.com",
		Phone:          "555-0103",
		DepartmentID:   &orthopedics.ID,
	}
	for _, doctor := range []*entity.Doctor{mitchell, wilson, chen} {
		if err := s.doctorRepo.Create(tx, doctor); err != nil {
			return false, fmt.Errorf("seed doctor %s: %w", doctor.Name, err)
		}
	}

	johnDOB := time.Date(1985, 3, 15, 0, 0, 0, 0, time.UTC)
	janeDOB := time.Date(1990, 7, 22, 0, 0, 0, 0, time.UTC)
	john := &entity.Patient{
		Name:        "John Doe",
		Email:       "john.doe@email.com",
		Phone:       "555-1001",
		DateOfBirth: &johnDOB,
		Address:     "123 Main St",
		BloodGroup:  "O+",
	}
	jane := &entity.Patient{
		Name:        "Jane Smith",
		Email:       "jane.smith@email.com",
		Phone:       "555-1002",
		DateOfBirth: &janeDOB,
		Address:     "456 Oak Ave",
		BloodGroup:  "A+",
	}
	for _, patient := range []*entity.Patient{john, jane} {
		if err := s.patientRepo.Create(tx, patient); err != nil {
			return false, fmt.Errorf("seed patient %s: %w", patient.Name, err)
		}
	}

	now := s.now().UTC().Truncate(time.Second)
	checkup := "Annual checkup"
	followUp := "Follow-up consultation"
	appointments := []*entity.Appointment{
		{
			PatientID:       john.ID,
			DoctorID:        mitchell.ID,
			DepartmentID:    &cardiology.ID,
			AppointmentDate: now.AddDate(0, 0, 1),
			Status:          entity.AppointmentStatusScheduled,
			Notes:           &checkup,
		},
		{
			PatientID:       jane.ID,
			DoctorID:        wilson.ID,
			DepartmentID:    &neurology.ID,
			AppointmentDate: now.AddDate(0, 0, 2),
			Status:          entity.AppointmentStatusScheduled,
			Notes:           &followUp,
		},
	}
	for _, appointment := range appointments {
		if err := s.appointmentRepo.Create(tx, appointment); err != nil {
			return false, fmt.Errorf("seed appointment: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}

	if err := s.listCache.Invalidate(ctx); err != nil {
		s.log.Warnf("Failed to invalidate list cache after seed: %+v", err)
	}

	s.log.Info("Seeded 3 departments, 3 doctors, 2 patients, 2 appointments")
	return true, nil
}
