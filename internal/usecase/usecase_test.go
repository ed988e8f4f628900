package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"hospital-management-api/internal/infrastructure/database/dbtest"
	"hospital-management-api/internal/repository"
	"hospital-management-api/internal/service"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	db          *gorm.DB
	departments DepartmentUsecase
	doctors     DoctorUsecase
	patients    PatientUsecase
	appointment AppointmentUsecase
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	return newCachedFixture(t, service.NewNoopListCache())
}

func newCachedFixture(t *testing.T, cache service.ListCache) *fixture {
	t.Helper()

	db := dbtest.Open(t)
	log := quietLogger()

	departmentRepo := repository.NewDepartmentRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	return &fixture{
		db:          db,
		departments: NewDepartmentUsecase(db, log, departmentRepo, cache),
		doctors:     NewDoctorUsecase(db, log, doctorRepo, departmentRepo, cache),
		patients:    NewPatientUsecase(db, log, patientRepo, cache),
		appointment: NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, departmentRepo, cache),
	}
}

// newSeededFixture loads the demo data: departments 1-3, doctors 1-3 (one
// per department), patients 1-2 and appointments 1-2.
func newSeededFixture(t *testing.T) *fixture {
	t.Helper()

	f := newFixture(t)
	seed(t, f.db)
	return f
}

func seed(t *testing.T, db *gorm.DB) {
	t.Helper()

	seeder := service.NewSeeder(
		db,
		quietLogger(),
		repository.NewDepartmentRepository(),
		repository.NewDoctorRepository(),
		repository.NewPatientRepository(),
		repository.NewAppointmentRepository(),
		service.NewNoopListCache(),
	)
	seeded, err := seeder.Seed(context.Background())
	require.NoError(t, err)
	require.True(t, seeded)
}

func int64Ptr(v int64) *int64 { return &v }

func stringPtr(v string) *string { return &v }

func timePtr(v time.Time) *time.Time { return &v }
