package usecase

import (
	"context"
	"testing"

	"hospital-management-api/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoctorUsecase_CreateWithDepartment(t *testing.T) {
	f := newSeededFixture(t)
	ctx := context.Background()

	created, err := f.doctors.Create(ctx, &dto.DoctorRequest{
		Name:           "Dr. Amy Park",
		Specialization: "Cardiologist",
		DepartmentID:   int64Ptr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID)
	require.NotNil(t, created.DepartmentName)
	assert.Equal(t, "Cardiology", *created.DepartmentName)
}

func TestDoctorUsecase_CreateWithoutDepartment(t *testing.T) {
	f := newFixture(t)

	created, err := f.doctors.Create(context.Background(), &dto.DoctorRequest{
		Name:           "Dr. Solo",
		Specialization: "General Practice",
	})
	require.NoError(t, err)
	assert.Nil(t, created.DepartmentID)
	assert.Nil(t, created.DepartmentName)
}

func TestDoctorUsecase_CreateUnknownDepartment(t *testing.T) {
	f := newFixture(t)

	_, err := f.doctors.Create(context.Background(), &dto.DoctorRequest{
		Name:           "Dr. Lost",
		Specialization: "Surgery",
		DepartmentID:   int64Ptr(99),
	})
	assert.ErrorIs(t, err, ErrDepartmentNotFound)
}

func TestDoctorUsecase_Filters(t *testing.T) {
	f := newSeededFixture(t)
	ctx := context.Background()

	byDepartment, err := f.doctors.FindAll(ctx, dto.DoctorFilter{DepartmentID: int64Ptr(2)})
	require.NoError(t, err)
	require.Equal(t, 1, byDepartment.Total)
	assert.Equal(t, "Dr. James Wilson", byDepartment.Doctors[0].Name)

	bySpecialization, err := f.doctors.FindAll(ctx, dto.DoctorFilter{Specialization: "ORTHO"})
	require.NoError(t, err)
	require.Equal(t, 1, bySpecialization.Total)
	assert.Equal(t, "Dr. Emily Chen", bySpecialization.Doctors[0].Name)

	// Department wins over specialization
	both, err := f.doctors.FindAll(ctx, dto.DoctorFilter{DepartmentID: int64Ptr(1), Specialization: "Neuro"})
	require.NoError(t, err)
	require.Equal(t, 1, both.Total)
	assert.Equal(t, "Dr. Sarah Mitchell", both.Doctors[0].Name)

	none, err := f.doctors.FindAll(ctx, dto.DoctorFilter{DepartmentID: int64Ptr(99)})
	require.NoError(t, err)
	assert.Equal(t, 0, none.Total)
	assert.Empty(t, none.Doctors)
}

func TestDoctorUsecase_Update(t *testing.T) {
	f := newSeededFixture(t)
	ctx := context.Background()

	// Omitting the department keeps the current one
	updated, err := f.doctors.Update(ctx, 1, &dto.DoctorRequest{
		Name:           "Dr. Sarah Mitchell-Reed",
		Specialization: "Cardiologist",
		Email:          "sarah.reed@hospital.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Mitchell-Reed", updated.Name)
	assert.Equal(t, "", updated.Phone)
	require.NotNil(t, updated.DepartmentName)
	assert.Equal(t, "Cardiology", *updated.DepartmentName)

	moved, err := f.doctors.Update(ctx, 1, &dto.DoctorRequest{
		Name:           "Dr. Sarah Mitchell-Reed",
		Specialization: "Cardiologist",
		DepartmentID:   int64Ptr(3),
	})
	require.NoError(t, err)
	require.NotNil(t, moved.DepartmentName)
	assert.Equal(t, "Orthopedics", *moved.DepartmentName)

	found, err := f.doctors.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, moved, found)

	_, err = f.doctors.Update(ctx, 1, &dto.DoctorRequest{
		Name:           "Dr. Sarah Mitchell-Reed",
		Specialization: "Cardiologist",
		DepartmentID:   int64Ptr(99),
	})
	assert.ErrorIs(t, err, ErrDepartmentNotFound)

	_, err = f.doctors.Update(ctx, 99, &dto.DoctorRequest{Name: "X", Specialization: "Y"})
	assert.ErrorIs(t, err, ErrDoctorNotFound)
}

func TestDoctorUsecase_DeleteRemovesAppointments(t *testing.T) {
	f := newSeededFixture(t)
	ctx := context.Background()

	require.NoError(t, f.doctors.Delete(ctx, 2))

	_, err := f.appointment.FindByID(ctx, 2)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)

	department, err := f.departments.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Neurology", department.Name)

	assert.ErrorIs(t, f.doctors.Delete(ctx, 2), ErrDoctorNotFound)
}

func TestDoctorUsecase_SpecializationWildcardsAreLiteral(t *testing.T) {
	f := newSeededFixture(t)
	ctx := context.Background()

	for _, specialization := range []string{"%", "_"} {
		result, err := f.doctors.FindAll(ctx, dto.DoctorFilter{Specialization: specialization})
		require.NoError(t, err)
		assert.Zero(t, result.Total, specialization)
	}
}
