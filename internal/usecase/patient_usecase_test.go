package usecase

import (
	"context"
	"testing"

	"hospital-management-api/internal/delivery/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientUsecase_CreateParsesDateOfBirth(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.patients.Create(ctx, &dto.PatientRequest{
		Name:        "Alice Brown",
		DateOfBirth: "2001-12-05",
		BloodGroup:  "B-",
	})
	require.NoError(t, err)
	require.NotNil(t, created.DateOfBirth)
	assert.Equal(t, "2001-12-05", *created.DateOfBirth)

	found, err := f.patients.FindByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, found.DateOfBirth)
	assert.Equal(t, "2001-12-05", *found.DateOfBirth)

	withoutDOB, err := f.patients.Create(ctx, &dto.PatientRequest{Name: "Bob"})
	require.NoError(t, err)
	assert.Nil(t, withoutDOB.DateOfBirth)
}

func TestPatientUsecase_InvalidDateOfBirth(t *testing.T) {
	f := newSeededFixture(t)
	ctx := context.Background()

	_, err := f.patients.Create(ctx, &dto.PatientRequest{Name: "Bad", DateOfBirth: "15/03/1985"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = f.patients.Update(ctx, 1, &dto.PatientRequest{Name: "John Doe", DateOfBirth: "1985-13-40"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestPatientUsecase_SearchByName(t *testing.T) {
	f := newSeededFixture(t)
	ctx := context.Background()

	result, err := f.patients.FindAll(ctx, "jAnE")
	require.NoError(t, err)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "Jane Smith", result.Patients[0].Name)

	all, err := f.patients.FindAll(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 2, all.Total)

	none, err := f.patients.FindAll(ctx, "nobody")
	require.NoError(t, err)
	assert.Equal(t, 0, none.Total)
}

func TestPatientUsecase_UpdateOverwrites(t *testing.T) {
	f := newSeededFixture(t)

	updated, err := f.patients.Update(context.Background(), 1, &dto.PatientRequest{
		Name:  "John Q. Doe",
		Phone: "555-9999",
	})
	require.NoError(t, err)
	assert.Equal(t, "John Q. Doe", updated.Name)
	assert.Equal(t, "555-9999", updated.Phone)
	assert.Equal(t, "", updated.Email)
	assert.Nil(t, updated.DateOfBirth)
	assert.Equal(t, "", updated.BloodGroup)
}

func TestPatientUsecase_Delete(t *testing.T) {
	f := newSeededFixture(t)
	ctx := context.Background()

	assert.ErrorIs(t, f.patients.Delete(ctx, 9999), ErrPatientNotFound)

	require.NoError(t, f.patients.Delete(ctx, 1))
	_, err := f.patients.FindByID(ctx, 1)
	assert.ErrorIs(t, err, ErrPatientNotFound)

	// John Doe's appointment is gone, Jane's remains
	appointments, err := f.appointment.FindAll(ctx, dto.AppointmentFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, appointments.Total)
	assert.Equal(t, "Jane Smith", appointments.Appointments[0].PatientName)
}

func TestPatientUsecase_SearchWildcardsAreLiteral(t *testing.T) {
	f := newSeededFixture(t)
	ctx := context.Background()

	for _, name := range []string{"%", "_"} {
		result, err := f.patients.FindAll(ctx, name)
		require.NoError(t, err)
		assert.Zero(t, result.Total, name)
	}
}
