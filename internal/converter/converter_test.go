package converter

import (
	"testing"
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateTime(t *testing.T) {
	want := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)

	for _, input := range []string{
		"2026-10-19T09:30:00",
		"2026-10-19T09:30",
		"2026-10-19 09:30:00",
		"2026-10-19T09:30:00Z",
		"2026-10-19T11:30:00+02:00",
	} {
		t.Run(input, func(t *testing.T) {
			got, err := ParseDateTime(input)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %v", got)
			assert.Equal(t, time.UTC, got.Location())
		})
	}

	_, err := ParseDateTime("19/10/2026")
	assert.Error(t, err)
}

func TestFormatDate_Nil(t *testing.T) {
	assert.Nil(t, FormatDate(nil))

	dob := time.Date(1985, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1985-03-15", *FormatDate(&dob))
}

func TestAppointmentToResponse_Denormalizes(t *testing.T) {
	deptID := int64(3)
	notes := "Annual checkup"
	appointment := &entity.Appointment{
		ID:              7,
		PatientID:       1,
		DoctorID:        2,
		DepartmentID:    &deptID,
		AppointmentDate: time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC),
		Status:          entity.AppointmentStatusScheduled,
		Notes:           &notes,
		Patient:         &entity.Patient{ID: 1, Name: "John Doe"},
		Doctor:          &entity.Doctor{ID: 2, Name: "Dr. Sarah Mitchell"},
		Department:      &entity.Department{ID: 3, Name: "Cardiology"},
	}

	resp := AppointmentToResponse(appointment)

	assert.Equal(t, "John Doe", resp.PatientName)
	assert.Equal(t, "Dr. Sarah Mitchell", resp.DoctorName)
	require.NotNil(t, resp.DepartmentName)
	assert.Equal(t, "Cardiology", *resp.DepartmentName)
	assert.Equal(t, "2026-10-19T09:30:00", resp.AppointmentDate)
	assert.Equal(t, &notes, resp.Notes)
}

func TestDoctorToResponse_WithoutDepartment(t *testing.T) {
	resp := DoctorToResponse(&entity.Doctor{ID: 4, Name: "Dr. House", Specialization: "Diagnostics"})

	assert.Nil(t, resp.DepartmentID)
	assert.Nil(t, resp.DepartmentName)
	assert.Nil(t, DoctorToResponse(nil))
}
