package dto

import "time"

// Request DTOs

// CreateAppointmentRequest creates an appointment. AppointmentDate accepts
// RFC 3339 or local "2006-01-02T15:04[:05]" timestamps.
type CreateAppointmentRequest struct {
	PatientID       int64   `json:"patientId" validate:"required,gt=0"`
	DoctorID        int64   `json:"doctorId" validate:"required,gt=0"`
	DepartmentID    *int64  `json:"departmentId" validate:"omitempty,gt=0"`
	AppointmentDate string  `json:"appointmentDate" validate:"required"`
	Status          string  `json:"status" validate:"omitempty,max=50"`
	Notes           *string `json:"notes" validate:"omitempty"`
}

// UpdateAppointmentRequest is a partial update: nil fields are left unchanged.
type UpdateAppointmentRequest struct {
	PatientID       *int64  `json:"patientId" validate:"omitempty,gt=0"`
	DoctorID        *int64  `json:"doctorId" validate:"omitempty,gt=0"`
	DepartmentID    *int64  `json:"departmentId" validate:"omitempty,gt=0"`
	AppointmentDate *string `json:"appointmentDate" validate:"omitempty"`
	Status          *string `json:"status" validate:"omitempty,max=50"`
	Notes           *string `json:"notes" validate:"omitempty"`
}

// AppointmentFilter selects a subset of appointments. Only one criterion is
// applied, checked in field order; From and To must be set together.
type AppointmentFilter struct {
	PatientID *int64
	DoctorID  *int64
	From      *time.Time
	To        *time.Time
}

// IsEmpty reports whether no filter is set
func (f AppointmentFilter) IsEmpty() bool {
	return f.PatientID == nil && f.DoctorID == nil && f.From == nil && f.To == nil
}

// Response DTOs

type AppointmentResponse struct {
	ID              int64   `json:"id"`
	PatientID       int64   `json:"patientId"`
	PatientName     string  `json:"patientName"`
	DoctorID        int64   `json:"doctorId"`
	DoctorName      string  `json:"doctorName"`
	DepartmentID    *int64  `json:"departmentId"`
	DepartmentName  *string `json:"departmentName"`
	AppointmentDate string  `json:"appointmentDate"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
