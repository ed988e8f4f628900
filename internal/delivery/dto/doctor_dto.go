package dto

// Request DTOs

type DoctorRequest struct {
	Name           string `json:"name" validate:"required,notblank,max=255"`
	Specialization string `json:"specialization" validate:"required,notblank,max=100"`
	Email          string `json:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" validate:"omitempty,max=30"`
	DepartmentID   *int64 `json:"departmentId" validate:"omitempty,gt=0"`
}

// DoctorFilter selects a subset of doctors. DepartmentID takes precedence
// over Specialization.
type DoctorFilter struct {
	DepartmentID   *int64
	Specialization string
}

// IsEmpty reports whether no filter is set
func (f DoctorFilter) IsEmpty() bool {
	return f.DepartmentID == nil && f.Specialization == ""
}

// Response DTOs

type DoctorResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	DepartmentID   *int64  `json:"departmentId"`
	DepartmentName *string `json:"departmentName"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
