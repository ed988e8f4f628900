package dto

// Request DTOs

type DepartmentRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=255"`
	Description string `json:"description" validate:"omitempty"`
}

// Response DTOs

type DepartmentResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type DepartmentListResponse struct {
	Departments []DepartmentResponse `json:"departments"`
	Total       int                  `json:"total"`
}
