package dto

// Request DTOs

// PatientRequest carries a full patient record. DateOfBirth is YYYY-MM-DD.
type PatientRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=255"`
	Email       string `json:"email" validate:"omitempty,email"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty"`
	Address     string `json:"address" validate:"omitempty"`
	BloodGroup  string `json:"bloodGroup" validate:"omitempty,max=5"`
}

// Response DTOs

type PatientResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	DateOfBirth *string `json:"dateOfBirth"`
	Address     string  `json:"address"`
	BloodGroup  string  `json:"bloodGroup"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
