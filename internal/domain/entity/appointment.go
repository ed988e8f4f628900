package entity

import "time"

// AppointmentStatusScheduled is applied when an appointment is created without a status.
// Status is otherwise free text.
const AppointmentStatusScheduled = "SCHEDULED"

// Appointment links a patient to a doctor at a point in time
type Appointment struct {
	ID              int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID       int64     `gorm:"not null;index" json:"patient_id"`
	DoctorID        int64     `gorm:"not null;index" json:"doctor_id"`
	DepartmentID    *int64    `gorm:"index" json:"department_id,omitempty"`
	AppointmentDate time.Time `gorm:"not null;index" json:"appointment_date"`
	Status          string    `gorm:"type:varchar(50);not null;default:'SCHEDULED'" json:"status"`
	Notes           *string   `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient    *Patient    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor     *Doctor     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Department *Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// AssignDoctor sets the doctor and, when the doctor belongs to a department,
// moves the appointment to that department.
func (a *Appointment) AssignDoctor(doctor *Doctor) {
	a.DoctorID = doctor.ID
	a.Doctor = doctor
	if doctor.DepartmentID != nil {
		a.DepartmentID = doctor.DepartmentID
		a.Department = doctor.Department
	}
}

// AssignDepartment sets the department explicitly.
func (a *Appointment) AssignDepartment(department *Department) {
	a.DepartmentID = &department.ID
	a.Department = department
}
