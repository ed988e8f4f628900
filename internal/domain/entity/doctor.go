package entity

import "time"

// Doctor belongs to at most one department
type Doctor struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"type:varchar(255);not null" json:"name"`
	Specialization string    `gorm:"type:varchar(100);not null;index" json:"specialization"`
	Email          string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone          string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	DepartmentID   *int64    `gorm:"index" json:"department_id,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Department   *Department   `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`
}

func (Doctor) TableName() string {
	return "doctors"
}

// DepartmentName returns the name of the loaded department, or nil.
func (d *Doctor) DepartmentName() *string {
	if d.Department == nil {
		return nil
	}
	return &d.Department.Name
}
