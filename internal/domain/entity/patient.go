package entity

import "time"

type Patient struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"type:varchar(255);not null;index" json:"name"`
	Email       string     `gorm:"type:varchar(255)" json:"email,omitempty"`
	Phone       string     `gorm:"type:varchar(30)" json:"phone,omitempty"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Address     string     `gorm:"type:text" json:"address,omitempty"`
	BloodGroup  string     `gorm:"type:varchar(5)" json:"blood_group,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
