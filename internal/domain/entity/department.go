package entity

import "time"

// Department is a hospital unit. Deleting it removes its doctors and appointments.
type Department struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Doctors      []Doctor      `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"doctors,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DepartmentID;constraint:OnDelete:CASCADE" json:"appointments,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}
