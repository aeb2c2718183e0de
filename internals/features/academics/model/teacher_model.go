package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Teacher struct {
	ID            uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index:ix_teachers_user" json:"user_id"`
	Name          string     `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Designation   *string    `gorm:"column:designation;type:varchar(100)" json:"designation,omitempty"`
	Qualification *string    `gorm:"column:qualification" json:"qualification,omitempty"`
	Gender        *string    `gorm:"column:gender;type:varchar(10)" json:"gender,omitempty"`
	DOB           *time.Time `gorm:"column:dob" json:"dob,omitempty"`
	JoiningDate   *time.Time `gorm:"column:joining_date" json:"joining_date,omitempty"`
	Phone         *string    `gorm:"column:phone;type:varchar(30)" json:"phone,omitempty"`
	Email         *string    `gorm:"column:email;type:varchar(255)" json:"email,omitempty"`
	Address       *string    `gorm:"column:address" json:"address,omitempty"`
	Photo         *string    `gorm:"column:photo" json:"photo,omitempty"`
	Salary        *float64   `gorm:"column:salary" json:"salary,omitempty"`

	// subject / class id lists, JSONB
	Subjects datatypes.JSON `gorm:"column:subjects" json:"subjects"`
	Classes  datatypes.JSON `gorm:"column:classes" json:"classes"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Teacher) TableName() string { return "teachers" }

func (m *Teacher) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	if len(m.Subjects) == 0 {
		m.Subjects = datatypes.JSON([]byte("[]"))
	}
	if len(m.Classes) == 0 {
		m.Classes = datatypes.JSON([]byte("[]"))
	}
	return nil
}

func (m *Teacher) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now().UTC()
	return nil
}
