package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:ix_students_user" json:"user_id"`
	Name         string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	RollNo       string    `gorm:"column:roll_no;type:varchar(20);not null;uniqueIndex:uniq_students_roll,priority:1" json:"roll_no"`
	ClassID      uuid.UUID `gorm:"column:class_id;type:uuid;not null;index:ix_students_class;uniqueIndex:uniq_students_roll,priority:2" json:"class_id"`
	SectionID    uuid.UUID `gorm:"column:section_id;type:uuid;not null;index:ix_students_section" json:"section_id"`
	SchoolYearID uuid.UUID `gorm:"column:school_year_id;type:uuid;not null;index:ix_students_year;uniqueIndex:uniq_students_roll,priority:3" json:"school_year_id"`

	Gender           *string    `gorm:"column:gender;type:varchar(10)" json:"gender,omitempty"`
	DOB              *time.Time `gorm:"column:dob" json:"dob,omitempty"`
	BloodGroup       *string    `gorm:"column:blood_group;type:varchar(5)" json:"blood_group,omitempty"`
	Religion         *string    `gorm:"column:religion;type:varchar(30)" json:"religion,omitempty"`
	Email            *string    `gorm:"column:email;type:varchar(255)" json:"email,omitempty"`
	Phone            *string    `gorm:"column:phone;type:varchar(30)" json:"phone,omitempty"`
	Address          *string    `gorm:"column:address" json:"address,omitempty"`
	Photo            *string    `gorm:"column:photo" json:"photo,omitempty"`
	ParentID         *uuid.UUID `gorm:"column:parent_id;type:uuid;index:ix_students_parent" json:"parent_id,omitempty"`
	AdmissionDate    *time.Time `gorm:"column:admission_date" json:"admission_date,omitempty"`
	GuardianName     *string    `gorm:"column:guardian_name;type:varchar(100)" json:"guardian_name,omitempty"`
	GuardianPhone    *string    `gorm:"column:guardian_phone;type:varchar(30)" json:"guardian_phone,omitempty"`
	GuardianRelation *string    `gorm:"column:guardian_relation;type:varchar(30)" json:"guardian_relation,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Student) TableName() string { return "students" }

func (m *Student) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now().UTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now
	return nil
}

func (m *Student) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now().UTC()
	return nil
}
