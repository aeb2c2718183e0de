package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Class struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"column:name;type:varchar(50);not null" json:"name"` // "Class 1" .. "Class 10"
	Numeric      int       `gorm:"column:numeric;not null;index:ix_classes_numeric" json:"numeric"`
	TeacherID    *uuid.UUID `gorm:"column:teacher_id;type:uuid" json:"teacher_id,omitempty"`
	SchoolYearID uuid.UUID  `gorm:"column:school_year_id;type:uuid;not null;index:ix_classes_year" json:"school_year_id"`

	// section id list, JSONB
	Sections datatypes.JSON `gorm:"column:sections" json:"sections"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Class) TableName() string { return "classes" }

func (m *Class) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if len(m.Sections) == 0 {
		m.Sections = datatypes.JSON([]byte("[]"))
	}
	return nil
}
