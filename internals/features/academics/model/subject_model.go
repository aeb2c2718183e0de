package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubjectType string

const (
	SubjectTypeMandatory SubjectType = "mandatory"
	SubjectTypeOptional  SubjectType = "optional"
)

type Subject struct {
	ID        uuid.UUID   `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name      string      `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Code      string      `gorm:"column:code;type:varchar(20);not null" json:"code"`
	ClassID   uuid.UUID   `gorm:"column:class_id;type:uuid;not null;index:ix_subjects_class" json:"class_id"`
	TeacherID *uuid.UUID  `gorm:"column:teacher_id;type:uuid" json:"teacher_id,omitempty"`
	Type      SubjectType `gorm:"column:type;type:varchar(20);not null;default:'mandatory'" json:"type"`
	CreatedAt time.Time   `gorm:"column:created_at;not null" json:"created_at"`
}

func (Subject) TableName() string { return "subjects" }

func (m *Subject) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Type == "" {
		m.Type = SubjectTypeMandatory
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}
