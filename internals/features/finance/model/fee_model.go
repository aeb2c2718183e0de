package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeeType struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"column:name;type:varchar(50);not null" json:"name"` // "Tuition", "Transport", "Library"
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	IsMandatory bool      `gorm:"column:is_mandatory;not null;default:true" json:"is_mandatory"`
	CreatedAt   time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (FeeType) TableName() string { return "fee_types" }

func (m *FeeType) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}

type FeeStructure struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ClassID      uuid.UUID  `gorm:"column:class_id;type:uuid;not null;index:ix_fee_structures_class" json:"class_id"`
	SchoolYearID uuid.UUID  `gorm:"column:school_year_id;type:uuid;not null;index:ix_fee_structures_year" json:"school_year_id"`
	FeeTypeID    uuid.UUID  `gorm:"column:fee_type_id;type:uuid;not null" json:"fee_type_id"`
	Amount       float64    `gorm:"column:amount;not null" json:"amount"`
	DueDate      *time.Time `gorm:"column:due_date" json:"due_date,omitempty"`
	Frequency    string     `gorm:"column:frequency;type:varchar(20);not null;default:'annual'" json:"frequency"`
	CreatedAt    time.Time  `gorm:"column:created_at;not null" json:"created_at"`
}

func (FeeStructure) TableName() string { return "fee_structures" }

func (m *FeeStructure) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Frequency == "" {
		m.Frequency = "annual"
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}
