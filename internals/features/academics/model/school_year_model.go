package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SchoolYear struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Year      string    `gorm:"column:year;type:varchar(20);not null" json:"year"` // e.g. "2024-2025"
	StartDate time.Time `gorm:"column:start_date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"column:end_date;not null" json:"end_date"`
	IsCurrent bool      `gorm:"column:is_current;not null;default:false;index:ix_school_years_current" json:"is_current"`
	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (SchoolYear) TableName() string { return "school_years" }

func (m *SchoolYear) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return nil
}
