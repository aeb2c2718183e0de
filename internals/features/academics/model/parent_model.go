package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Parent struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:ix_parents_user" json:"user_id"`
	Name       string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Phone      string    `gorm:"column:phone;type:varchar(30);not null" json:"phone"`
	Email      *string   `gorm:"column:email;type:varchar(255)" json:"email,omitempty"`
	Address    *string   `gorm:"column:address" json:"address,omitempty"`
	Occupation *string   `gorm:"column:occupation;type:varchar(100)" json:"occupation,omitempty"`

	// children student id list, JSONB
	StudentIDs datatypes.JSON `gorm:"column:student_ids" json:"student_ids"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
}

func (Parent) TableName() string { return "parents" }

func (m *Parent) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	if len(m.StudentIDs) == 0 {
		m.StudentIDs = datatypes.JSON([]byte("[]"))
	}
	return nil
}
