package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Settings is a single-row table; creating new settings replaces the row.
type Settings struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	SchoolName     string    `gorm:"column:school_name;type:varchar(200);not null" json:"school_name"`
	SchoolCode     *string   `gorm:"column:school_code;type:varchar(50)" json:"school_code,omitempty"`
	Address        *string   `gorm:"column:address" json:"address,omitempty"`
	Phone          *string   `gorm:"column:phone;type:varchar(30)" json:"phone,omitempty"`
	Email          *string   `gorm:"column:email;type:varchar(255)" json:"email,omitempty"`
	Website        *string   `gorm:"column:website" json:"website,omitempty"`
	Logo           *string   `gorm:"column:logo" json:"logo,omitempty"`
	Currency       string    `gorm:"column:currency;type:varchar(10);not null;default:'USD'" json:"currency"`
	CurrencySymbol string    `gorm:"column:currency_symbol;type:varchar(5);not null;default:'$'" json:"currency_symbol"`
	Timezone       string    `gorm:"column:timezone;type:varchar(50);not null;default:'UTC'" json:"timezone"`
	Language       string    `gorm:"column:language;type:varchar(10);not null;default:'en'" json:"language"`
	DateFormat     string    `gorm:"column:date_format;type:varchar(20);not null;default:'YYYY-MM-DD'" json:"date_format"`
	TimeFormat     string    `gorm:"column:time_format;type:varchar(20);not null;default:'HH:mm'" json:"time_format"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Settings) TableName() string { return "settings" }

func (m *Settings) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.UpdatedAt = time.Now().UTC()
	return nil
}

// DefaultSettings is returned when no settings row exists yet.
func DefaultSettings() *Settings {
	return &Settings{
		SchoolName:     "School Management System",
		Currency:       "USD",
		CurrencySymbol: "$",
		Timezone:       "UTC",
		Language:       "en",
		DateFormat:     "YYYY-MM-DD",
		TimeFormat:     "HH:mm",
	}
}
