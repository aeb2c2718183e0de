package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Username string    `gorm:"column:username;type:varchar(50);not null;uniqueIndex:uniq_users_username" json:"username"`
	Email    string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uniq_users_email" json:"email"`
	Name     string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Role     string    `gorm:"column:role;type:varchar(20);not null;index:ix_users_role" json:"role"`
	Phone    *string   `gorm:"column:phone;type:varchar(30)" json:"phone,omitempty"`
	Address  *string   `gorm:"column:address" json:"address,omitempty"`
	Photo    *string   `gorm:"column:photo" json:"photo,omitempty"`
	IsActive bool      `gorm:"column:is_active;not null;default:true" json:"is_active"`

	PasswordHash string `gorm:"column:password_hash;not null" json:"-"`

	CreatedAt time.Time `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (m *User) BeforeCreate(tx *gorm.DB) error {
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

func (m *User) BeforeUpdate(tx *gorm.DB) error {
	m.UpdatedAt = time.Now().UTC()
	return nil
}
