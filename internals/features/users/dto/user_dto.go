package dto

import (
	"time"

	"github.com/google/uuid"

	model "edumanage_backend/internals/features/users/model"
)

/* =========================================================
   REQUESTS
========================================================= */

type RegisterRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50"`
	Email    string  `json:"email"    validate:"required,email"`
	Name     string  `json:"name"     validate:"required,max=100"`
	Role     string  `json:"role"     validate:"required,oneof=admin teacher student parent accountant librarian receptionist"`
	Password string  `json:"password" validate:"required,min=6"`
	Phone    *string `json:"phone"    validate:"omitempty,max=30"`
	Address  *string `json:"address"`
	Photo    *string `json:"photo"`
	IsActive *bool   `json:"is_active"`
}

func (r *RegisterRequest) ToModel(passwordHash string) *model.User {
	u := &model.User{
		Username:     r.Username,
		Email:        r.Email,
		Name:         r.Name,
		Role:         r.Role,
		Phone:        r.Phone,
		Address:      r.Address,
		Photo:        r.Photo,
		IsActive:     true,
		PasswordHash: passwordHash,
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
	return u
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// UpdateUserRequest is a partial update; password is never updatable here.
type UpdateUserRequest struct {
	Email    *string `json:"email"  validate:"omitempty,email"`
	Name     *string `json:"name"   validate:"omitempty,max=100"`
	Role     *string `json:"role"   validate:"omitempty,oneof=admin teacher student parent accountant librarian receptionist"`
	Phone    *string `json:"phone"  validate:"omitempty,max=30"`
	Address  *string `json:"address"`
	Photo    *string `json:"photo"`
	IsActive *bool   `json:"is_active"`
}

func (r *UpdateUserRequest) ApplyTo(u *model.User) {
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Role != nil {
		u.Role = *r.Role
	}
	if r.Phone != nil {
		u.Phone = r.Phone
	}
	if r.Address != nil {
		u.Address = r.Address
	}
	if r.Photo != nil {
		u.Photo = r.Photo
	}
	if r.IsActive != nil {
		u.IsActive = *r.IsActive
	}
}

/* =========================================================
   RESPONSES
========================================================= */

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	Photo     *string   `json:"photo,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModelUser(u *model.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Phone:     u.Phone,
		Address:   u.Address,
		Photo:     u.Photo,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

type TokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	User        *UserResponse `json:"user"`
}
