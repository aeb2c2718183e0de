package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"edumanage_backend/internals/constants"
	dto "edumanage_backend/internals/features/users/dto"
	model "edumanage_backend/internals/features/users/model"
	helper "edumanage_backend/internals/helpers"
)

type UserController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Validator: validator.New()}
}

// GET /api/users?role=
func (ctl *UserController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.User{})
	if role := strings.TrimSpace(c.Query("role")); role != "" {
		if !constants.ValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Unknown role")
		}
		q = q.Where("role = ?", role)
	}

	var users []model.User
	if err := q.Limit(1000).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	out := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, dto.FromModelUser(&users[i]))
	}
	return helper.JsonOK(c, "OK", out)
}

// GET /api/users/:id
func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var user model.User
	if err := ctl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", dto.FromModelUser(&user))
}

// PUT /api/users/:id. Admins may update anyone, others only themselves.
func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	callerID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}
	if callerID != id && helper.GetRole(c) != constants.RoleAdmin {
		return helper.JsonError(c, fiber.StatusForbidden, "Not enough permissions")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.User
	if err := ctl.DB.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&user)
	if err := ctl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "User updated", dto.FromModelUser(&user))
}

// DELETE /api/users/:id (admin)
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	tx := ctl.DB.Delete(&model.User{}, "id = ?", id)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonDeleted(c, "User deleted successfully")
}
