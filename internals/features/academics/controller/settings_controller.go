package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "edumanage_backend/internals/features/academics/dto"
	model "edumanage_backend/internals/features/academics/model"
	helper "edumanage_backend/internals/helpers"
)

type SettingsController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db, Validator: validator.New()}
}

// POST /api/settings (admin). Single-row table: saving replaces whatever
// row exists.
func (ctl *SettingsController) Save(c *fiber.Ctx) error {
	var req dto.SaveSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	settings := req.ToModel()
	err := ctl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Settings{}).Error; err != nil {
			return err
		}
		return tx.Create(settings).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Settings saved", settings)
}

// GET /api/settings (public). Defaults when nothing has been saved yet.
func (ctl *SettingsController) Get(c *fiber.Ctx) error {
	var settings model.Settings
	if err := ctl.DB.First(&settings).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "OK", model.DefaultSettings())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", settings)
}
