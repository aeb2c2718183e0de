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

type SchoolYearController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSchoolYearController(db *gorm.DB) *SchoolYearController {
	return &SchoolYearController{DB: db, Validator: validator.New()}
}

// POST /api/school-years (admin). Marking a year current unsets all others.
func (ctl *SchoolYearController) Create(c *fiber.Ctx) error {
	var req dto.CreateSchoolYearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	year, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}

	err = ctl.DB.Transaction(func(tx *gorm.DB) error {
		if year.IsCurrent {
			if err := tx.Model(&model.SchoolYear{}).
				Where("is_current = ?", true).
				Update("is_current", false).Error; err != nil {
				return err
			}
		}
		return tx.Create(year).Error
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "School year created", year)
}

// GET /api/school-years
func (ctl *SchoolYearController) List(c *fiber.Ctx) error {
	var years []model.SchoolYear
	if err := ctl.DB.Order("start_date DESC").Find(&years).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", years)
}

// GET /api/school-years/current
func (ctl *SchoolYearController) Current(c *fiber.Ctx) error {
	var year model.SchoolYear
	if err := ctl.DB.First(&year, "is_current = ?", true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "No current school year set")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", year)
}
