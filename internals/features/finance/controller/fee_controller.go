package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "edumanage_backend/internals/features/finance/dto"
	model "edumanage_backend/internals/features/finance/model"
	helper "edumanage_backend/internals/helpers"
)

type FeeController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db, Validator: validator.New()}
}

// POST /api/fee-types (admin|accountant)
func (ctl *FeeController) CreateFeeType(c *fiber.Ctx) error {
	var req dto.CreateFeeTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	feeType := req.ToModel()
	if err := ctl.DB.Create(feeType).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Fee type created", feeType)
}

// GET /api/fee-types
func (ctl *FeeController) ListFeeTypes(c *fiber.Ctx) error {
	var types []model.FeeType
	if err := ctl.DB.Order("name ASC").Find(&types).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", types)
}

// POST /api/fee-structures (admin|accountant)
func (ctl *FeeController) CreateFeeStructure(c *fiber.Ctx) error {
	var req dto.CreateFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	structure, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}
	if err := ctl.DB.Create(structure).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Fee structure created", structure)
}

// GET /api/fee-structures?class_id=&school_year_id=
func (ctl *FeeController) ListFeeStructures(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.FeeStructure{})
	q, badParam := filterByUUIDParams(c, q, map[string]string{
		"class_id":       "class_id",
		"school_year_id": "school_year_id",
	})
	if badParam != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+badParam)
	}

	var structures []model.FeeStructure
	if err := q.Find(&structures).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", structures)
}
