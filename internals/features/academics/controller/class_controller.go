package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "edumanage_backend/internals/features/academics/dto"
	model "edumanage_backend/internals/features/academics/model"
	helper "edumanage_backend/internals/helpers"
)

type SectionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSectionController(db *gorm.DB) *SectionController {
	return &SectionController{DB: db, Validator: validator.New()}
}

// POST /api/sections (admin)
func (ctl *SectionController) Create(c *fiber.Ctx) error {
	var req dto.CreateSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	section := req.ToModel()
	if err := ctl.DB.Create(section).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Section created", section)
}

// GET /api/sections
func (ctl *SectionController) List(c *fiber.Ctx) error {
	var sections []model.Section
	if err := ctl.DB.Order("name ASC").Find(&sections).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", sections)
}

type ClassController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db, Validator: validator.New()}
}

// POST /api/classes (admin)
func (ctl *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	class, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid section list")
	}
	if err := ctl.DB.Create(class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Class created", class)
}

// GET /api/classes?school_year_id= sorted by numeric asc
func (ctl *ClassController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.Class{})
	if raw := strings.TrimSpace(c.Query("school_year_id")); raw != "" {
		yearID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school_year_id")
		}
		q = q.Where("school_year_id = ?", yearID)
	}

	var classes []model.Class
	if err := q.Order("numeric ASC").Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", classes)
}

// GET /api/classes/:id
func (ctl *ClassController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var class model.Class
	if err := ctl.DB.First(&class, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", class)
}

type SubjectController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db, Validator: validator.New()}
}

// POST /api/subjects (admin|teacher)
func (ctl *SubjectController) Create(c *fiber.Ctx) error {
	var req dto.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	subject := req.ToModel()
	if err := ctl.DB.Create(subject).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Subject created", subject)
}

// GET /api/subjects?class_id=
func (ctl *SubjectController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.Subject{})
	if raw := strings.TrimSpace(c.Query("class_id")); raw != "" {
		classID, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class_id")
		}
		q = q.Where("class_id = ?", classID)
	}

	var subjects []model.Subject
	if err := q.Order("name ASC").Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", subjects)
}
