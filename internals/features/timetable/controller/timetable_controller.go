package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "edumanage_backend/internals/features/timetable/dto"
	model "edumanage_backend/internals/features/timetable/model"
	helper "edumanage_backend/internals/helpers"
)

type TimetableController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewTimetableController(db *gorm.DB) *TimetableController {
	return &TimetableController{DB: db, Validator: validator.New()}
}

// POST /api/timetable (admin)
func (ctl *TimetableController) Create(c *fiber.Ctx) error {
	var req dto.CreateTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	entry := req.ToModel()
	if err := ctl.DB.Create(entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Timetable entry created", entry)
}

// GET /api/timetable?class_id=&section_id=&teacher_id=&day=
// Sorted day asc (monday first) then period asc.
func (ctl *TimetableController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.TimetableEntry{})
	for param, column := range map[string]string{
		"class_id":   "class_id",
		"section_id": "section_id",
		"teacher_id": "teacher_id",
	} {
		raw := strings.TrimSpace(c.Query(param))
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid "+param)
		}
		q = q.Where(column+" = ?", id)
	}
	if day := strings.TrimSpace(c.Query("day")); day != "" {
		if _, ok := model.DayOrder[model.DayOfWeek(day)]; !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid day")
		}
		q = q.Where("day = ?", day)
	}

	var entries []model.TimetableEntry
	if err := q.Order("day_index ASC").Order("period_number ASC").Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", entries)
}

// PUT /api/timetable/:id (admin)
func (ctl *TimetableController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid timetable entry id")
	}

	var req dto.UpdateTimetableEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var entry model.TimetableEntry
	if err := ctl.DB.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Timetable entry not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&entry)
	if err := ctl.DB.Save(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Timetable entry updated", entry)
}

// DELETE /api/timetable/:id (admin)
func (ctl *TimetableController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid timetable entry id")
	}

	tx := ctl.DB.Delete(&model.TimetableEntry{}, "id = ?", id)
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, tx.Error.Error())
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Timetable entry not found")
	}
	return helper.JsonDeleted(c, "Timetable entry deleted")
}
