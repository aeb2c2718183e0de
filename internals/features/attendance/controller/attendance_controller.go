package controller

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "edumanage_backend/internals/features/attendance/dto"
	model "edumanage_backend/internals/features/attendance/model"
	helper "edumanage_backend/internals/helpers"
)

type AttendanceController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db, Validator: validator.New()}
}

// POST /api/attendance (admin|teacher)
func (ctl *AttendanceController) Mark(c *fiber.Ctx) error {
	markedBy, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	record, err := req.ToModel(markedBy)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}
	if err := ctl.DB.Create(record).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Attendance marked", record)
}

// POST /api/attendance/bulk (admin|teacher) marks a whole class in one go.
func (ctl *AttendanceController) MarkBulk(c *fiber.Ctx) error {
	markedBy, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var reqs []dto.MarkAttendanceRequest
	if err := c.BodyParser(&reqs); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	records := make([]*model.Attendance, 0, len(reqs))
	for i := range reqs {
		if err := ctl.Validator.Struct(&reqs[i]); err != nil {
			return helper.ValidationError(c, err)
		}
		record, err := reqs[i].ToModel(markedBy)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
		}
		records = append(records, record)
	}

	if len(records) > 0 {
		if err := ctl.DB.Create(&records).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonOK(c, fmt.Sprintf("Marked attendance for %d students", len(records)), nil)
}

// GET /api/attendance?student_id=&class_id=&section_id=&date_from=&date_to=
// Sorted date desc.
func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.Attendance{})
	for param, column := range map[string]string{
		"student_id": "student_id",
		"class_id":   "class_id",
		"section_id": "section_id",
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

	q, err := applyDateRange(c, q)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}

	var records []model.Attendance
	if err := q.Order("date DESC").Limit(1000).Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", records)
}

// GET /api/attendance/stats?student_id=&date_from=&date_to=
func (ctl *AttendanceController) Stats(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Query("student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "student_id is required")
	}

	q := ctl.DB.Model(&model.Attendance{}).Where("student_id = ?", studentID)
	q, err = applyDateRange(c, q)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}

	var records []model.Attendance
	if err := q.Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	stats := dto.AttendanceStatsResponse{TotalDays: len(records)}
	for i := range records {
		switch records[i].Status {
		case model.StatusPresent:
			stats.Present++
		case model.StatusAbsent:
			stats.Absent++
		case model.StatusLate:
			stats.Late++
		}
	}
	if stats.TotalDays > 0 {
		pct := float64(stats.Present) / float64(stats.TotalDays) * 100
		stats.Percentage = math.Round(pct*100) / 100
	}
	return helper.JsonOK(c, "OK", stats)
}

func applyDateRange(c *fiber.Ctx, q *gorm.DB) (*gorm.DB, error) {
	from, err := helper.QueryDate(c, "date_from")
	if err != nil {
		return nil, err
	}
	to, err := helper.QueryDate(c, "date_to")
	if err != nil {
		return nil, err
	}
	if from != nil {
		q = q.Where("date >= ?", *from)
	}
	if to != nil {
		q = q.Where("date <= ?", *to)
	}
	return q, nil
}
