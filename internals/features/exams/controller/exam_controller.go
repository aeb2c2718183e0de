package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "edumanage_backend/internals/features/exams/dto"
	model "edumanage_backend/internals/features/exams/model"
	helper "edumanage_backend/internals/helpers"
)

type ExamController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db, Validator: validator.New()}
}

// POST /api/exam-types (admin)
func (ctl *ExamController) CreateExamType(c *fiber.Ctx) error {
	var req dto.CreateExamTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	examType := req.ToModel()
	if err := ctl.DB.Create(examType).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Exam type created", examType)
}

// GET /api/exam-types
func (ctl *ExamController) ListExamTypes(c *fiber.Ctx) error {
	var types []model.ExamType
	if err := ctl.DB.Order("name ASC").Find(&types).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", types)
}

// POST /api/exam-schedules (admin)
func (ctl *ExamController) CreateSchedule(c *fiber.Ctx) error {
	var req dto.CreateExamScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	schedule, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format")
	}
	if err := ctl.DB.Create(schedule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Exam schedule created", schedule)
}

// GET /api/exam-schedules?class_id=&exam_type_id= sorted exam_date asc
func (ctl *ExamController) ListSchedules(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.ExamSchedule{})
	for param, column := range map[string]string{
		"class_id":     "class_id",
		"exam_type_id": "exam_type_id",
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

	var schedules []model.ExamSchedule
	if err := q.Order("exam_date ASC").Find(&schedules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", schedules)
}

// POST /api/marks (admin|teacher)
func (ctl *ExamController) CreateMarks(c *fiber.Ctx) error {
	enteredBy, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateMarksEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	entry := req.ToModel(enteredBy)
	if err := ctl.DB.Create(entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Marks entered", entry)
}

// POST /api/marks/bulk (admin|teacher)
func (ctl *ExamController) CreateMarksBulk(c *fiber.Ctx) error {
	enteredBy, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	var reqs []dto.CreateMarksEntryRequest
	if err := c.BodyParser(&reqs); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}

	entries := make([]*model.MarksEntry, 0, len(reqs))
	for i := range reqs {
		if err := ctl.Validator.Struct(&reqs[i]); err != nil {
			return helper.ValidationError(c, err)
		}
		entries = append(entries, reqs[i].ToModel(enteredBy))
	}

	if len(entries) > 0 {
		if err := ctl.DB.Create(&entries).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}
	return helper.JsonOK(c, "Marks entered", entries)
}

// GET /api/marks?exam_schedule_id=&student_id=
func (ctl *ExamController) ListMarks(c *fiber.Ctx) error {
	q := ctl.DB.Model(&model.MarksEntry{})
	for param, column := range map[string]string{
		"exam_schedule_id": "exam_schedule_id",
		"student_id":       "student_id",
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

	var entries []model.MarksEntry
	if err := q.Order("created_at ASC").Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", entries)
}

// PUT /api/marks/:id (admin|teacher)
func (ctl *ExamController) UpdateMarks(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid marks entry id")
	}

	var req dto.UpdateMarksEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var entry model.MarksEntry
	if err := ctl.DB.First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Marks entry not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	req.ApplyTo(&entry)
	if err := ctl.DB.Save(&entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonUpdated(c, "Marks updated", entry)
}

// POST /api/grade-rules (admin)
func (ctl *ExamController) CreateGradeRule(c *fiber.Ctx) error {
	var req dto.CreateGradeRuleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := ctl.Validator.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	rule := req.ToModel()
	if err := ctl.DB.Create(rule).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonCreated(c, "Grade rule created", rule)
}

// GET /api/grade-rules sorted min_percentage desc
func (ctl *ExamController) ListGradeRules(c *fiber.Ctx) error {
	var rules []model.GradeRule
	if err := ctl.DB.Order("min_percentage DESC").Find(&rules).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", rules)
}
