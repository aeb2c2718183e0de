package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	service "edumanage_backend/internals/features/exams/service"
	helper "edumanage_backend/internals/helpers"
)

type ReportCardController struct {
	Service *service.ReportCardService
}

func NewReportCardController(db *gorm.DB) *ReportCardController {
	return &ReportCardController{Service: service.NewReportCardService(db)}
}

// GET /api/report-card/:student_id?exam_type_id=
func (ctl *ReportCardController) Get(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(strings.TrimSpace(c.Params("student_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var examTypeID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("exam_type_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid exam_type_id")
		}
		examTypeID = &id
	}

	card, err := ctl.Service.Build(studentID, examTypeID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "OK", card)
}
