package controller

import (
	"errors"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/constants"
	academicModel "edumanage_backend/internals/features/academics/model"
	helper "edumanage_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// GET /api/dashboard/stats returns counters shaped by the caller's role.
func (ctl *DashboardController) Stats(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return err
	}

	stats := fiber.Map{}

	switch helper.GetRole(c) {
	case constants.RoleAdmin:
		for key, m := range map[string]interface{}{
			"total_students": &academicModel.Student{},
			"total_teachers": &academicModel.Teacher{},
			"total_parents":  &academicModel.Parent{},
			"total_classes":  &academicModel.Class{},
			"total_subjects": &academicModel.Subject{},
		} {
			var count int64
			if err := ctl.DB.Model(m).Count(&count).Error; err != nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
			}
			stats[key] = count
		}

	case constants.RoleTeacher:
		var teacher academicModel.Teacher
		err := ctl.DB.First(&teacher, "user_id = ?", userID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if err == nil {
			stats["my_classes"] = jsonListLen(teacher.Classes)
			stats["my_subjects"] = jsonListLen(teacher.Subjects)
		}

	case constants.RoleStudent:
		var student academicModel.Student
		err := ctl.DB.First(&student, "user_id = ?", userID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if err == nil {
			stats["my_class"] = student.ClassID
			stats["my_section"] = student.SectionID
		}

	case constants.RoleParent:
		var parent academicModel.Parent
		err := ctl.DB.First(&parent, "user_id = ?", userID).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
		if err == nil {
			stats["my_children"] = jsonListLen(parent.StudentIDs)
		}
	}

	return helper.JsonOK(c, "OK", stats)
}

func jsonListLen(raw []byte) int {
	var ids []string
	if err := sonic.Unmarshal(raw, &ids); err != nil {
		return 0
	}
	return len(ids)
}
