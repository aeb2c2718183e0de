package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/constants"
	examController "edumanage_backend/internals/features/exams/controller"
	authMw "edumanage_backend/internals/middlewares/auth"
)

// ExamRoutes mounts exam types, schedules, marks, grade rules and the
// report card endpoint under the authenticated API group.
func ExamRoutes(api fiber.Router, db *gorm.DB) {
	ctl := examController.NewExamController(db)
	reportCtl := examController.NewReportCardController(db)

	adminOnly := authMw.OnlyRoles("Admin access required", constants.AdminOnly...)
	adminOrTeacher := authMw.OnlyRoles("Admin or teacher access required", constants.AdminOrTeacher...)

	types := api.Group("/exam-types")
	types.Post("/", adminOnly, ctl.CreateExamType)
	types.Get("/", ctl.ListExamTypes)

	schedules := api.Group("/exam-schedules")
	schedules.Post("/", adminOnly, ctl.CreateSchedule)
	schedules.Get("/", ctl.ListSchedules)

	marks := api.Group("/marks")
	marks.Post("/", adminOrTeacher, ctl.CreateMarks)
	marks.Post("/bulk", adminOrTeacher, ctl.CreateMarksBulk)
	marks.Get("/", ctl.ListMarks)
	marks.Put("/:id", adminOrTeacher, ctl.UpdateMarks)

	rules := api.Group("/grade-rules")
	rules.Post("/", adminOnly, ctl.CreateGradeRule)
	rules.Get("/", ctl.ListGradeRules)

	api.Get("/report-card/:student_id", reportCtl.Get)
}
