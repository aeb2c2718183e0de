package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/constants"
	attendanceController "edumanage_backend/internals/features/attendance/controller"
	authMw "edumanage_backend/internals/middlewares/auth"
)

// AttendanceRoutes mounts attendance marking and reporting under the
// authenticated API group.
func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctl := attendanceController.NewAttendanceController(db)
	adminOrTeacher := authMw.OnlyRoles("Admin or teacher access required", constants.AdminOrTeacher...)

	grp := api.Group("/attendance")
	grp.Post("/", adminOrTeacher, ctl.Mark)
	grp.Post("/bulk", adminOrTeacher, ctl.MarkBulk)
	grp.Get("/", ctl.List)
	grp.Get("/stats", ctl.Stats)
}
