package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/constants"
	timetableController "edumanage_backend/internals/features/timetable/controller"
	authMw "edumanage_backend/internals/middlewares/auth"
)

// TimetableRoutes mounts timetable management under the authenticated
// API group. Reads are open to every role; writes are admin-only.
func TimetableRoutes(api fiber.Router, db *gorm.DB) {
	ctl := timetableController.NewTimetableController(db)
	adminOnly := authMw.OnlyRoles("Admin access required", constants.AdminOnly...)

	grp := api.Group("/timetable")
	grp.Post("/", adminOnly, ctl.Create)
	grp.Get("/", ctl.List)
	grp.Put("/:id", adminOnly, ctl.Update)
	grp.Delete("/:id", adminOnly, ctl.Delete)
}
