package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/constants"
	academicController "edumanage_backend/internals/features/academics/controller"
	authMw "edumanage_backend/internals/middlewares/auth"
)

// AcademicRoutes mounts school-year, section, class, subject, teacher,
// student and parent management under the authenticated API group.
func AcademicRoutes(api fiber.Router, db *gorm.DB) {
	adminOnly := authMw.OnlyRoles("Admin access required", constants.AdminOnly...)
	adminOrTeacher := authMw.OnlyRoles("Admin or teacher access required", constants.AdminOrTeacher...)

	yearCtl := academicController.NewSchoolYearController(db)
	years := api.Group("/school-years")
	years.Post("/", adminOnly, yearCtl.Create)
	years.Get("/", yearCtl.List)
	years.Get("/current", yearCtl.Current)

	sectionCtl := academicController.NewSectionController(db)
	sections := api.Group("/sections")
	sections.Post("/", adminOnly, sectionCtl.Create)
	sections.Get("/", sectionCtl.List)

	classCtl := academicController.NewClassController(db)
	classes := api.Group("/classes")
	classes.Post("/", adminOnly, classCtl.Create)
	classes.Get("/", classCtl.List)
	classes.Get("/:id", classCtl.GetByID)

	subjectCtl := academicController.NewSubjectController(db)
	subjects := api.Group("/subjects")
	subjects.Post("/", adminOrTeacher, subjectCtl.Create)
	subjects.Get("/", subjectCtl.List)

	teacherCtl := academicController.NewTeacherController(db)
	teachers := api.Group("/teachers")
	teachers.Post("/", adminOnly, teacherCtl.Create)
	teachers.Get("/", teacherCtl.List)
	teachers.Get("/:id", teacherCtl.GetByID)

	studentCtl := academicController.NewStudentController(db)
	students := api.Group("/students")
	students.Post("/", adminOnly, studentCtl.Create)
	students.Get("/", studentCtl.List)
	students.Get("/:id", studentCtl.GetByID)
	students.Put("/:id", adminOrTeacher, studentCtl.Update)

	parentCtl := academicController.NewParentController(db)
	parents := api.Group("/parents")
	parents.Post("/", adminOnly, parentCtl.Create)
	parents.Get("/", parentCtl.List)
}

// SettingsPublicRoutes registers the public settings read. It must be
// mounted before the authenticated /api group so login pages can read
// branding without a token.
func SettingsPublicRoutes(app *fiber.App, db *gorm.DB) {
	ctl := academicController.NewSettingsController(db)
	app.Get("/api/settings", ctl.Get)
}

// SettingsRoutes mounts the admin settings write under the
// authenticated API group.
func SettingsRoutes(api fiber.Router, db *gorm.DB) {
	ctl := academicController.NewSettingsController(db)
	api.Post("/settings", authMw.OnlyRoles("Admin access required", constants.AdminOnly...), ctl.Save)
}
