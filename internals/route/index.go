package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/configs"
	academicRoute "edumanage_backend/internals/features/academics/route"
	attendanceRoute "edumanage_backend/internals/features/attendance/route"
	dashboardRoute "edumanage_backend/internals/features/dashboard/route"
	examRoute "edumanage_backend/internals/features/exams/route"
	financeRoute "edumanage_backend/internals/features/finance/route"
	timetableRoute "edumanage_backend/internals/features/timetable/route"
	uploadRoute "edumanage_backend/internals/features/uploads/route"
	userRoute "edumanage_backend/internals/features/users/route"
	authMw "edumanage_backend/internals/middlewares/auth"
)

// SetupRoutes composes every feature route. Public endpoints (auth,
// settings read, gateway webhook, uploaded files) must be registered
// before the authenticated /api group so they bypass the JWT guard.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	log.Println("[INFO] setting up public routes...")
	userRoute.AuthRoutes(app, db)
	academicRoute.SettingsPublicRoutes(app, db)
	financeRoute.GatewayWebhookRoutes(app, db)
	app.Static("/api/uploads", configs.GetEnv("UPLOAD_DIR", "./uploads"))

	log.Println("[INFO] setting up authenticated routes...")
	api := app.Group("/api", authMw.AuthMiddleware(db))

	userRoute.UserRoutes(api, db)
	academicRoute.AcademicRoutes(api, db)
	academicRoute.SettingsRoutes(api, db)
	timetableRoute.TimetableRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)
	examRoute.ExamRoutes(api, db)
	financeRoute.FinanceRoutes(api, db)
	dashboardRoute.DashboardRoutes(api, db)
	uploadRoute.UploadRoutes(api, configs.GetEnv("UPLOAD_DIR", "./uploads"))
}
