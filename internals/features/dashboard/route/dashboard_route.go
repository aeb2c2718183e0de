package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "edumanage_backend/internals/features/dashboard/controller"
)

// DashboardRoutes mounts the role-shaped stats endpoint under the
// authenticated API group.
func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctl := dashboardController.NewDashboardController(db)
	api.Get("/dashboard/stats", ctl.Stats)
}
