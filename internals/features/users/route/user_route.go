package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"edumanage_backend/internals/constants"
	userController "edumanage_backend/internals/features/users/controller"
	"edumanage_backend/internals/middlewares"
	authMw "edumanage_backend/internals/middlewares/auth"
)

// AuthRoutes mounts the public auth endpoints (register/login) plus /me.
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := userController.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Post("/login-google", middlewares.LoginRateLimiter(), ctl.LoginGoogle)
	grp.Get("/me", authMw.AuthMiddleware(db), ctl.Me)
}

// UserRoutes mounts user management under the authenticated API group.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctl := userController.NewUserController(db)

	grp := api.Group("/users")
	grp.Get("/", authMw.OnlyRoles("Only admins may list users", constants.AdminOnly...), ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Put("/:id", ctl.Update) // self-or-admin enforced in controller
	grp.Delete("/:id", authMw.OnlyRoles("Only admins may delete users", constants.AdminOnly...), ctl.Delete)
}
