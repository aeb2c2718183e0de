package route

import (
	"github.com/gofiber/fiber/v2"

	uploadController "edumanage_backend/internals/features/uploads/controller"
)

// UploadRoutes mounts the authenticated upload endpoint; stored files
// are served by fiber Static from main.go.
func UploadRoutes(api fiber.Router, uploadDir string) {
	ctl := uploadController.NewUploadController(uploadDir)
	api.Post("/upload", ctl.Upload)
}
