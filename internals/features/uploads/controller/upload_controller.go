package controller

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	helper "edumanage_backend/internals/helpers"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

type UploadController struct {
	Dir string
}

func NewUploadController(dir string) *UploadController {
	return &UploadController{Dir: dir}
}

// POST /api/upload expects a multipart "file". Images are downscaled
// and re-encoded to WebP; documents are stored as-is. Stored names are
// uuid-prefixed so uploads never collide or traverse paths.
func (ctl *UploadController) Upload(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No file uploaded")
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedExtensions[ext] {
		return helper.JsonError(c, fiber.StatusBadRequest, "File type not allowed")
	}

	if err := os.MkdirAll(ctl.Dir, 0o755); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var filename string
	if helper.ImageExt(ext) && ext != ".gif" {
		data, err := helper.CompressToWebP(fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Could not process image")
		}
		base := strings.TrimSuffix(fh.Filename, filepath.Ext(fh.Filename))
		filename = helper.GenerateUniqueFilename(base + ".webp")
		if err := os.WriteFile(filepath.Join(ctl.Dir, filename), data, 0o644); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	} else {
		filename = helper.GenerateUniqueFilename(fh.Filename)
		if err := c.SaveFile(fh, filepath.Join(ctl.Dir, filename)); err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonOK(c, "File uploaded", fiber.Map{
		"filename": filename,
		"url":      "/api/uploads/" + filename,
	})
}
