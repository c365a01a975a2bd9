package handlers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/corems/corems-backend/internal/config"
	"github.com/corems/corems-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// UploadHandler stores complaint photos on local disk and hands back the URL.
// Only that URL string ever reaches the complaint record.
type UploadHandler struct {
	cfg *config.Config
}

func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{cfg: cfg}
}

func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	file, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "No file uploaded with field 'photo'",
		})
	}

	if file.Size > h.cfg.UploadMaxSize {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "File too large (max 5MB)",
		})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid file type",
		})
	}

	if err := os.MkdirAll(h.cfg.UploadDir, 0o755); err != nil {
		return respondError(c, err)
	}

	storedName := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(h.cfg.UploadDir, storedName)); err != nil {
		return respondError(c, err)
	}

	base := h.cfg.BaseURL
	if base == "" {
		base = c.BaseURL()
	}
	return c.JSON(dto.UploadResponse{URL: base + "/uploads/" + storedName})
}
