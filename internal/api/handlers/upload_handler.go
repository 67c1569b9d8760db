package handlers

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"formulab/internal/dto"
	"formulab/internal/upload"
)

type UploadHandler struct {
	logger *zap.Logger
}

func NewUploadHandler(logger *zap.Logger) *UploadHandler {
	return &UploadHandler{logger: logger}
}

// Autofill godoc
// @Summary Map a bulk-upload file onto the record field set
// @Description Parse an xlsx or csv file and map its columns onto record fields through the alias table. A file whose columns match nothing yields an empty field set, not an error.
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx or csv file with a header row"
// @Success 200 {object} dto.AutofillResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/uploads/autofill [post]
func (h *UploadHandler) Autofill(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "File is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to open file",
		})
	}
	defer src.Close()

	var result upload.Autofill
	switch strings.ToLower(filepath.Ext(file.Filename)) {
	case ".xlsx":
		result, err = upload.ParseXLSX(src)
	case ".csv":
		result, err = upload.ParseCSV(src)
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unsupported file type, expected .xlsx or .csv",
		})
	}
	if err != nil {
		h.logger.Warn("Bulk upload parse failed",
			zap.String("filename", file.Filename),
			zap.Error(err),
		)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse file",
		})
	}

	mapped := make([]string, len(result.MappedFields))
	for i, f := range result.MappedFields {
		mapped[i] = string(f)
	}

	return c.JSON(dto.AutofillResponse{
		MappedFields: mapped,
		Rows:         result.Rows,
	})
}
