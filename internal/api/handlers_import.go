package api

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fixtrack/internal/models"
	"github.com/terraincognita07/fixtrack/internal/services"
)

func (handler *Handler) ImportAssets(c *fiber.Ctx) error {
	return handler.runImport(c, handler.importService.ImportAssets)
}

func (handler *Handler) ImportRepairs(c *fiber.Ctx) error {
	return handler.runImport(c, handler.importService.ImportRepairs)
}

func (handler *Handler) runImport(c *fiber.Ctx, importRows func(models.User, []byte) (services.ImportResult, error)) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "could not validate credentials")
	}

	upload, err := c.FormFile("file")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "file is required")
	}
	if !strings.HasSuffix(upload.Filename, ".csv") {
		return apiError(c, fiber.StatusBadRequest, "file must be a CSV file")
	}

	raw, err := readUpload(upload)
	if err != nil {
		log.Printf("read import upload: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to read uploaded file")
	}

	handler.ensureDependencies()
	result, err := importRows(user, raw)
	if err != nil {
		if errors.Is(err, services.ErrUnreadableEncoding) || errors.Is(err, services.ErrMalformedPayload) {
			return apiError(c, fiber.StatusBadRequest, fmt.Sprintf("error processing CSV file: %s", err.Error()))
		}
		log.Printf("import: %v", err)
		return apiError(c, fiber.StatusInternalServerError, "failed to import file")
	}
	return c.JSON(result)
}

func readUpload(upload *multipart.FileHeader) ([]byte, error) {
	file, err := upload.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}
