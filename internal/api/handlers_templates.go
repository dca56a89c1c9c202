package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const assetsTemplateCSV = "name;type\n" +
	"House on Main Street;PROPERTY\n" +
	"Office Building;PROPERTY\n" +
	"Company Car;VEHICLE\n"

const repairsTemplateCSV = "asset_name;date;description;performed_by;notes;cost_cents;status\n" +
	"House on Main Street;2024-01-15;Roof repair;John Smith;Fixed leak in roof;643.36;COMPLETED\n" +
	"Office Building;2024-02-10;Heating maintenance;Mike Johnson;Annual service;150.50;COMPLETED\n" +
	"Company Car;2024-03-05;Oil change;Auto Service;Regular maintenance;75.00;COMPLETED\n"

func (handler *Handler) DownloadAssetsTemplate(c *fiber.Ctx) error {
	return sendCSVTemplate(c, "assets_template.csv", assetsTemplateCSV)
}

func (handler *Handler) DownloadRepairsTemplate(c *fiber.Ctx) error {
	return sendCSVTemplate(c, "repairs_template.csv", repairsTemplateCSV)
}

func sendCSVTemplate(c *fiber.Ctx, filename string, content string) error {
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.SendString(content)
}
