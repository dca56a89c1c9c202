package api

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/fixtrack/internal/db"
	"github.com/xuri/excelize/v2"
)

const (
	exportMaxColumnWidth = 50
	exportTimeLayout     = "2006-01-02 15:04:05"
)

var assetExportHeaders = []string{"ID", "Name", "Type", "Owner Name", "Owner Email", "Created At", "Updated At"}

var repairExportHeaders = []string{"ID", "Asset Name", "Asset Type", "Date", "Description", "Performed By", "Notes", "Cost (cents)", "Status", "Created At"}

// buildExportWorkbook renders one sheet with a bold, grey-filled header row
// and columns sized to their longest cell.
func buildExportWorkbook(sheetName string, headers []string, rows [][]string) (*bytes.Buffer, error) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	if err := workbook.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := workbook.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"CCCCCC"}},
	})
	if err != nil {
		return nil, err
	}

	widths := make([]int, len(headers))
	for column, header := range headers {
		cell, err := excelize.CoordinatesToCellName(column+1, 1)
		if err != nil {
			return nil, err
		}
		if err := workbook.SetCellValue(sheetName, cell, header); err != nil {
			return nil, err
		}
		if err := workbook.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
		widths[column] = len(header)
	}

	for rowIndex, row := range rows {
		for column, value := range row {
			if column >= len(headers) {
				break
			}
			cell, err := excelize.CoordinatesToCellName(column+1, rowIndex+2)
			if err != nil {
				return nil, err
			}
			if err := workbook.SetCellValue(sheetName, cell, value); err != nil {
				return nil, err
			}
			if len(value) > widths[column] {
				widths[column] = len(value)
			}
		}
	}

	for column := range headers {
		name, err := excelize.ColumnNumberToName(column + 1)
		if err != nil {
			return nil, err
		}
		width := widths[column] + 2
		if width > exportMaxColumnWidth {
			width = exportMaxColumnWidth
		}
		if err := workbook.SetColWidth(sheetName, name, name, float64(width)); err != nil {
			return nil, err
		}
	}

	return workbook.WriteToBuffer()
}

func assetExportCells(rows []db.AssetExportRow) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			strconv.FormatUint(uint64(row.ID), 10),
			row.Name,
			row.Type,
			row.OwnerName,
			row.OwnerEmail,
			row.CreatedAt.Format(exportTimeLayout),
			row.UpdatedAt.Format(exportTimeLayout),
		})
	}
	return cells
}

func repairExportCells(rows []db.RepairExportRow) [][]string {
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			strconv.FormatUint(uint64(row.ID), 10),
			row.AssetName,
			row.AssetType,
			row.Date.Format(jsonDateLayout),
			row.Description,
			row.PerformedBy,
			row.Notes,
			strconv.FormatInt(row.CostCents, 10),
			row.Status,
			row.CreatedAt.Format(exportTimeLayout),
		})
	}
	return cells
}

func buildExportFilename(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_export_%s.xlsx", prefix, now.Format("20060102_150405"))
}

func setExportAttachmentHeaders(c *fiber.Ctx, filename string) {
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
