package api

import (
	"bytes"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

func fetchExportSheet(t *testing.T, app *fiber.App, path string, token string, sheet string) [][]string {
	t.Helper()

	response, err := app.Test(jsonRequest(t, http.MethodGet, path, token, nil), -1)
	if err != nil {
		t.Fatalf("export request failed: %v", err)
	}
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("export %s: expected 200, got %d", path, response.StatusCode)
	}
	if contentType := response.Header.Get(fiber.HeaderContentType); !strings.Contains(contentType, "spreadsheetml") {
		t.Fatalf("unexpected content type %q", contentType)
	}
	if disposition := response.Header.Get(fiber.HeaderContentDisposition); !strings.Contains(disposition, "attachment") {
		t.Fatalf("unexpected content disposition %q", disposition)
	}

	var body bytes.Buffer
	if _, err := body.ReadFrom(response.Body); err != nil {
		t.Fatalf("read export body: %v", err)
	}
	workbook, err := excelize.OpenReader(&body)
	if err != nil {
		t.Fatalf("open export workbook: %v", err)
	}
	defer workbook.Close()

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		t.Fatalf("read sheet %s: %v", sheet, err)
	}
	return rows
}

func TestExportAssetsWorkbook(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "export@example.com", "secret123")
	createAssetViaAPI(t, app, token, "Export Asset", "PROPERTY")

	rows := fetchExportSheet(t, app, "/api/export/assets", token, "Assets")
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][1] != "Name" || rows[0][4] != "Owner Email" {
		t.Fatalf("unexpected header row %v", rows[0])
	}
	if rows[1][1] != "Export Asset" || rows[1][4] != "export@example.com" {
		t.Fatalf("unexpected data row %v", rows[1])
	}
}

func TestExportRepairsWorkbook(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerAndLogin(t, app, "repairexport@example.com", "secret123")
	assetID := createAssetViaAPI(t, app, token, "Maintained Asset", "VEHICLE")
	createRepairViaAPI(t, app, token, assetID, "2024-01-15")

	rows := fetchExportSheet(t, app, "/api/export/repairs", token, "Repairs")
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if rows[0][1] != "Asset Name" || rows[0][7] != "Cost (cents)" {
		t.Fatalf("unexpected header row %v", rows[0])
	}
	if rows[1][1] != "Maintained Asset" || rows[1][3] != "2024-01-15" {
		t.Fatalf("unexpected data row %v", rows[1])
	}
}

func TestExportScopedToCaller(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	registerTestUser(t, app, "admin@example.com", "secret123", "Admin")
	ownerToken := registerAndLogin(t, app, "owner@example.com", "secret123")
	outsiderToken := registerAndLogin(t, app, "outsider@example.com", "secret123")

	createAssetViaAPI(t, app, ownerToken, "Owned Asset", "PROPERTY")

	rows := fetchExportSheet(t, app, "/api/export/assets", outsiderToken, "Assets")
	if len(rows) != 1 {
		t.Fatalf("outsider export must only contain the header, got %d rows", len(rows))
	}

	adminToken := loginTestUser(t, app, "admin@example.com", "secret123")
	adminRows := fetchExportSheet(t, app, "/api/export/assets", adminToken, "Assets")
	if len(adminRows) != 2 {
		t.Fatalf("admin export expected header + 1 row, got %d", len(adminRows))
	}
}
