package services

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/fixtrack/internal/models"
)

// flexibleDateLayouts is probed in order; the first layout that parses wins.
// Ambiguous numeric dates therefore resolve day-first before month-first.
var flexibleDateLayouts = []string{
	"2006-01-02",
	"02.01.2006",
	"02/01/2006",
	"02-01-2006",
	"01/02/2006",
	"2006.01.02",
}

const flexibleDateFormatNames = "YYYY-MM-DD, DD.MM.YYYY, DD/MM/YYYY, DD-MM-YYYY, MM/DD/YYYY, YYYY.MM.DD"

// ParseFlexibleDate accepts the spreadsheet date spellings seen in real
// exports.
func ParseFlexibleDate(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range flexibleDateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q (expected one of %s)", trimmed, flexibleDateFormatNames)
}

var costSymbolReplacer = strings.NewReplacer("$", "", "€", "", "₽", "", "£", "", "¥", "", " ", "", ",", ".")

// CoerceCostCents converts a human-entered cost cell into integer cents.
// Values written with a currency symbol or a decimal point are whole
// currency units; bare integers are assumed to be units when small and
// cents when large, which matches how mixed historical exports were keyed
// in.
func CoerceCostCents(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, nil
	}

	hadSymbol := strings.ContainsAny(trimmed, "$€₽£¥")
	cleaned := costSymbolReplacer.Replace(trimmed)
	if cleaned == "" {
		return 0, fmt.Errorf("invalid cost value: %q", trimmed)
	}

	if hadSymbol || strings.Contains(cleaned, ".") {
		amount, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid cost value: %q", trimmed)
		}
		cents := int64(math.Round(amount * 100))
		if cents < 0 {
			return 0, fmt.Errorf("cost cannot be negative: %q", trimmed)
		}
		return cents, nil
	}

	number, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid cost value: %q", trimmed)
	}
	if number < 0 {
		return 0, fmt.Errorf("cost cannot be negative: %q", trimmed)
	}
	if number > 0 && number < 10000 {
		return number * 100, nil
	}
	return number, nil
}

// headerIndex maps column names to their position in the header row. Names
// are matched case-sensitively; only surrounding whitespace is forgiven.
type headerIndex map[string]int

func buildHeaderIndex(header []string) headerIndex {
	index := make(headerIndex, len(header))
	for position, name := range header {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, seen := index[trimmed]; !seen {
			index[trimmed] = position
		}
	}
	return index
}

// cell returns the trimmed value of the named column, distinguishing an
// absent column from a present-but-empty cell.
func (index headerIndex) cell(record []string, column string) (string, bool) {
	position, ok := index[column]
	if !ok || position >= len(record) {
		return "", false
	}
	return strings.TrimSpace(record[position]), true
}

var errRowFieldMissing = errors.New("missing required field")

type assetImportRow struct {
	Name string
	Type string
}

func parseAssetImportRow(index headerIndex, record []string) (assetImportRow, error) {
	name, _ := index.cell(record, "name")
	if name == "" {
		return assetImportRow{}, fmt.Errorf("%w: name", errRowFieldMissing)
	}
	assetType, _ := index.cell(record, "type")
	if assetType == "" {
		return assetImportRow{}, fmt.Errorf("%w: type", errRowFieldMissing)
	}
	return assetImportRow{Name: name, Type: assetType}, nil
}

type repairImportRow struct {
	AssetName   string
	Date        time.Time
	Description string
	PerformedBy string
	Notes       string
	CostCents   int64
	Status      string
}

func parseRepairImportRow(index headerIndex, record []string) (repairImportRow, error) {
	assetName, _ := index.cell(record, "asset_name")
	if assetName == "" {
		return repairImportRow{}, fmt.Errorf("%w: asset_name", errRowFieldMissing)
	}

	dateValue, _ := index.cell(record, "date")
	if dateValue == "" {
		return repairImportRow{}, fmt.Errorf("%w: date", errRowFieldMissing)
	}
	date, err := ParseFlexibleDate(dateValue)
	if err != nil {
		return repairImportRow{}, err
	}

	description, _ := index.cell(record, "description")
	if description == "" {
		return repairImportRow{}, fmt.Errorf("%w: description", errRowFieldMissing)
	}
	performedBy, _ := index.cell(record, "performed_by")
	if performedBy == "" {
		return repairImportRow{}, fmt.Errorf("%w: performed_by", errRowFieldMissing)
	}

	notes, _ := index.cell(record, "notes")

	costValue, _ := index.cell(record, "cost_cents")
	cost, err := CoerceCostCents(costValue)
	if err != nil {
		return repairImportRow{}, err
	}

	status, present := index.cell(record, "status")
	if !present || status == "" {
		status = models.RepairStatusCompleted
	} else {
		status = strings.ToUpper(status)
		if !models.ValidRepairStatus(status) {
			return repairImportRow{}, fmt.Errorf("invalid status: %q (expected PLANNED or COMPLETED)", status)
		}
	}

	return repairImportRow{
		AssetName:   assetName,
		Date:        date,
		Description: description,
		PerformedBy: performedBy,
		Notes:       notes,
		CostCents:   cost,
		Status:      status,
	}, nil
}
