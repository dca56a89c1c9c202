package services

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terraincognita07/fixtrack/internal/db"
	"github.com/terraincognita07/fixtrack/internal/models"
	"gorm.io/gorm"
)

// ErrMalformedPayload means the upload could not be read as semicolon
// delimited CSV at all; nothing from it is committed.
var ErrMalformedPayload = errors.New("malformed CSV payload")

// ImportResult summarizes one upload. Failed rows are skipped, successful
// rows around them are still committed.
type ImportResult struct {
	Total   int      `json:"total_rows"`
	Success int      `json:"successful_imports"`
	Failed  int      `json:"failed_imports"`
	Errors  []string `json:"errors"`
}

type ImportService struct {
	database *gorm.DB
}

func NewImportService(database *gorm.DB) *ImportService {
	return &ImportService{database: database}
}

// ImportAssets reads a semicolon-delimited CSV with name and type columns
// and creates one asset per valid row, owned by the importing user.
func (service *ImportService) ImportAssets(user models.User, raw []byte) (ImportResult, error) {
	text, err := DecodeImportPayload(raw)
	if err != nil {
		return ImportResult{}, err
	}

	header, records, err := readImportRecords(text)
	if err != nil {
		return ImportResult{}, err
	}
	index := buildHeaderIndex(header)

	result := ImportResult{Errors: make([]string, 0)}
	err = service.database.Transaction(func(tx *gorm.DB) error {
		assets := db.NewAssetRepository(tx)
		for position, record := range records {
			rowNumber := position + 2
			result.Total++

			row, err := parseAssetImportRow(index, record)
			if err != nil {
				result.recordFailure(rowNumber, err)
				continue
			}

			ownerID := user.ID
			exists, err := assets.ExistsNameForOwner(row.Name, ownerID)
			if err != nil {
				return err
			}
			if exists {
				result.recordFailure(rowNumber, fmt.Errorf("asset %q already exists", row.Name))
				continue
			}

			asset := models.Asset{Name: row.Name, Type: row.Type, OwnerID: &ownerID}
			if err := assets.Create(&asset); err != nil {
				return err
			}
			result.Success++
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}
	return result, nil
}

// ImportRepairs reads repair rows that reference their parent asset by name.
// The name lookup only covers assets the importing user owns; admins get no
// wider lookup here.
func (service *ImportService) ImportRepairs(user models.User, raw []byte) (ImportResult, error) {
	text, err := DecodeImportPayload(raw)
	if err != nil {
		return ImportResult{}, err
	}

	header, records, err := readImportRecords(text)
	if err != nil {
		return ImportResult{}, err
	}
	index := buildHeaderIndex(header)

	result := ImportResult{Errors: make([]string, 0)}
	err = service.database.Transaction(func(tx *gorm.DB) error {
		assets := db.NewAssetRepository(tx)
		repairs := db.NewRepairRepository(tx)

		ownerID := user.ID
		owned, err := assets.ListFiltered(&ownerID, "", "")
		if err != nil {
			return err
		}
		assetIDsByName := make(map[string]uint, len(owned))
		for _, asset := range owned {
			assetIDsByName[asset.Name] = asset.ID
		}

		for position, record := range records {
			rowNumber := position + 2
			result.Total++

			row, err := parseRepairImportRow(index, record)
			if err != nil {
				result.recordFailure(rowNumber, err)
				continue
			}

			assetID, known := assetIDsByName[row.AssetName]
			if !known {
				result.recordFailure(rowNumber, fmt.Errorf("asset %q not found", row.AssetName))
				continue
			}

			creatorID := user.ID
			repair := models.Repair{
				PropertyID:  assetID,
				Date:        row.Date,
				Description: row.Description,
				PerformedBy: row.PerformedBy,
				Notes:       row.Notes,
				CostCents:   row.CostCents,
				Status:      row.Status,
				CreatedByID: &creatorID,
			}
			if err := repairs.Create(&repair); err != nil {
				return err
			}
			result.Success++
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}
	return result, nil
}

func (result *ImportResult) recordFailure(rowNumber int, err error) {
	result.Failed++
	result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", rowNumber, err.Error()))
}

// readImportRecords splits decoded text into a header row and data records.
func readImportRecords(text string) ([]string, [][]string, error) {
	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("%w: file is empty", ErrMalformedPayload)
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}

	records := make([][]string, 0)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrMalformedPayload, err)
		}
		records = append(records, record)
	}
	return header, records, nil
}
