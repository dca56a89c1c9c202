package db

import (
	"strings"
	"time"

	"github.com/terraincognita07/fixtrack/internal/models"
	"gorm.io/gorm"
)

type RepairRepository struct {
	database *gorm.DB
}

func NewRepairRepository(database *gorm.DB) *RepairRepository {
	return &RepairRepository{database: database}
}

// RepairListFilter carries the optional list/export predicates. Zero values
// mean "no restriction"; every set field becomes one more ANDed clause.
type RepairListFilter struct {
	PropertyID *uint
	Status     string
	Year       *int
}

// RepairExportRow joins in the parent asset's name and type for spreadsheet
// rendering.
type RepairExportRow struct {
	ID          uint      `gorm:"column:id"`
	AssetName   string    `gorm:"column:asset_name"`
	AssetType   string    `gorm:"column:asset_type"`
	Date        time.Time `gorm:"column:date"`
	Description string    `gorm:"column:description"`
	PerformedBy string    `gorm:"column:performed_by"`
	Notes       string    `gorm:"column:notes"`
	CostCents   int64     `gorm:"column:cost_cents"`
	Status      string    `gorm:"column:status"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

var repairSortColumns = map[string]string{
	"date":  "repairs.date",
	"asset": "assets.name",
}

// scoped joins repairs to their parent asset; ownership of a repair is the
// owner of that asset, so a non-nil owner restricts through the join.
func (repo *RepairRepository) scoped(ownerID *uint) *gorm.DB {
	query := repo.database.Model(&models.Repair{}).
		Joins("JOIN assets ON assets.id = repairs.property_id")
	if ownerID != nil {
		query = query.Where("assets.owner_id = ?", *ownerID)
	}
	return query
}

func applyRepairFilter(query *gorm.DB, filter RepairListFilter) *gorm.DB {
	if filter.PropertyID != nil {
		query = query.Where("repairs.property_id = ?", *filter.PropertyID)
	}
	if filter.Status != "" {
		query = query.Where("repairs.status = ?", filter.Status)
	}
	if filter.Year != nil {
		yearStart := time.Date(*filter.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
		query = query.Where("repairs.date >= ? AND repairs.date < ?", yearStart, yearStart.AddDate(1, 0, 0))
	}
	return query
}

func (repo *RepairRepository) ListFiltered(ownerID *uint, filter RepairListFilter, sortBy string, sortOrder string) ([]models.Repair, error) {
	query := applyRepairFilter(repo.scoped(ownerID), filter).Select("repairs.*")

	column, ok := repairSortColumns[sortBy]
	if !ok {
		column = repairSortColumns["date"]
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}

	repairs := make([]models.Repair, 0)
	if err := query.Order(column + " " + direction).Find(&repairs).Error; err != nil {
		return nil, err
	}
	return repairs, nil
}

// FindScoped reports gorm.ErrRecordNotFound for both missing and
// out-of-scope repairs.
func (repo *RepairRepository) FindScoped(repairID uint, ownerID *uint) (models.Repair, error) {
	var repair models.Repair
	if err := repo.scoped(ownerID).Select("repairs.*").
		Where("repairs.id = ?", repairID).First(&repair).Error; err != nil {
		return models.Repair{}, err
	}
	return repair, nil
}

func (repo *RepairRepository) Create(repair *models.Repair) error {
	return repo.database.Create(repair).Error
}

func (repo *RepairRepository) UpdateByID(repairID uint, updates map[string]any) error {
	return repo.database.Model(&models.Repair{}).Where("id = ?", repairID).Updates(updates).Error
}

func (repo *RepairRepository) DeleteByID(repairID uint) error {
	return repo.database.Delete(&models.Repair{}, repairID).Error
}

func (repo *RepairRepository) FindByID(repairID uint) (models.Repair, error) {
	var repair models.Repair
	if err := repo.database.First(&repair, repairID).Error; err != nil {
		return models.Repair{}, err
	}
	return repair, nil
}

func (repo *RepairRepository) CountForAsset(assetID uint) (int64, error) {
	var count int64
	if err := repo.database.Model(&models.Repair{}).
		Where("property_id = ?", assetID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *RepairRepository) ListForExport(ownerID *uint, filter RepairListFilter) ([]RepairExportRow, error) {
	query := applyRepairFilter(repo.scoped(ownerID), filter).
		Select("repairs.id, assets.name AS asset_name, assets.type AS asset_type, " +
			"repairs.date, repairs.description, repairs.performed_by, coalesce(repairs.notes, '') AS notes, " +
			"repairs.cost_cents, repairs.status, repairs.created_at")

	rows := make([]RepairExportRow, 0)
	if err := query.Order("repairs.date DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
