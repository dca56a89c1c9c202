package db

import (
	"time"

	"github.com/terraincognita07/fixtrack/internal/models"
	"gorm.io/gorm"
)

type AssetRepository struct {
	database *gorm.DB
}

func NewAssetRepository(database *gorm.DB) *AssetRepository {
	return &AssetRepository{database: database}
}

// AssetExportRow is the flattened projection rendered into spreadsheet
// exports; owner columns come from a left join so ownerless assets keep
// empty cells.
type AssetExportRow struct {
	ID         uint      `gorm:"column:id"`
	Name       string    `gorm:"column:name"`
	Type       string    `gorm:"column:type"`
	OwnerName  string    `gorm:"column:owner_name"`
	OwnerEmail string    `gorm:"column:owner_email"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

// scoped restricts an asset query to the given owner. A nil owner means no
// restriction (admin callers).
func (repo *AssetRepository) scoped(ownerID *uint) *gorm.DB {
	query := repo.database.Model(&models.Asset{})
	if ownerID != nil {
		query = query.Where("assets.owner_id = ?", *ownerID)
	}
	return query
}

func (repo *AssetRepository) ListFiltered(ownerID *uint, assetType string, search string) ([]models.Asset, error) {
	query := repo.scoped(ownerID)
	if assetType != "" {
		query = query.Where("assets.type = ?", assetType)
	}
	if search != "" {
		query = query.Where("assets.name LIKE ?", "%"+search+"%")
	}

	assets := make([]models.Asset, 0)
	if err := query.Order("assets.created_at DESC").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// FindScoped returns gorm.ErrRecordNotFound both for ids that do not exist
// and for ids outside the owner scope, so callers cannot tell the two apart.
func (repo *AssetRepository) FindScoped(assetID uint, ownerID *uint) (models.Asset, error) {
	var asset models.Asset
	if err := repo.scoped(ownerID).Where("assets.id = ?", assetID).First(&asset).Error; err != nil {
		return models.Asset{}, err
	}
	return asset, nil
}

func (repo *AssetRepository) Create(asset *models.Asset) error {
	return repo.database.Create(asset).Error
}

func (repo *AssetRepository) UpdateByID(assetID uint, updates map[string]any) error {
	return repo.database.Model(&models.Asset{}).Where("id = ?", assetID).Updates(updates).Error
}

// DeleteByID removes the asset; repairs referencing it go with it through
// the ON DELETE CASCADE foreign key.
func (repo *AssetRepository) DeleteByID(assetID uint) error {
	return repo.database.Delete(&models.Asset{}, assetID).Error
}

func (repo *AssetRepository) ExistsNameForOwner(name string, ownerID uint) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Asset{}).
		Where("name = ? AND owner_id = ?", name, ownerID).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *AssetRepository) ListForExport(ownerID *uint, assetType string) ([]AssetExportRow, error) {
	query := repo.database.Model(&models.Asset{}).
		Select("assets.id, assets.name, assets.type, " +
			"coalesce(users.name, '') AS owner_name, coalesce(users.email, '') AS owner_email, " +
			"assets.created_at, assets.updated_at").
		Joins("LEFT JOIN users ON users.id = assets.owner_id")
	if ownerID != nil {
		query = query.Where("assets.owner_id = ?", *ownerID)
	}
	if assetType != "" {
		query = query.Where("assets.type = ?", assetType)
	}

	rows := make([]AssetExportRow, 0)
	if err := query.Order("assets.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
