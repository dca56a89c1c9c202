package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Assets   *AssetRepository
	Repairs  *RepairRepository
	Settings *SettingsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Assets:   NewAssetRepository(database),
		Repairs:  NewRepairRepository(database),
		Settings: NewSettingsRepository(database),
	}
}
