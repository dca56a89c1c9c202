package models

import "time"

// Asset is a trackable physical item (property, vehicle, etc.). OwnerID is a
// weak reference: deleting the owning user clears it instead of deleting the
// asset.
type Asset struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	Type      string    `gorm:"not null"`
	OwnerID   *uint     `gorm:"index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
