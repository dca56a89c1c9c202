package models

import "time"

const (
	RepairStatusPlanned   = "PLANNED"
	RepairStatusCompleted = "COMPLETED"
)

// Repair belongs to exactly one asset and is removed together with it.
// Ownership for authorization purposes is the parent asset's owner; the
// repair only records who created it.
type Repair struct {
	ID          uint      `gorm:"primaryKey"`
	PropertyID  uint      `gorm:"not null;index"`
	Date        time.Time `gorm:"not null"`
	Description string    `gorm:"not null"`
	PerformedBy string    `gorm:"not null"`
	Notes       string
	CostCents   int64     `gorm:"not null;default:0"`
	Status      string    `gorm:"not null;default:COMPLETED"`
	CreatedByID *uint
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

func ValidRepairStatus(status string) bool {
	return status == RepairStatusPlanned || status == RepairStatusCompleted
}
