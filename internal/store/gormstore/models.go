package gormstore

import (
	"time"

	"gorm.io/datatypes"
)

// Configuration mirrors the single-row configurations table.
type Configuration struct {
	ConfigurationID int       `gorm:"primaryKey;autoIncrement:false"`
	Owner           string    `gorm:"not null"`
	RewardAsset     string    `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
}

func (Configuration) TableName() string { return "configurations" }

// ReservationCounter holds the next identifier to allocate.
type ReservationCounter struct {
	Name   string `gorm:"primaryKey"`
	NextID uint64 `gorm:"not null"`
}

func (ReservationCounter) TableName() string { return "reservation_counters" }

// Reservation mirrors the reservations table.
type Reservation struct {
	ReservationID     uint64         `gorm:"primaryKey;autoIncrement:false"`
	Business          string         `gorm:"not null;index:idx_reservations_business"`
	Customer          *string        `gorm:"index:idx_reservations_customer"`
	ScheduledUnixUTC  int64          `gorm:"not null"`
	PartySize         int64          `gorm:"not null"`
	PaymentAmount     int64          `gorm:"not null"`
	PaymentAsset      string         `gorm:"not null"`
	Status            string         `gorm:"type:reservation_status;not null"`
	RewardIssued      bool           `gorm:"not null;default:false"`
	Metadata          datatypes.JSON `gorm:"type:jsonb;not null"`
	PaymentTransferID *string        `gorm:""`
	RewardTransferID  *string        `gorm:""`
	CreatedAt         time.Time      `gorm:"not null"`
	UpdatedAt         time.Time      `gorm:"not null"`
}

func (Reservation) TableName() string { return "reservations" }

// TransferRecord mirrors the transfer_records table: one receipt per event key.
type TransferRecord struct {
	EventKey      string    `gorm:"primaryKey"`
	Kind          string    `gorm:"not null"`
	ReservationID uint64    `gorm:"not null;index:idx_transfer_records_reservation"`
	Asset         string    `gorm:"not null"`
	FromPrincipal string    `gorm:"not null"`
	ToPrincipal   string    `gorm:"not null"`
	Amount        int64     `gorm:"not null"`
	TransferID    string    `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null"`
}

func (TransferRecord) TableName() string { return "transfer_records" }

// Models lists every table managed by the store, in migration order.
func Models() []interface{} {
	return []interface{}{&Configuration{}, &ReservationCounter{}, &Reservation{}, &TransferRecord{}}
}
