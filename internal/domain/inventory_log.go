package domain

import (
	"strings"
	"time"
)

type LogType string

const (
	LogImport     LogType = "import"
	LogExport     LogType = "export"
	LogAdjustment LogType = "adjustment"
)

func ParseLogType(s string) (LogType, error) {
	switch strings.ToLower(s) {
	case string(LogImport):
		return LogImport, nil
	case string(LogExport):
		return LogExport, nil
	case string(LogAdjustment):
		return LogAdjustment, nil
	}
	return "", Validationf("unknown inventory log type: %q", s)
}

// InventoryLog is an append-only audit row; writing one also applies the
// signed delta to the product's live quantity in the same transaction.
type InventoryLog struct {
	ID             uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	ProductID      uint64    `json:"productId" gorm:"not null;index"`
	Product        *Product  `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	ChangeQuantity int       `json:"changeQuantity" gorm:"not null"`
	LogType        LogType   `json:"logType" gorm:"size:20;not null"`
	Notes          string    `json:"notes" gorm:"type:text"`
	CreatedAt      time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
