package domain

import (
	"strings"
	"time"
)

type CategoryStatus string

const (
	CategoryActive   CategoryStatus = "active"
	CategoryInactive CategoryStatus = "inactive"
)

func ParseCategoryStatus(s string) (CategoryStatus, error) {
	switch strings.ToLower(s) {
	case string(CategoryActive):
		return CategoryActive, nil
	case string(CategoryInactive):
		return CategoryInactive, nil
	}
	return "", Validationf("unknown category status: %q", s)
}

type Category struct {
	ID          uint64         `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string         `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Description string         `json:"description" gorm:"type:text"`
	Status      CategoryStatus `json:"status" gorm:"size:20;not null;default:'active'"`
	CreatedAt   time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
}
