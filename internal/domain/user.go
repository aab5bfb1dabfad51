package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func ParseRole(s string) (Role, error) {
	switch strings.ToLower(s) {
	case string(RoleAdmin):
		return RoleAdmin, nil
	case string(RoleUser):
		return RoleUser, nil
	}
	return "", Validationf("unknown role: %q", s)
}

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

func ParseUserStatus(s string) (UserStatus, error) {
	switch strings.ToLower(s) {
	case string(UserActive):
		return UserActive, nil
	case string(UserInactive):
		return UserInactive, nil
	}
	return "", Validationf("unknown user status: %q", s)
}

type User struct {
	ID        uint64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string     `json:"name" gorm:"size:100;not null"`
	Username  string     `json:"username" gorm:"size:50;not null;uniqueIndex"`
	Email     string     `json:"email" gorm:"size:100;not null;uniqueIndex"`
	Phone     string     `json:"phone" gorm:"size:20"`
	Address   string     `json:"address" gorm:"type:text"`
	Password  string     `json:"-" gorm:"size:255;not null"`
	Role      Role       `json:"role" gorm:"size:20;not null;default:'user'"`
	Status    UserStatus `json:"status" gorm:"size:20;not null;default:'active'"`
	CreatedAt time.Time  `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"autoUpdateTime"`
}
