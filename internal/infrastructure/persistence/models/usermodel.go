package models

import "github.com/orris-inc/helpdesk/internal/shared/constants"

// UserModel represents the database persistence model for users
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:100;not null"`
	Email        string `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Service      string `gorm:"size:100;not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return constants.TableUsers
}
