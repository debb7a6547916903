package models

import "github.com/orris-inc/helpdesk/internal/shared/constants"

// LookupBase holds the columns every lookup table shares.
type LookupBase struct {
	ID        uint  `gorm:"primaryKey"`
	AuthorID  uint  `gorm:"not null;index"`
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`
}

type ProductModel struct {
	LookupBase
	Device string `gorm:"uniqueIndex;size:100;not null"`
}

func (ProductModel) TableName() string {
	return constants.TableProducts
}

type StatusModel struct {
	LookupBase
	Type string `gorm:"uniqueIndex;size:100;not null"`
}

func (StatusModel) TableName() string {
	return constants.TableStatuses
}

type ServiceModel struct {
	LookupBase
	Name string `gorm:"uniqueIndex;size:100;not null"`
}

func (ServiceModel) TableName() string {
	return constants.TableServices
}

type RoleModel struct {
	LookupBase
	RoleType string `gorm:"uniqueIndex;size:100;not null"`
}

func (RoleModel) TableName() string {
	return constants.TableRoles
}

// LookupRow is the kind-neutral read shape of any lookup table, with the
// natural key selected under one alias.
type LookupRow struct {
	ID         uint
	NaturalKey string
	AuthorID   uint
	CreatedAt  int64
	UpdatedAt  int64
}

// All returns every model for schema migration.
func All() []any {
	return []any{
		&UserModel{},
		&TicketModel{},
		&NoteModel{},
		&ProductModel{},
		&StatusModel{},
		&ServiceModel{},
		&RoleModel{},
	}
}
