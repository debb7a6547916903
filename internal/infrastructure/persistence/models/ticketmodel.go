package models

import "github.com/orris-inc/helpdesk/internal/shared/constants"

type TicketModel struct {
	ID          uint   `gorm:"primaryKey"`
	AuthorID    uint   `gorm:"not null;index"`
	ProductID   uint   `gorm:"not null;index"`
	StatusID    uint   `gorm:"not null;index"`
	Title       string `gorm:"size:200;not null"`
	Description string `gorm:"type:text;not null"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64  `gorm:"autoUpdateTime:milli;not null;index"`

	// No foreign key constraints; cascades are run by the application.
}

func (TicketModel) TableName() string {
	return constants.TableTickets
}

type NoteModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	Text      string `gorm:"type:text;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null;index"`
}

func (NoteModel) TableName() string {
	return constants.TableNotes
}
