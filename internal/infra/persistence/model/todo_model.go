package model

import (
	"time"

	"github.com/google/uuid"
)

// TodoModel mirrors the 'todos' table.
type TodoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Title       string    `gorm:"type:text;not null"`
	Description string    `gorm:"type:text;not null;default:''"`
	Completed   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Comments []CommentModel `gorm:"foreignKey:TodoID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (TodoModel) TableName() string {
	return "todos"
}
