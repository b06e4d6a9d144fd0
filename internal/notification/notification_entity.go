package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeLeave = "leave"
	TypeChat  = "chat"
)

type Notification struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user_created"`
	Message string    `gorm:"type:text;not null"`
	Link    string    `gorm:"type:varchar(255);not null"`
	Type    string    `gorm:"type:varchar(20);not null"`
	IsRead  bool      `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"index:idx_notifications_user_created"`
	UpdatedAt time.Time
}

func (Notification) TableName() string {
	return "notifications"
}
