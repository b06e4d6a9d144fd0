package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string     `gorm:"type:varchar(120);not null"`
	Email        string     `gorm:"type:varchar(255);not null;uniqueIndex:uq_users_email"`
	PasswordHash string     `gorm:"column:password_hash;type:varchar(100);not null"`
	Role         string     `gorm:"type:varchar(20);not null;default:'EXECUTIVE'"`
	ManagerID    *uuid.UUID `gorm:"type:uuid;index"`
	TeamID       *uuid.UUID `gorm:"type:uuid;index"`
	IsActive     bool       `gorm:"not null;default:true"`

	ProfilePicture *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
