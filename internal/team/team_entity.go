package team

import (
	"time"

	"github.com/google/uuid"
)

type Team struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(120);not null;uniqueIndex:uq_teams_manager_name"`
	ManagerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teams_manager_name"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Team) TableName() string {
	return "teams"
}
