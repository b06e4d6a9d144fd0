package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Leave struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ExecutiveID uuid.UUID `gorm:"type:uuid;not null;index"`
	ManagerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	// Day-normalized, inclusive bounds.
	StartDate time.Time `gorm:"type:date;not null"`
	EndDate   time.Time `gorm:"type:date;not null"`
	Reason    string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'PENDING'"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Leave) TableName() string {
	return "leaves"
}

// IsTerminal reports whether the leave can no longer change status.
func (l Leave) IsTerminal() bool {
	return l.Status != StatusPending
}
