package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusHalfday = "Halfday"
	StatusLeave   = "Leave"
)

// AutoAbsentReason marks rows written by the daily reconciliation sweep.
const AutoAbsentReason = "Auto-marked: no attendance recorded."

type Attendance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ExecutiveID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_executive_date"`
	// Always day-normalized to midnight UTC before it reaches the database.
	AttendanceDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_executive_date"`
	Status         string    `gorm:"type:varchar(20);not null"`
	Reason         string    `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Attendance) TableName() string {
	return "attendances"
}

func IsValidStatus(s string) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfday, StatusLeave:
		return true
	}
	return false
}
