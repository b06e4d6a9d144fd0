package target

import (
	"time"

	"github.com/google/uuid"
)

const (
	ProgressAchieved    = "Achieved"
	ProgressNotAchieved = "Not Achieved"
	ProgressInProgress  = "In Progress"
)

type Target struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ExecutiveID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_targets_executive_period"`
	ManagerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount      float64   `gorm:"type:numeric(14,2);not null"`
	// Day-normalized, inclusive bounds.
	StartDate time.Time `gorm:"type:date;not null;uniqueIndex:uq_targets_executive_period"`
	EndDate   time.Time `gorm:"type:date;not null;uniqueIndex:uq_targets_executive_period"`
	// Display label derived from the dates, regenerated on every change.
	Period string `gorm:"type:varchar(60);not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Target) TableName() string {
	return "targets"
}

// PeriodLabel renders the display label for a date pair.
func PeriodLabel(start, end time.Time) string {
	return start.Format("Jan 2, 2006") + " - " + end.Format("Jan 2, 2006")
}

// Overlaps reports whether [t.StartDate, t.EndDate] intersects [start, end].
// Both ranges are inclusive: existing.start <= newEnd AND existing.end >= newStart.
func (t Target) Overlaps(start, end time.Time) bool {
	return !t.StartDate.After(end) && !t.EndDate.Before(start)
}

// ProgressStatus derives the target's state. Achievement wins over expiry:
// a target met on its last day stays Achieved forever. A zero amount is
// trivially achieved.
func ProgressStatus(amount, achieved float64, endDate, now time.Time) string {
	if achieved >= amount {
		return ProgressAchieved
	}
	if now.After(endDate) {
		return ProgressNotAchieved
	}
	return ProgressInProgress
}
