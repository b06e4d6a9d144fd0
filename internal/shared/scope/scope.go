package scope

import "gorm.io/gorm"

// ByManager restricts a query to rows owned by one manager. Every team-facing
// read path must apply it: a manager may never see another manager's rows.
func ByManager(managerID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("manager_id = ?", managerID)
	}
}

// ByExecutive restricts a query to one executive's own rows.
func ByExecutive(executiveID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("executive_id = ?", executiveID)
	}
}
