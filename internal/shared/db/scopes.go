package db

import (
	"gorm.io/gorm"
)

// OwnedBy is a GORM scope that restricts a query to rows of a single owner.
// Every table in this service carries an owner_id column; repositories apply
// this scope on all reads and writes so cross-owner rows are never visible.
func OwnedBy(ownerID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("owner_id = ?", ownerID)
	}
}

// ActiveOnly filters out soft-deactivated equipment rows.
func ActiveOnly() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("active = ?", true)
	}
}
