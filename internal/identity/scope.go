package identity

import "gorm.io/gorm"

// ForDistrict returns a GORM scope that filters by district_id.
func ForDistrict(districtID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("district_id = ?", districtID)
	}
}
