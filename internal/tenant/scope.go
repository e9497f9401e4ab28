package tenant

import "gorm.io/gorm"

// Scope restricts a query to rows owned by companyID.
func Scope(companyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("company_id = ?", companyID)
	}
}

// PropertyScope restricts a query to one property. An empty propertyID leaves
// the query untouched so list filters can pass it through.
func PropertyScope(propertyID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if propertyID == "" {
			return db
		}
		return db.Where("property_id = ?", propertyID)
	}
}
