package models

// Default display values applied when a category is created without them,
// and substituted in report views when an expense references a category
// that has since been deleted.
const (
	DefaultCategoryColor = "#3b82f6"
	DefaultCategoryIcon  = "💰"
	UnknownCategoryName  = "Unknown"
)

// Category represents a user-defined spending bucket
type Category struct {
	Base
	Name  string `gorm:"not null" json:"name"`
	Color string `gorm:"not null" json:"color"`
	Icon  string `gorm:"not null" json:"icon"`
}
