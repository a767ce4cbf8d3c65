package models

// Budget represents a recurring monthly spending cap for one category.
// Recurring means the same amount applies to every calendar month; there is
// no per-month budget record. At most one budget exists per category,
// enforced at write time by the budget service.
type Budget struct {
	Base
	CategoryID string  `gorm:"type:uuid;not null;index" json:"category_id"`
	Amount     float64 `gorm:"not null" json:"amount"`
	Recurring  bool    `gorm:"not null;default:true" json:"recurring"`
}
