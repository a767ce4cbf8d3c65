package models

// Expense represents a single dated spending transaction against one category.
// Date is a calendar date string (YYYY-MM-DD); all month arithmetic in the
// report views works on its "YYYY-MM" prefix.
type Expense struct {
	Base
	Amount      float64 `gorm:"not null" json:"amount"`
	CategoryID  string  `gorm:"type:uuid;not null;index" json:"category_id"`
	Description string  `json:"description"`
	Date        string  `gorm:"not null;index" json:"date"`
}

// Month returns the "YYYY-MM" prefix of the expense date.
func (e *Expense) Month() string {
	if len(e.Date) < 7 {
		return e.Date
	}
	return e.Date[:7]
}
