package models

// ExpenseCategory represents a node in the expense category hierarchy.
// Root nodes have no parent; subcategories reference their parent. The sync
// pipeline creates nodes lazily from spreadsheet values, so the tree is never
// edited by hand. Depth is unbounded in the schema but category → subcategory
// is the only shape the sheet produces.
type ExpenseCategory struct {
	Base
	Name        string  `gorm:"not null;uniqueIndex:idx_category_name_parent" json:"name"`
	ParentID    *string `gorm:"type:uuid;uniqueIndex:idx_category_name_parent" json:"parent_id,omitempty"`
	IsRecurring bool    `gorm:"not null;default:false" json:"is_recurring"`

	// Relationships
	Parent   *ExpenseCategory  `gorm:"foreignKey:ParentID" json:"parent,omitempty"`
	Children []ExpenseCategory `gorm:"foreignKey:ParentID" json:"children,omitempty"`
	Expenses []Expense         `gorm:"foreignKey:CategoryID" json:"expenses,omitempty"`
}

// UncategorizedName is the fallback root used when a spreadsheet row carries
// no category value. Keeping it as a real node means report consumers never
// see a missing key.
const UncategorizedName = "Uncategorized"
