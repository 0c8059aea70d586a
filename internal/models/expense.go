package models

import "time"

// ExpenseType classifies an expense for reporting. CAPEX is excluded from
// P&L but included in Cashflow; OPEX and COGS appear in both.
type ExpenseType string

const (
	ExpenseTypeCAPEX ExpenseType = "CAPEX"
	ExpenseTypeOPEX  ExpenseType = "OPEX"
	ExpenseTypeCOGS  ExpenseType = "COGS"
)

// Expense represents an expense document synced from the spreadsheet.
// Amount is the base amount excluding VAT; GrandTotal = Amount + VAT.
type Expense struct {
	Base
	RowID       string      `gorm:"uniqueIndex;not null" json:"row_id"`
	DocNo       string      `gorm:"not null;index" json:"doc_no"`
	DocDate     time.Time   `gorm:"not null;index" json:"doc_date"`
	OverdueDate *time.Time  `json:"overdue_date,omitempty"`
	Supplier    string      `gorm:"not null" json:"supplier"`
	Currency    string      `gorm:"type:varchar(3);not null;default:'THB'" json:"currency"`
	Amount      float64     `gorm:"type:numeric(12,2);not null" json:"amount"`
	VAT         float64     `gorm:"type:numeric(12,2);not null;default:0" json:"vat"`
	GrandTotal  float64     `gorm:"type:numeric(12,2);not null" json:"grand_total"`
	Status      DocStatus   `gorm:"not null;default:'Pending';index" json:"status"`
	Type        ExpenseType `gorm:"not null;index" json:"type"`
	Location    string      `gorm:"not null;index" json:"location"`
	CategoryID  string      `gorm:"type:uuid;not null;index" json:"category_id"`

	// Recurrence
	IsRecurring      bool    `gorm:"not null;default:false;index" json:"is_recurring"`
	RecurrencePeriod *string `json:"recurrence_period,omitempty"`

	CreatedBy string `json:"created_by,omitempty"`
	Notes     string `json:"notes,omitempty"`

	// Relationships
	Category ExpenseCategory `gorm:"foreignKey:CategoryID" json:"category"`
}
