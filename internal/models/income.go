package models

import "time"

// DocStatus represents the payment status of a ledger document.
type DocStatus string

const (
	DocStatusPaid      DocStatus = "Paid"
	DocStatusPending   DocStatus = "Pending"
	DocStatusOverdue   DocStatus = "Overdue"
	DocStatusCancelled DocStatus = "Cancelled"
)

// Income represents a sales income document synced from the spreadsheet.
// Amount is the base amount excluding VAT; GrandTotal = Amount + VAT.
type Income struct {
	Base
	RowID      string    `gorm:"uniqueIndex;not null" json:"row_id"`
	DocNo      string    `gorm:"not null;index" json:"doc_no"`
	DocDate    time.Time `gorm:"not null;index" json:"doc_date"`
	Customer   string    `gorm:"not null" json:"customer"`
	Currency   string    `gorm:"type:varchar(3);not null;default:'THB'" json:"currency"`
	Amount     float64   `gorm:"type:numeric(12,2);not null" json:"amount"`
	VAT        float64   `gorm:"type:numeric(12,2);not null;default:0" json:"vat"`
	GrandTotal float64   `gorm:"type:numeric(12,2);not null" json:"grand_total"`
	Status     DocStatus `gorm:"not null;default:'Pending';index" json:"status"`
	Location   string    `gorm:"not null;index" json:"location"`
	CreatedBy  string    `json:"created_by,omitempty"`
	Notes      string    `json:"notes,omitempty"`
}
