package models

import "time"

// InvestmentPriority values for pending investments.
const (
	InvestmentPriorityCritical = "Critical"
	InvestmentPriorityHigh     = "High"
	InvestmentPriorityMedium   = "Medium"
	InvestmentPriorityLow      = "Low"
)

// PendingInvestment represents a planned capital expenditure that has not yet
// become a CAPEX expense row. Tracked here so the dashboard can show committed
// versus outstanding funding.
type PendingInvestment struct {
	Base
	RefCode       string  `gorm:"uniqueIndex;not null" json:"ref_code"`
	Description   string  `gorm:"not null" json:"description"`
	DetailedNotes string  `json:"detailed_notes,omitempty"`
	Currency      string  `gorm:"type:varchar(3);not null;default:'THB'" json:"currency"`
	EstimatedCost float64 `gorm:"type:numeric(14,2);not null" json:"estimated_cost"`
	Committed     float64 `gorm:"column:committed_amount;type:numeric(14,2);not null;default:0" json:"committed_amount"`
	FundingSource string  `json:"funding_source,omitempty"`

	TargetStartDate        *time.Time `json:"target_start_date,omitempty"`
	ExpectedCompletionDate *time.Time `json:"expected_completion_date,omitempty"`

	Priority string `gorm:"not null;default:'Medium';index" json:"priority"`
	Status   string `gorm:"not null;default:'Planned';index" json:"status"`
	Location string `gorm:"not null;index" json:"location"`

	CreatedBy string `json:"created_by,omitempty"`
}

// RemainingToFund returns the outstanding amount for this investment.
func (p *PendingInvestment) RemainingToFund() float64 {
	return p.EstimatedCost - p.Committed
}
