// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validCurrencies contains the ISO 4217 codes accepted on ledger documents.
var validCurrencies = map[string]bool{
	"AED": true, "AUD": true, "CAD": true, "CHF": true, "CNY": true,
	"DKK": true, "EUR": true, "GBP": true, "HKD": true, "IDR": true,
	"INR": true, "JPY": true, "KRW": true, "LAK": true, "MMK": true,
	"MYR": true, "NOK": true, "NZD": true, "PHP": true, "SEK": true,
	"SGD": true, "THB": true, "TWD": true, "USD": true, "VND": true,
}

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("iso4217", validateISO4217)
		_ = v.RegisterValidation("report_format", validateReportFormat)
		_ = v.RegisterValidation("expense_type", validateExpenseType)
		_ = v.RegisterValidation("doc_status", validateDocStatus)
	}
}

func validateISO4217(fl validator.FieldLevel) bool {
	return validCurrencies[fl.Field().String()]
}

func validateReportFormat(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "yearly", "monthly":
		return true
	}
	return false
}

func validateExpenseType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "CAPEX", "OPEX", "COGS":
		return true
	}
	return false
}

func validateDocStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Paid", "Pending", "Overdue", "Cancelled":
		return true
	}
	return false
}
