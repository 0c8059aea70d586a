package validator

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	validatorv10 "github.com/go-playground/validator/v10"
)

type sample struct {
	Currency string `binding:"omitempty,iso4217"`
	Format   string `binding:"omitempty,report_format"`
	Type     string `binding:"omitempty,expense_type"`
	Status   string `binding:"omitempty,doc_status"`
}

func validate(t *testing.T, s sample) error {
	t.Helper()
	v, ok := binding.Validator.Engine().(*validatorv10.Validate)
	if !ok {
		t.Fatal("gin binding engine is not validator/v10")
	}
	return v.Struct(s)
}

func TestCustomValidators(t *testing.T) {
	Register()

	cases := []struct {
		name    string
		input   sample
		wantErr bool
	}{
		{"valid_currency", sample{Currency: "THB"}, false},
		{"invalid_currency", sample{Currency: "XXX"}, true},
		{"yearly_format", sample{Format: "yearly"}, false},
		{"monthly_format", sample{Format: "monthly"}, false},
		{"weekly_format_rejected", sample{Format: "weekly"}, true},
		{"capex_type", sample{Type: "CAPEX"}, false},
		{"lowercase_type_rejected", sample{Type: "capex"}, true},
		{"paid_status", sample{Status: "Paid"}, false},
		{"unknown_status_rejected", sample{Status: "Settled"}, true},
		{"empty_fields_allowed", sample{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validate(t, tc.input)
			if tc.wantErr && err == nil {
				t.Errorf("expected validation error for %+v", tc.input)
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
