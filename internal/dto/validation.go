package dto

import (
	"fmt"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators adds the decimal_gt0 and decimal_gte0 tags to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterDecimalValidators(v)
}

// RegisterDecimalValidators registers the decimal tags on v.
func RegisterDecimalValidators(v *validator.Validate) error {
	if err := v.RegisterValidation("decimal_gt0", decimalGreaterThanZero); err != nil {
		return err
	}
	return v.RegisterValidation("decimal_gte0", decimalNonNegative)
}

func decimalGreaterThanZero(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && d.IsPositive()
}

func decimalNonNegative(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	return ok && !d.IsNegative()
}

// ParseDate parses a YYYY-MM-DD value in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(domain.DateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", value)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}
