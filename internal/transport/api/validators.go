package api

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// validatePositiveDecimal accepts decimal.Decimal fields strictly above zero.
// The numeric tags (gt, gte) only work on Go numeric kinds.
func validatePositiveDecimal(fl validator.FieldLevel) bool {
	d, ok := fl.Field().Interface().(decimal.Decimal)
	if !ok {
		return false
	}
	return d.IsPositive()
}

func registerValidators() error {
	v, _ := binding.Validator.Engine().(*validator.Validate)
	if err := v.RegisterValidation("positive_decimal", validatePositiveDecimal); err != nil {
		return fmt.Errorf("validator registration: %s", err.Error())
	}
	return nil
}
