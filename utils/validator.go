package utils

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the value format of an HTML date input.
const DateLayout = "2006-01-02"

// InitValidator registers the custom rules on gin's binding validator. It must run before
// the first request is bound.
func InitValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("datestr", IsDateString)
}

// IsDateString accepts YYYY-MM-DD calendar dates.
func IsDateString(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}
