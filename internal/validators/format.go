package validators

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// IsDate reports whether s is a real calendar date written as YYYY-MM-DD.
func IsDate(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsClock reports whether s is a 24h time written as HH:MM.
func IsClock(s string) bool {
	if len(s) != len(TimeLayout) {
		return false
	}
	_, err := time.Parse(TimeLayout, s)
	return err == nil
}

func ymd(fl validator.FieldLevel) bool {
	return IsDate(fl.Field().String())
}

func hhmm(fl validator.FieldLevel) bool {
	return IsClock(fl.Field().String())
}

// Register adds the ymd and hhmm tags to v.
func Register(v *validator.Validate) error {
	if err := v.RegisterValidation("ymd", ymd); err != nil {
		return err
	}
	return v.RegisterValidation("hhmm", hhmm)
}

// RegisterGin adds the custom tags to gin's default binding validator.
func RegisterGin() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding engine is not go-playground/validator")
	}
	return Register(v)
}
