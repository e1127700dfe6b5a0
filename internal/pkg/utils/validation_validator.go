package utils

import (
	"time"

	"clinicbook-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("session_date", validateSessionDate)
	validate.RegisterValidation("session_time", validateSessionTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSessionDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.SessionDateLayout, fl.Field().String())
	return err == nil
}

func validateSessionTime(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.SessionTimeLayout, fl.Field().String())
	return err == nil
}
