package request

import (
	"errors"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var ErrValidatorEngine = errors.New("binding validator is not go-playground/validator")

// RegisterBindingValidations installs the custom tags used by the request
// DTOs on gin's default validator and reports field names by their JSON key.
func RegisterBindingValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return ErrValidatorEngine
	}
	return RegisterValidations(v)
}

func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)
	return v.RegisterValidation("amenities", validateAmenities)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validateAmenities(fl validator.FieldLevel) bool {
	values, ok := fl.Field().Interface().(Amenities)
	if !ok {
		return false
	}
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return true
		}
	}
	return false
}
