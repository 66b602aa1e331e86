package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"catalog-core/internal/models"
)

var validate = newValidator()

// newValidator usa el nombre json de cada campo en los mensajes
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct traduce el primer fallo del validador a *models.ValidationError
func validateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	field := fe.Field()
	msg := fmt.Sprintf("%s failed on '%s'", field, fe.Tag())
	if fe.Param() != "" {
		msg = fmt.Sprintf("%s failed on '%s=%s'", field, fe.Tag(), fe.Param())
	}
	return &models.ValidationError{Field: field, Message: msg}
}
