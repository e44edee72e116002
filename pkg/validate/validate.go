// Package validate wraps go-playground/validator with the domain's enum
// checks registered as tags.
package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/tripleswitch/complianceos/pkg/model"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("validation failed")

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Custom validators
	_ = v.RegisterValidation("role", validateRole)
	_ = v.RegisterValidation("user_status", validateUserStatus)
	_ = v.RegisterValidation("classification", validateClassification)

	return &Validator{validate: v}
}

// Struct validates s and reports every failing field in one error wrapping
// ErrInvalid.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, ", "))
}

func validateRole(fl validator.FieldLevel) bool {
	r, ok := fl.Field().Interface().(model.Role)
	return ok && r.IsARole()
}

func validateUserStatus(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(model.UserStatus)
	return ok && s.IsAUserStatus()
}

func validateClassification(fl validator.FieldLevel) bool {
	c, ok := fl.Field().Interface().(model.Classification)
	return ok && c.IsAClassification()
}
