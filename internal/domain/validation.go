package domain

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgValidator "github.com/vibe-gaming/geo-api/pkg/validator"
)

type FieldError struct {
	Field string
	Tag   string
	Param string
}

// ValidationError is returned by command and query Validate methods.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed: " + e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" failed on "+f.Tag)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func validate(s any) error {
	err := pkgValidator.Struct(s)
	if err == nil {
		return nil
	}

	var verr validator.ValidationErrors
	if !errors.As(err, &verr) {
		return &ValidationError{Message: err.Error()}
	}

	out := &ValidationError{Message: "invalid input", Fields: make([]FieldError, 0, len(verr))}
	for _, fe := range verr {
		out.Fields = append(out.Fields, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	return out
}

func trim(p *string) {
	if p != nil {
		*p = strings.TrimSpace(*p)
	}
}
