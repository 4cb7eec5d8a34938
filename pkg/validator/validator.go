package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var codePattern = regexp.MustCompile(`^[A-Z]{3}$`)

var (
	instance *validator.Validate
	once     sync.Once
)

// Instance returns the shared validator used for commands and stored records.
func Instance() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		configure(instance)
	})
	return instance
}

// Struct validates s with the shared validator.
func Struct(s any) error {
	return Instance().Struct(s)
}

// RegisterGinValidator applies the same tag naming and custom rules to gin's binding engine.
func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		configure(v)
	}
}

func configure(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	err := v.RegisterValidation("code", codeValidator)
	if err != nil {
		log.Fatal("register code validator failed")
	}
}

// codeValidator accepts exactly three uppercase latin letters.
var codeValidator validator.Func = func(fl validator.FieldLevel) bool {
	return codePattern.MatchString(fl.Field().String())
}
