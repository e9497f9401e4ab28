package apperror

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// HalfStepTag validates scores on a 0..5 scale in 0.5 increments.
const HalfStepTag = "halfstep"

func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerRules(v)
	}
}

func registerRules(v *validator.Validate) {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		// report json names so messages match the request body
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation(HalfStepTag, validateHalfStep)
}

func validateHalfStep(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() == reflect.Ptr {
		if field.IsNil() {
			return true
		}
		field = field.Elem()
	}
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		v := field.Float()
		if v < 0 || v > 5 {
			return false
		}
		return v*2 == float64(int64(v*2))
	default:
		return false
	}
}
