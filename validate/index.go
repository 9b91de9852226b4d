package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"fsdine_restaurant/constants"
	"fsdine_restaurant/utils"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

var indexPattern = regexp.MustCompile(`\[(\d+)\]`)

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// Struct validates input and returns messages keyed by dotted json path,
// e.g. "items.0.quantity". A nil map means the input is valid.
func Struct(input any) map[string][]string {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return map[string][]string{"input": {err.Error()}}
	}

	result := make(map[string][]string, len(fieldErrors))
	for _, fe := range fieldErrors {
		key := fieldKey(fe.Namespace())
		result[key] = append(result[key], message(key, fe))
	}
	return result
}

func fieldKey(namespace string) string {
	// drop the root struct name
	if i := strings.Index(namespace, "."); i >= 0 {
		namespace = namespace[i+1:]
	}
	return indexPattern.ReplaceAllString(namespace, ".$1")
}

func message(key string, fe validator.FieldError) string {
	field := strings.ReplaceAll(key, "_", " ")
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("The %s field is required.", field)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s field must not be greater than %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s field must not be greater than %s.", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("The %s field must have at least %s items.", field, fe.Param())
		}
		return fmt.Sprintf("The %s field must be at least %s.", field, fe.Param())
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	}
	return fmt.Sprintf("The %s field is invalid.", field)
}

// BodyErrors turns a body parsing failure into field messages.
func BodyErrors(err error) map[string][]string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := strings.ReplaceAll(typeErr.Field, "_", " ")
		return map[string][]string{
			typeErr.Field: {fmt.Sprintf("The %s field must be of type %s.", field, jsonType(typeErr.Type))},
		}
	}
	return map[string][]string{"body": {"The request body must be a valid JSON object."}}
}

func jsonType(t reflect.Type) string {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Struct, reflect.Map:
		return "object"
	}
	return t.Kind().String()
}

func GetById(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.ParseUint(params, 10, 64)
		if err != nil || valueKey == 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}

		c.Locals("inputId", uint(valueKey))

		return c.Next()
	}
}
