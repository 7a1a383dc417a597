package helpers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeAndValidate decodes the request body into dest and validates it with
// its `validate` struct tags. An empty body decodes to the zero value so that
// missing fields are reported by validation. On malformed JSON it writes a 400
// detail; on validation failure a 422 field list. It returns false when a
// response has been written and the caller should return.
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dest any) bool {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		WriteDetail(w, http.StatusBadRequest, err.Error())
		return false
	}
	if errs := ValidateStruct(dest); len(errs) > 0 {
		WriteValidationError(w, errs...)
		return false
	}
	return true
}

// ValidateStruct runs struct validation and converts failures to FieldErrors
// located in the request body.
func ValidateStruct(v any) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Type: "value_error", Loc: []string{"body"}, Msg: err.Error()}}
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, toFieldError(fe))
	}
	return out
}

func toFieldError(fe validator.FieldError) FieldError {
	e := FieldError{Loc: []string{"body", fe.Field()}, Input: inputOf(fe.Value())}
	switch fe.Tag() {
	case "required":
		e.Type, e.Msg = "missing", "Field required"
	case "email":
		e.Type, e.Msg = "value_error", "value is not a valid email address"
	case "url", "http_url":
		e.Type, e.Msg = "url_parsing", "Input should be a valid URL"
	case "max":
		e.Type, e.Msg = "string_too_long", "String should have at most "+fe.Param()+" characters"
	default:
		e.Type, e.Msg = "value_error", "Value failed the "+fe.Tag()+" check"
	}
	return e
}

// inputOf dereferences pointers so the echoed input is the raw value.
func inputOf(v any) any {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}
