package forms

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

// FieldErrors: поле формы (имя из тега form) → сообщение
type FieldErrors map[string]string

func (fe FieldErrors) Add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

func (fe FieldErrors) Empty() bool {
	return len(fe) == 0
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// maxbytes: длина в байтах, а не в рунах как у max. Поля черновика
	// мастера живут в cookie, там считаются байты.
	if err := v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		return err == nil && len(fl.Field().String()) <= n
	}); err != nil {
		panic(err)
	}
	return v
}

// check прогоняет теги validate и раскладывает ошибки по полям
func check(form any) FieldErrors {
	errs := FieldErrors{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add("_form", err.Error())
		return errs
	}
	for _, fe := range verrs {
		errs.Add(fe.Field(), message(fe))
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "number", "numeric":
		return "must be a number"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "datetime":
		return "must be a date (YYYY-MM-DD)"
	case "uuid":
		return "invalid identifier"
	case "max", "maxbytes":
		return "too long"
	}
	return "invalid value"
}

func trim(fields ...*string) {
	for _, f := range fields {
		*f = strings.TrimSpace(*f)
	}
}

// positive разбирает уже проверенное число и требует > 0
func positive(errs FieldErrors, field, raw string) float64 {
	if errs.Has(field) {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs.Add(field, "must be a number")
		return 0
	}
	if v <= 0 {
		errs.Add(field, "must be greater than zero")
	}
	return v
}

func optionalFloat(errs FieldErrors, field, raw string) *float64 {
	if raw == "" || errs.Has(field) {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		errs.Add(field, "must be a number")
		return nil
	}
	if v < 0 {
		errs.Add(field, "must not be negative")
		return nil
	}
	return &v
}

func count(errs FieldErrors, field, raw string) int {
	if raw == "" || errs.Has(field) {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		errs.Add(field, "must be a whole number")
		return 0
	}
	if v < 0 {
		errs.Add(field, "must not be negative")
		return 0
	}
	return v
}

func date(errs FieldErrors, field, raw string) time.Time {
	if raw == "" || errs.Has(field) {
		return time.Time{}
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		errs.Add(field, "must be a date (YYYY-MM-DD)")
	}
	return t
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return formatFloat(*v)
}

// dateOnly режет "2025-01-01T00:00:00" и "2025-01-01 10:00:00" до даты
func dateOnly(s string) string {
	if len(s) >= len(DateLayout) {
		return s[:len(DateLayout)]
	}
	return s
}
