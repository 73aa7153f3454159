package education

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateForm checks a form against its schema tags. Returns a
// field-name -> message map for violations; an empty map means the
// form is valid. Values are trimmed before checking so whitespace-only
// required fields are rejected.
func ValidateForm(form FormData) map[string]string {
	form.Degree = strings.TrimSpace(form.Degree)
	form.Institution = strings.TrimSpace(form.Institution)
	form.Year = strings.TrimSpace(form.Year)

	problems := make(map[string]string)
	err := validate.Struct(form)
	if err == nil {
		return problems
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		problems["form"] = err.Error()
		return problems
	}
	for _, fe := range verrs {
		name := formFieldName(fe.Field())
		switch fe.Tag() {
		case "required":
			problems[name] = labelFor(name) + " is required"
		default:
			problems[name] = labelFor(name) + " is invalid"
		}
	}
	return problems
}

// formFieldName maps a Go struct field name to its form field name.
func formFieldName(structField string) string {
	switch structField {
	case "GPA":
		return "gpa"
	case "RelevantCourses":
		return "relevantCourses"
	}
	return strings.ToLower(structField[:1]) + structField[1:]
}

func labelFor(name string) string {
	for _, spec := range FormFields() {
		if spec.Name == name {
			return spec.Label
		}
	}
	return name
}
