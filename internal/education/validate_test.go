package education

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateForm_RequiredFieldsOnlyIsValid(t *testing.T) {
	problems := ValidateForm(FormData{Degree: "BTech", Institution: "MIT", Year: "2024"})
	assert.Empty(t, problems)
}

func TestValidateForm_EmptyRequiredFields(t *testing.T) {
	problems := ValidateForm(FormData{GPA: "9.0"})

	assert.Contains(t, problems, "degree")
	assert.Contains(t, problems, "institution")
	assert.Contains(t, problems, "year")
	assert.NotContains(t, problems, "gpa")
	assert.Equal(t, "Degree is required", problems["degree"])
}

func TestValidateForm_WhitespaceOnlyRequiredField(t *testing.T) {
	problems := ValidateForm(FormData{Degree: "   ", Institution: "MIT", Year: "2024"})
	assert.Contains(t, problems, "degree")
}

func TestFormFields_SchemaShape(t *testing.T) {
	fields := FormFields()
	assert.Len(t, fields, 8)

	assert.Equal(t, KindSelect, fields[0].Kind)
	assert.Equal(t, Degrees, fields[0].Options)

	required := 0
	for _, f := range fields {
		if f.Required {
			required++
		}
	}
	assert.Equal(t, 3, required)
}
