package education

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkVerified_CopiesCurrentValues(t *testing.T) {
	d := NewPayload(FormData{Degree: "BTech", Institution: "MIT", Year: "2024"}).EducationDetails

	v := d.MarkVerified()

	require.NotNil(t, v.Degree.LastVerifiedValue)
	assert.Equal(t, "BTech", *v.Degree.LastVerifiedValue)
	require.NotNil(t, v.GPA.LastVerifiedValue)
	assert.Equal(t, "", *v.GPA.LastVerifiedValue)
	// Value semantics: the input is untouched.
	assert.Nil(t, d.Degree.LastVerifiedValue)
}

func TestClearVerified_NullsEveryAuditField(t *testing.T) {
	d := NewPayload(FormData{Degree: "BTech", Institution: "MIT", Year: "2024"}).
		EducationDetails.MarkVerified()

	c := d.ClearVerified()

	c.forEachField(func(fv *FieldValue) {
		assert.Nil(t, fv.LastVerifiedValue)
	})
	// Current values survive.
	assert.Equal(t, "BTech", c.Degree.CurrentValue)
}
