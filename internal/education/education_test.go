package education

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayload_RequiredOnly(t *testing.T) {
	p := NewPayload(FormData{Degree: "BTech", Institution: "MIT", Year: "2024"})

	d := p.EducationDetails
	assert.Equal(t, "BTech", d.Degree.CurrentValue)
	assert.Equal(t, "MIT", d.Institution.CurrentValue)
	assert.Equal(t, "2024", d.Year.CurrentValue)

	// Absent optionals become empty strings, never omitted.
	for _, fv := range []FieldValue{d.GPA, d.Major, d.Minor, d.RelevantCourses, d.Honors} {
		assert.Equal(t, "", fv.CurrentValue)
	}
}

func TestNewPayload_NullsEveryLastVerifiedValue(t *testing.T) {
	p := NewPayload(FormData{
		Degree: "MSc", Institution: "IISc", Year: "2023",
		GPA: "9.1", Major: "CS", Minor: "Math", RelevantCourses: "OS,DB", Honors: "Gold medal",
	})

	d := p.EducationDetails
	for _, fv := range []FieldValue{d.Degree, d.Institution, d.Year, d.GPA, d.Major, d.Minor, d.RelevantCourses, d.Honors} {
		assert.Nil(t, fv.LastVerifiedValue)
	}
}

func TestPayload_JSONShape(t *testing.T) {
	p := NewPayload(FormData{Degree: "BTech", Institution: "MIT", Year: "2024"})
	b, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]map[string]map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))

	deg := raw["education_details"]["degree"]
	assert.Equal(t, "BTech", deg["current_value"])
	v, ok := deg["last_verified_value"]
	assert.True(t, ok, "last_verified_value must be present, not omitted")
	assert.Nil(t, v)

	gpa := raw["education_details"]["gpa"]
	assert.Equal(t, "", gpa["current_value"])
}

func TestFormFromRecord_RoundTrip(t *testing.T) {
	form := FormData{
		Degree: "MBA", Institution: "IIM", Year: "2022",
		GPA: "8.0", Major: "Finance", RelevantCourses: "Accounting",
	}
	rec := Record{ID: "e1", EducationDetails: NewPayload(form).EducationDetails}
	assert.Equal(t, form, FormFromRecord(rec))
}

func TestReplaceByID(t *testing.T) {
	records := []Record{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}}
	updated := Record{ID: "e2", IsVerified: true}

	got := ReplaceByID(records, updated)

	require.Len(t, got, 3)
	assert.Equal(t, "e1", got[0].ID)
	assert.Equal(t, updated, got[1])
	assert.Equal(t, "e3", got[2].ID)
	// Input slice untouched.
	assert.False(t, records[1].IsVerified)
}

func TestReplaceByID_UnknownIDLeavesListAlone(t *testing.T) {
	records := []Record{{ID: "e1"}}
	got := ReplaceByID(records, Record{ID: "missing"})
	assert.Equal(t, records, got)
}

func TestRemoveByID(t *testing.T) {
	records := []Record{{ID: "e1"}, {ID: "e2"}, {ID: "e3"}}

	got := RemoveByID(records, "e1")

	require.Len(t, got, 2)
	assert.Equal(t, "e2", got[0].ID)
	assert.Equal(t, "e3", got[1].ID)
	assert.Len(t, records, 3)
}

func TestFormData_GetSet(t *testing.T) {
	var f FormData
	for _, spec := range FormFields() {
		f.Set(spec.Name, "v-"+spec.Name)
	}
	for _, spec := range FormFields() {
		assert.Equal(t, "v-"+spec.Name, f.Get(spec.Name), spec.Name)
	}
}
