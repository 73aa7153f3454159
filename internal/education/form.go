package education

// FieldKind distinguishes free-text fields from enumerated ones.
type FieldKind int

const (
	KindText FieldKind = iota
	KindSelect
)

// FieldSpec describes one form field for the record form: its FormData
// field name, the label shown next to it, and how it is captured.
type FieldSpec struct {
	Name        string
	Label       string
	Kind        FieldKind
	Options     []string // KindSelect only
	Placeholder string
	Required    bool
}

// Degrees is the portal's degree list, offered by the degree select.
var Degrees = []string{
	"BTech", "BSc", "BA", "BCom", "MTech", "MSc", "MA", "MBA", "PhD", "Diploma",
}

// FormFields returns the field schema for the record form. The same
// schema serves add and edit.
func FormFields() []FieldSpec {
	return []FieldSpec{
		{Name: "degree", Label: "Degree", Kind: KindSelect, Options: Degrees, Required: true},
		{Name: "institution", Label: "Institution", Kind: KindText, Placeholder: "e.g. MIT", Required: true},
		{Name: "year", Label: "Year", Kind: KindText, Placeholder: "e.g. 2024", Required: true},
		{Name: "gpa", Label: "GPA", Kind: KindText, Placeholder: "e.g. 8.7"},
		{Name: "major", Label: "Major", Kind: KindText},
		{Name: "minor", Label: "Minor", Kind: KindText},
		{Name: "relevantCourses", Label: "Relevant courses", Kind: KindText, Placeholder: "comma separated"},
		{Name: "honors", Label: "Honors", Kind: KindText},
	}
}

// Get returns the named field's value from the form.
func (f FormData) Get(name string) string {
	switch name {
	case "degree":
		return f.Degree
	case "institution":
		return f.Institution
	case "year":
		return f.Year
	case "gpa":
		return f.GPA
	case "major":
		return f.Major
	case "minor":
		return f.Minor
	case "relevantCourses":
		return f.RelevantCourses
	case "honors":
		return f.Honors
	}
	return ""
}

// Set assigns the named field on the form.
func (f *FormData) Set(name, value string) {
	switch name {
	case "degree":
		f.Degree = value
	case "institution":
		f.Institution = value
	case "year":
		f.Year = value
	case "gpa":
		f.GPA = value
	case "major":
		f.Major = value
	case "minor":
		f.Minor = value
	case "relevantCourses":
		f.RelevantCourses = value
	case "honors":
		f.Honors = value
	}
}
