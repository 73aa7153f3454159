// Package education holds the domain types for a student's education
// records: the paired current/verified field values the portal tracks,
// the flat form shape the record form captures, and the transform from
// one to the other.
package education

import "time"

// FieldValue pairs a field's user-submitted value with the value an
// admin most recently verified. Client writes always carry a nil
// LastVerifiedValue; only the admin verify flow populates it.
type FieldValue struct {
	CurrentValue      string  `json:"current_value"`
	LastVerifiedValue *string `json:"last_verified_value"`
}

// Details holds the eight verifiable fields of an education record.
type Details struct {
	Degree          FieldValue `json:"degree"`
	Institution     FieldValue `json:"institution"`
	Year            FieldValue `json:"year"`
	GPA             FieldValue `json:"gpa"`
	Major           FieldValue `json:"major"`
	Minor           FieldValue `json:"minor"`
	RelevantCourses FieldValue `json:"relevant_courses"`
	Honors          FieldValue `json:"honors"`
}

// Record is one education entry as the portal API returns it.
type Record struct {
	ID               string     `json:"id"`
	EducationDetails Details    `json:"education_details"`
	IsVerified       bool       `json:"is_verified"`
	LastVerified     *time.Time `json:"last_verified"`
	Remark           *string    `json:"remark"`
}

// FormData is the flat shape the record form captures. Degree,
// institution and year are required; the rest submit as "" when left
// blank.
type FormData struct {
	Degree          string `json:"degree" validate:"required"`
	Institution     string `json:"institution" validate:"required"`
	Year            string `json:"year" validate:"required"`
	GPA             string `json:"gpa"`
	Major           string `json:"major"`
	Minor           string `json:"minor"`
	RelevantCourses string `json:"relevantCourses"`
	Honors          string `json:"honors"`
}

// Payload is the body of an add or update call.
type Payload struct {
	EducationDetails Details `json:"education_details"`
}

// NewPayload wraps each form field into a FieldValue. Every
// last_verified_value is nil on a client write; absent optionals are
// already "" on FormData, so the payload is fully populated.
func NewPayload(form FormData) Payload {
	return Payload{EducationDetails: Details{
		Degree:          FieldValue{CurrentValue: form.Degree},
		Institution:     FieldValue{CurrentValue: form.Institution},
		Year:            FieldValue{CurrentValue: form.Year},
		GPA:             FieldValue{CurrentValue: form.GPA},
		Major:           FieldValue{CurrentValue: form.Major},
		Minor:           FieldValue{CurrentValue: form.Minor},
		RelevantCourses: FieldValue{CurrentValue: form.RelevantCourses},
		Honors:          FieldValue{CurrentValue: form.Honors},
	}}
}

// FormFromRecord flattens a record's current values back into the form
// shape, for prefilling the edit form.
func FormFromRecord(r Record) FormData {
	d := r.EducationDetails
	return FormData{
		Degree:          d.Degree.CurrentValue,
		Institution:     d.Institution.CurrentValue,
		Year:            d.Year.CurrentValue,
		GPA:             d.GPA.CurrentValue,
		Major:           d.Major.CurrentValue,
		Minor:           d.Minor.CurrentValue,
		RelevantCourses: d.RelevantCourses.CurrentValue,
		Honors:          d.Honors.CurrentValue,
	}
}

// ReplaceByID returns records with the element whose ID matches
// updated.ID replaced, order preserved. The slice is rebuilt, not
// mutated in place.
func ReplaceByID(records []Record, updated Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	for i := range out {
		if out[i].ID == updated.ID {
			out[i] = updated
			break
		}
	}
	return out
}

// RemoveByID returns records minus the element with the given ID,
// order preserved.
func RemoveByID(records []Record, id string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			out = append(out, r)
		}
	}
	return out
}
