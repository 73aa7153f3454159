package education

// forEachField visits every field pair of d in schema order.
func (d *Details) forEachField(fn func(fv *FieldValue)) {
	for _, fv := range []*FieldValue{
		&d.Degree, &d.Institution, &d.Year, &d.GPA,
		&d.Major, &d.Minor, &d.RelevantCourses, &d.Honors,
	} {
		fn(fv)
	}
}

// ClearVerified returns details with every last_verified_value null.
// The server applies this to every student write: whatever the client
// sent for the audit field is discarded.
func (d Details) ClearVerified() Details {
	d.forEachField(func(fv *FieldValue) {
		fv.LastVerifiedValue = nil
	})
	return d
}

// MarkVerified returns details with each field's current value copied
// into its last_verified_value. Applied by the admin approval flow.
func (d Details) MarkVerified() Details {
	d.forEachField(func(fv *FieldValue) {
		v := fv.CurrentValue
		fv.LastVerifiedValue = &v
	})
	return d
}
