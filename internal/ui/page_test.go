package ui

import (
	"strings"
	"testing"
	"time"

	"edudesk/internal/education"
)

func TestPage_CardShowsBadgeDateAndRemark(t *testing.T) {
	verifiedAt := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	remark := "Marksheet checked"
	rec := record("e1", "BTech")
	rec.IsVerified = true
	rec.LastVerified = &verifiedAt
	rec.Remark = &remark

	p := NewEducationPageView()
	p.Records = []education.Record{rec, record("e2", "MSc")}

	view := p.View()
	if !strings.Contains(view, "Verified") {
		t.Error("missing verified badge")
	}
	if !strings.Contains(view, "Pending") {
		t.Error("missing pending badge on unverified record")
	}
	if !strings.Contains(view, "14 Mar 2025") {
		t.Error("missing verification date")
	}
	if !strings.Contains(view, "Marksheet checked") {
		t.Error("missing remark")
	}
	// The seven detail labels.
	for _, label := range []string{"Institution", "Year", "GPA", "Major", "Minor", "Relevant courses", "Honors"} {
		if !strings.Contains(view, label) {
			t.Errorf("missing detail label %q", label)
		}
	}
}

func TestPage_CursorStaysInBounds(t *testing.T) {
	p := NewEducationPageView()
	p.Records = []education.Record{record("e1", "BTech"), record("e2", "MSc")}

	var v View = p
	v, _ = v.Update(keyMsg("k"))
	if p.Cursor != 0 {
		t.Errorf("cursor moved above 0: %d", p.Cursor)
	}
	v, _ = v.Update(keyMsg("j"))
	v, _ = v.Update(keyMsg("j"))
	v, _ = v.Update(keyMsg("j"))
	if p.Cursor != 1 {
		t.Errorf("cursor ran past end: %d", p.Cursor)
	}
	_ = v
}

func TestPage_SelectedRecord(t *testing.T) {
	p := NewEducationPageView()
	if p.SelectedRecord() != nil {
		t.Error("selected record on empty list")
	}
	p.Records = []education.Record{record("e1", "BTech")}
	if got := p.SelectedRecord(); got == nil || got.ID != "e1" {
		t.Errorf("SelectedRecord = %v", got)
	}
}
