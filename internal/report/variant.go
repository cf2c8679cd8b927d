package report

import (
	"fmt"
	"strings"
	"unicode"
)

// Variant selects the report layout and output naming.
type Variant string

const (
	// Staff reports aggregate skill-category columns matched by subject name.
	Staff Variant = "staff"
	// CampusRep reports aggregate a fixed questionnaire for one representative.
	CampusRep Variant = "campus_rep"
)

// ParseVariant accepts "staff", "campus_rep" and "campus-rep".
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Staff):
		return Staff, nil
	case string(CampusRep), "campus-rep":
		return CampusRep, nil
	}
	return "", fmt.Errorf("unknown report type %q", s)
}

func (v Variant) Valid() bool {
	return v == Staff || v == CampusRep
}

// Title is the document heading for subject.
func (v Variant) Title(subject string) string {
	if v == CampusRep {
		return "Campus Rep Report: " + subject
	}
	return "Staff Report: " + subject
}

// LabelHeader is the first header cell of the summary table.
func (v Variant) LabelHeader() string {
	if v == CampusRep {
		return "Question"
	}
	return "Skill Category"
}

// AxisLabel is the chart x-axis name.
func (v Variant) AxisLabel() string {
	if v == CampusRep {
		return "Question Metrics"
	}
	return "Skill Metrics"
}

// HasComments reports whether the layout ends with a comments section.
func (v Variant) HasComments() bool {
	return v == CampusRep
}

// FileName derives the output file name from the subject. The result never
// contains a path separator.
//
//	Staff:     "Alice Smith"   -> Alice_Smith_Report.docx
//	           "Pre/Post"      -> Pre_Post_Report.docx
//	CampusRep: "Jordan O'Neil" -> campus_rep_report_JordanONeil.docx
func FileName(v Variant, subject string) string {
	if v == CampusRep {
		safe := strings.Map(func(r rune) rune {
			if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, subject)
		return "campus_rep_report_" + safe + ".docx"
	}
	safe := strings.Map(func(r rune) rune {
		if r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, subject)
	return safe + "_Report.docx"
}
