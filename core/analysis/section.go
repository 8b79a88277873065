// Package analysis - Derived analytics over the business models.
// A report evaluates one section of a scenario at its current query values.
package analysis

import (
	"strings"

	"tutoring-sim/internal/errors"
)

// Section is a closed set of report views
type Section int

const (
	SectionOverview Section = iota
	SectionPricing
	SectionAdvertising
	SectionProfit
	SectionSeasonality
)

var sectionNames = map[Section]string{
	SectionOverview:    "overview",
	SectionPricing:     "pricing",
	SectionAdvertising: "advertising",
	SectionProfit:      "profit",
	SectionSeasonality: "seasonality",
}

// String returns the section's command name
func (s Section) String() string {
	if name, ok := sectionNames[s]; ok {
		return name
	}
	return "unknown"
}

// MarshalText encodes the section by name
func (s Section) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// AllSections returns the model sections in display order
func AllSections() []Section {
	return []Section{SectionPricing, SectionAdvertising, SectionProfit, SectionSeasonality}
}

// ParseSection resolves a section by name, case-insensitively
func ParseSection(name string) (Section, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range sectionNames {
		if n == name {
			return s, nil
		}
	}
	return 0, errors.Inputf("unknown section %q", name).WithContext("section", name)
}

// includes reports whether a report for s contains section part
func (s Section) includes(part Section) bool {
	return s == SectionOverview || s == part
}
