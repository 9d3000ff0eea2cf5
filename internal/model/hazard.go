// Package model defines the data models for the application.
// This file defines hazard records with their before/after risk triples.
package model

import (
	"bytes"
	"encoding/json"
)

// ControlMeasure is one entry in a hazard's control measures list
type ControlMeasure struct {
	Description string `json:"description,omitempty"`
}

// HazardRecord is a structured risk-assessment entry. The before and
// after triples are independent author-supplied values: the "after"
// figures are not derived from the control measures and are printed
// exactly as given.
type HazardRecord struct {
	Title            string           `json:"title,omitempty"`
	WhoMightBeHarmed string           `json:"whoMightBeHarmed,omitempty"`
	HowMightBeHarmed string           `json:"howMightBeHarmed,omitempty"`
	BeforeLikelihood string           `json:"beforeLikelihood,omitempty"`
	BeforeSeverity   string           `json:"beforeSeverity,omitempty"`
	BeforeTotal      string           `json:"beforeTotal,omitempty"`
	ControlMeasures  []ControlMeasure `json:"controlMeasures,omitempty"`
	AfterLikelihood  string           `json:"afterLikelihood,omitempty"`
	AfterSeverity    string           `json:"afterSeverity,omitempty"`
	AfterTotal       string           `json:"afterTotal,omitempty"`
}

// HazardList is the hazards section. Historical records store either a
// single hazard object or an array of them; both forms decode to the
// same slice so everything downstream sees one shape.
type HazardList []HazardRecord

// UnmarshalJSON accepts a single object, an array, or null
func (h *HazardList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*h = nil
		return nil
	}
	if trimmed[0] == '[' {
		var records []HazardRecord
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return err
		}
		*h = records
		return nil
	}
	var single HazardRecord
	if err := json.Unmarshal(trimmed, &single); err != nil {
		return err
	}
	*h = HazardList{single}
	return nil
}
