// Package report implements the Construction Phase Plan PDF pipeline:
// section selection, content formatting, hazard table construction, page
// composition and footer finalization.
package report

import (
	"encoding/json"
	"strings"

	"github.com/sitesafe/sitesafe/internal/model"
)

// Layout classifies how a section's content is placed on the page
type Layout int

const (
	// LayoutSingleColumn renders a full-width header row and one body
	// cell. The zero value, so unclassified sections fall back to it.
	LayoutSingleColumn Layout = iota
	// LayoutTwoColumn renders label | value rows
	LayoutTwoColumn
	// LayoutCustom is reserved for the hazards section, which builds its
	// own mini-table blocks
	LayoutCustom
)

// SectionKind identifies one named section of the report document
type SectionKind string

// Section kinds, one per catalog entry
const (
	KindSiteInformation      SectionKind = "site_information"
	KindProjectDescription   SectionKind = "project_description"
	KindHoursTeam            SectionKind = "hours_team"
	KindManagementOfWork     SectionKind = "management_of_work"
	KindManagementStructure  SectionKind = "management_structure"
	KindSiteRules            SectionKind = "site_rules"
	KindArrangements         SectionKind = "arrangements"
	KindSiteInduction        SectionKind = "site_induction"
	KindWelfareArrangements  SectionKind = "welfare_arrangements"
	KindFirstAidArrangements SectionKind = "first_aid_arrangements"
	KindRescuePlan           SectionKind = "rescue_plan"
	KindSpecificMeasures     SectionKind = "specific_measures"
	KindHazardIdentification SectionKind = "hazard_identification"
	KindHazards              SectionKind = "hazards"
	KindHighRiskWork         SectionKind = "high_risk_work"
	KindNotifiableWork       SectionKind = "notifiable_work"
	KindContractors          SectionKind = "contractors"
	KindMonitoringReview     SectionKind = "monitoring_review"
)

// SectionDescriptor is the static metadata for one section: its display
// title, layout, and the ordered list of document fields it is allowed
// to read. Custom-layout sections define their own internal shape and
// carry no field list.
type SectionDescriptor struct {
	Kind   SectionKind
	Title  string
	Layout Layout
	Fields []string

	// presenceGated sections are included whenever their sub-object
	// exists, even if every declared field is empty. Used by the option
	// sections, which render a placeholder for an empty selection.
	presenceGated bool
}

// Catalog is the canonical ordered section table. Defined once,
// read-only, shared across all generation calls.
var Catalog = []SectionDescriptor{
	{Kind: KindSiteInformation, Title: "Site Information", Layout: LayoutTwoColumn,
		Fields: []string{"address", "siteManager", "sitePhone", "accessRestrictions"}},
	{Kind: KindProjectDescription, Title: "Project Description", Layout: LayoutTwoColumn,
		Fields: []string{"description", "clientName", "startDate", "expectedDuration"}},
	{Kind: KindHoursTeam, Title: "Hours & Team", Layout: LayoutTwoColumn,
		Fields: []string{"workingHours", "keyTeamMembers"}},
	{Kind: KindManagementOfWork, Title: "Management of Work", Layout: LayoutTwoColumn,
		Fields: []string{"howWorkIsManaged", "supervisionArrangements", "trainingRequirements", "communicationArrangement"}},
	{Kind: KindManagementStructure, Title: "Management Structure", Layout: LayoutTwoColumn,
		Fields: []string{"principalDesigner", "principalContractor", "siteSupervisor"}},
	{Kind: KindSiteRules, Title: "Site Rules", Layout: LayoutTwoColumn,
		Fields: []string{"generalRules", "ppeRequirements", "restrictedAreas"}},
	{Kind: KindArrangements, Title: "Arrangements", Layout: LayoutTwoColumn,
		Fields: []string{"liaisonArrangements", "consultationArrangements", "siteSecurity"}},
	{Kind: KindSiteInduction, Title: "Site Induction", Layout: LayoutTwoColumn,
		Fields: []string{"inductionTopics", "inductionLead"}},
	{Kind: KindWelfareArrangements, Title: "Welfare Arrangements", Layout: LayoutTwoColumn,
		Fields: []string{"toilets", "restAreas", "drinkingWater", "changingFacilities"}},
	{Kind: KindFirstAidArrangements, Title: "First Aid Arrangements", Layout: LayoutTwoColumn,
		Fields: []string{"firstAiders", "firstAidKitLocation", "nearestHospital", "accidentReporting"}},
	{Kind: KindRescuePlan, Title: "Rescue Plan", Layout: LayoutTwoColumn,
		Fields: []string{"rescueArrangements", "emergencyContacts"}},
	{Kind: KindSpecificMeasures, Title: "Specific Measures", Layout: LayoutTwoColumn,
		Fields: []string{"measures", "residualRisks"}},
	{Kind: KindHazardIdentification, Title: "Hazard Identification", Layout: LayoutSingleColumn},
	{Kind: KindHazards, Title: "Hazards", Layout: LayoutCustom},
	{Kind: KindHighRiskWork, Title: "High Risk Construction Work", Layout: LayoutTwoColumn,
		Fields: []string{"selectedOptions"}, presenceGated: true},
	{Kind: KindNotifiableWork, Title: "Notifiable Work", Layout: LayoutSingleColumn,
		Fields: []string{"selectedOptions"}, presenceGated: true},
	{Kind: KindContractors, Title: "Contractors", Layout: LayoutSingleColumn,
		Fields: []string{"name", "trade", "phone", "email", "address"}},
	{Kind: KindMonitoringReview, Title: "Monitoring & Review", Layout: LayoutTwoColumn,
		Fields: []string{"inspectionSchedule", "reviewFrequency", "responsiblePerson"}},
}

// Section is one catalog entry selected for rendering, carrying the
// field-filtered view of its sub-object.
type Section struct {
	Desc SectionDescriptor

	// Values holds the declared fields that passed the meaningfulness
	// filter, decoded to plain JSON values. Custom sections leave it nil
	// and are rendered from the typed document directly.
	Values map[string]any
}

// Select walks the catalog in canonical order and returns the sections
// to render. Pure selection logic: missing or malformed sub-objects are
// silently treated as absent.
func Select(doc *model.ReportDocument) []Section {
	if doc == nil {
		return nil
	}

	var out []Section
	for _, desc := range Catalog {
		sub := subObject(doc, desc.Kind)
		if sub == nil {
			continue
		}

		switch desc.Kind {
		case KindHazards:
			if len(doc.Hazards) > 0 {
				out = append(out, Section{Desc: desc})
			}
		case KindHazardIdentification:
			if len(selectedChecklistLeaves(doc.HazardIdentification)) > 0 {
				out = append(out, Section{Desc: desc})
			}
		case KindContractors:
			// Array sections are gated on length alone
			if len(doc.Contractors) > 0 {
				out = append(out, Section{Desc: desc})
			}
		default:
			values := filterFields(sub, desc.Fields)
			if desc.presenceGated || len(values) > 0 {
				out = append(out, Section{Desc: desc, Values: values})
			}
		}
	}
	return out
}

// subObject returns the raw sub-object for a section kind, or nil when absent
func subObject(doc *model.ReportDocument, kind SectionKind) any {
	switch kind {
	case KindSiteInformation:
		if doc.SiteInformation != nil {
			return doc.SiteInformation
		}
	case KindProjectDescription:
		if doc.ProjectDescription != nil {
			return doc.ProjectDescription
		}
	case KindHoursTeam:
		if doc.HoursTeam != nil {
			return doc.HoursTeam
		}
	case KindManagementOfWork:
		if doc.ManagementOfWork != nil {
			return doc.ManagementOfWork
		}
	case KindManagementStructure:
		if doc.ManagementStructure != nil {
			return doc.ManagementStructure
		}
	case KindSiteRules:
		if doc.SiteRules != nil {
			return doc.SiteRules
		}
	case KindArrangements:
		if doc.Arrangements != nil {
			return doc.Arrangements
		}
	case KindSiteInduction:
		if doc.SiteInduction != nil {
			return doc.SiteInduction
		}
	case KindWelfareArrangements:
		if doc.WelfareArrangements != nil {
			return doc.WelfareArrangements
		}
	case KindFirstAidArrangements:
		if doc.FirstAidArrangements != nil {
			return doc.FirstAidArrangements
		}
	case KindRescuePlan:
		if doc.RescuePlan != nil {
			return doc.RescuePlan
		}
	case KindSpecificMeasures:
		if doc.SpecificMeasures != nil {
			return doc.SpecificMeasures
		}
	case KindHazardIdentification:
		if doc.HazardIdentification != nil {
			return doc.HazardIdentification
		}
	case KindHazards:
		if len(doc.Hazards) > 0 {
			return doc.Hazards
		}
	case KindHighRiskWork:
		if doc.HighRiskWork != nil {
			return doc.HighRiskWork
		}
	case KindNotifiableWork:
		if doc.NotifiableWork != nil {
			return doc.NotifiableWork
		}
	case KindContractors:
		if len(doc.Contractors) > 0 {
			return doc.Contractors
		}
	case KindMonitoringReview:
		if doc.MonitoringReview != nil {
			return doc.MonitoringReview
		}
	}
	return nil
}

// filterFields reduces a section sub-object to its declared fields,
// keeping only those holding a meaningful value. The struct is adapted
// through a JSON round-trip so the filter sees the wire-level keys the
// field lists are written in.
func filterFields(sub any, fields []string) map[string]any {
	raw, err := json.Marshal(sub)
	if err != nil {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}

	out := make(map[string]any, len(fields))
	for _, f := range fields {
		if v, ok := m[f]; ok && meaningful(v) {
			out[f] = v
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// meaningful reports whether a decoded JSON value counts as content.
// Blank strings and empty collections do not; booleans and numbers
// always do once present.
func meaningful(v any) bool {
	switch val := v.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(val) != ""
	case []any:
		return len(val) > 0
	case map[string]any:
		for _, nested := range val {
			if meaningful(nested) {
				return true
			}
		}
		return false
	default:
		// bool, float64 and anything else present
		return true
	}
}
