package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesafe/sitesafe/internal/model"
)

func TestSelectNilAndEmptyDocument(t *testing.T) {
	assert.Empty(t, Select(nil))
	assert.Empty(t, Select(&model.ReportDocument{}))
}

func TestSelectFollowsCatalogOrder(t *testing.T) {
	// Sections deliberately populated out of catalog order
	doc := &model.ReportDocument{
		MonitoringReview:   &model.MonitoringReview{InspectionSchedule: "Weekly"},
		Hazards:            model.HazardList{{Title: "Noise"}},
		SiteInformation:    &model.SiteInformation{SiteManager: "J. Metcalfe"},
		ProjectDescription: &model.ProjectDescription{Description: "Extension"},
	}

	sections := Select(doc)
	require.Len(t, sections, 4)
	assert.Equal(t, KindSiteInformation, sections[0].Desc.Kind)
	assert.Equal(t, KindProjectDescription, sections[1].Desc.Kind)
	assert.Equal(t, KindHazards, sections[2].Desc.Kind)
	assert.Equal(t, KindMonitoringReview, sections[3].Desc.Kind)
}

func TestSelectFullDocumentIncludesEverySection(t *testing.T) {
	sections := Select(fullDocument())
	require.Len(t, sections, len(Catalog))
	for i, sec := range sections {
		assert.Equal(t, Catalog[i].Kind, sec.Desc.Kind)
	}
}

func TestSelectExcludesBlankSections(t *testing.T) {
	doc := &model.ReportDocument{
		SiteRules: &model.SiteRules{
			GeneralRules:    "   ",
			PPERequirements: "\t\n",
		},
		SiteInduction: &model.SiteInduction{
			InductionTopics: []string{},
		},
	}
	assert.Empty(t, Select(doc))
}

func TestSelectOptionSectionsArePresenceGated(t *testing.T) {
	// Present but empty selections still render, as placeholders
	doc := &model.ReportDocument{
		HighRiskWork:   &model.OptionSelection{},
		NotifiableWork: &model.OptionSelection{SelectedOptions: []string{}},
	}
	sections := Select(doc)
	require.Len(t, sections, 2)
	assert.Equal(t, KindHighRiskWork, sections[0].Desc.Kind)
	assert.Equal(t, KindNotifiableWork, sections[1].Desc.Kind)

	// Absent selections do not
	assert.Empty(t, Select(&model.ReportDocument{}))
}

func TestSelectChecklistRequiresASelectedLeaf(t *testing.T) {
	allFalse := &model.ReportDocument{
		HazardIdentification: &model.HazardIdentification{},
	}
	assert.Empty(t, Select(allFalse))

	oneTrue := &model.ReportDocument{
		HazardIdentification: &model.HazardIdentification{
			PlantEquipment: model.PlantFlags{PowerTools: true},
		},
	}
	sections := Select(oneTrue)
	require.Len(t, sections, 1)
	assert.Equal(t, KindHazardIdentification, sections[0].Desc.Kind)
}

func TestSelectFiltersIndividualFields(t *testing.T) {
	doc := &model.ReportDocument{
		SiteInformation: &model.SiteInformation{
			SiteManager: "J. Metcalfe",
			SitePhone:   "  ",
		},
	}
	sections := Select(doc)
	require.Len(t, sections, 1)

	values := sections[0].Values
	assert.Contains(t, values, "siteManager")
	assert.NotContains(t, values, "sitePhone")
	assert.NotContains(t, values, "address")
	assert.NotContains(t, values, "accessRestrictions")
}

func TestMeaningful(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{"nil", nil, false},
		{"empty string", "", false},
		{"whitespace string", "  \t", false},
		{"text", "hello", true},
		{"empty slice", []any{}, false},
		{"slice with element", []any{"a"}, true},
		{"empty map", map[string]any{}, false},
		{"map with blank values", map[string]any{"a": "  "}, false},
		{"map with content", map[string]any{"a": "x"}, true},
		{"false boolean", false, true},
		{"zero number", float64(0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, meaningful(tt.value))
		})
	}
}

func TestFilterFieldsDropsUndeclaredKeys(t *testing.T) {
	sub := &model.SiteInformation{SiteManager: "J. Metcalfe", SitePhone: "07700 900123"}
	values := filterFields(sub, []string{"siteManager"})
	require.Len(t, values, 1)
	assert.Equal(t, "J. Metcalfe", values["siteManager"])
}
