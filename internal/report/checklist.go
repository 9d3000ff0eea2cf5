package report

import "github.com/sitesafe/sitesafe/internal/model"

// checklistLeaf binds one checkbox flag to its display wording and the
// topic it is grouped under. The accessor keeps the binding compile
// checked against the model: renaming a flag breaks this table instead
// of silently dropping the checkbox from the report.
type checklistLeaf struct {
	topic string
	label string
	value func(*model.HazardIdentification) bool
}

// checklistLeaves is the full checkbox tree in display order
var checklistLeaves = []checklistLeaf{
	{"Working at Height", "Use of ladders or stepladders", func(h *model.HazardIdentification) bool { return h.WorkingAtHeight.Ladders }},
	{"Working at Height", "Scaffolding or mobile towers", func(h *model.HazardIdentification) bool { return h.WorkingAtHeight.Scaffolding }},
	{"Working at Height", "Roof work", func(h *model.HazardIdentification) bool { return h.WorkingAtHeight.RoofWork }},
	{"Working at Height", "Fragile surfaces", func(h *model.HazardIdentification) bool { return h.WorkingAtHeight.FragileSurfaces }},
	{"Working at Height", "Falling objects", func(h *model.HazardIdentification) bool { return h.WorkingAtHeight.FallingObjects }},

	{"Groundworks & Excavations", "Deep excavations", func(h *model.HazardIdentification) bool { return h.GroundWorks.DeepExcavations }},
	{"Groundworks & Excavations", "Underground services", func(h *model.HazardIdentification) bool { return h.GroundWorks.UndergroundServices }},
	{"Groundworks & Excavations", "Overhead services", func(h *model.HazardIdentification) bool { return h.GroundWorks.OverheadServices }},
	{"Groundworks & Excavations", "Confined spaces", func(h *model.HazardIdentification) bool { return h.GroundWorks.ConfinedSpaces }},

	{"Plant & Equipment", "Mobile plant and vehicles", func(h *model.HazardIdentification) bool { return h.PlantEquipment.MobilePlant }},
	{"Plant & Equipment", "Lifting operations", func(h *model.HazardIdentification) bool { return h.PlantEquipment.LiftingOperations }},
	{"Plant & Equipment", "Power tools", func(h *model.HazardIdentification) bool { return h.PlantEquipment.PowerTools }},
	{"Plant & Equipment", "Hand arm vibration", func(h *model.HazardIdentification) bool { return h.PlantEquipment.Vibration }},

	{"Hazardous Substances", "Asbestos", func(h *model.HazardIdentification) bool { return h.HazardousSubstances.Asbestos }},
	{"Hazardous Substances", "Silica dust", func(h *model.HazardIdentification) bool { return h.HazardousSubstances.SilicaDust }},
	{"Hazardous Substances", "Cement and concrete products", func(h *model.HazardIdentification) bool { return h.HazardousSubstances.Cement }},
	{"Hazardous Substances", "Lead paint", func(h *model.HazardIdentification) bool { return h.HazardousSubstances.LeadPaint }},
	{"Hazardous Substances", "Solvents and adhesives", func(h *model.HazardIdentification) bool { return h.HazardousSubstances.Solvents }},
	{"Hazardous Substances", "Fuel storage", func(h *model.HazardIdentification) bool { return h.HazardousSubstances.FuelStorage }},

	{"Site Environment", "Noise", func(h *model.HazardIdentification) bool { return h.SiteEnvironment.Noise }},
	{"Site Environment", "Manual handling", func(h *model.HazardIdentification) bool { return h.SiteEnvironment.ManualHandling }},
	{"Site Environment", "Slips and trips", func(h *model.HazardIdentification) bool { return h.SiteEnvironment.SlipsAndTrips }},
	{"Site Environment", "Fire", func(h *model.HazardIdentification) bool { return h.SiteEnvironment.Fire }},
	{"Site Environment", "Public access to the site", func(h *model.HazardIdentification) bool { return h.SiteEnvironment.PublicAccess }},
	{"Site Environment", "Traffic management", func(h *model.HazardIdentification) bool { return h.SiteEnvironment.TrafficManagement }},
}

// checklistTopic groups the selected leaves of one topic
type checklistTopic struct {
	Title  string
	Labels []string
}

// selectedChecklistLeaves returns the selected leaves grouped by topic,
// preserving the tree's display order. Topics with no selected leaf are
// omitted entirely.
func selectedChecklistLeaves(h *model.HazardIdentification) []checklistTopic {
	if h == nil {
		return nil
	}
	var (
		topics []checklistTopic
		index  = map[string]int{}
	)
	for _, leaf := range checklistLeaves {
		if !leaf.value(h) {
			continue
		}
		i, ok := index[leaf.topic]
		if !ok {
			i = len(topics)
			index[leaf.topic] = i
			topics = append(topics, checklistTopic{Title: leaf.topic})
		}
		topics[i].Labels = append(topics[i].Labels, leaf.label)
	}
	return topics
}
