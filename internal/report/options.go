package report

import (
	"strings"

	"github.com/sitesafe/sitesafe/internal/model"
)

// Placeholder text rendered when an option section is present but holds
// no selections. The sections still appear so the reader can see the
// question was answered in the negative.
const (
	highRiskNonePlaceholder   = "No high risk construction work has been selected for this project."
	notifiableNonePlaceholder = "This project does not include notifiable work."
)

// highRiskOptionText maps stored option codes for high risk construction
// work to the long-form wording printed in the report. Codes without an
// entry fall back to the raw code so a new option never vanishes from
// the output.
var highRiskOptionText = map[string]string{
	"asbestos":            "Work which involves the removal of asbestos or asbestos-containing materials",
	"confined_spaces":     "Work in confined spaces requiring a rescue plan",
	"contaminated_land":   "Work on land known or suspected to be contaminated",
	"demolition":          "Demolition or dismantling of a structure",
	"deep_excavations":    "Excavations deeper than 1.2 metres where there is a risk of collapse or burial",
	"diving":              "Work involving diving operations",
	"explosives":          "Work involving the use of explosives",
	"heavy_lifting":       "Lifting operations involving cranes or other heavy lifting equipment",
	"near_water":          "Work on, over or near water where there is a risk of drowning",
	"risk_of_falling":     "Work at height where there is a risk of falling more than 2 metres",
	"structural_collapse": "Work on a structure at risk of accidental collapse",
	"temporary_works":     "Erection or dismantling of temporary works or falsework",
	"tunnelling":          "Work in tunnels, shafts or caissons",
	"utilities":           "Work near live underground or overhead services",
}

// notifiableOptionText maps stored option codes for notifiable work to
// the notification criteria wording.
var notifiableOptionText = map[string]string{
	"over_30_days":     "The construction work is expected to last longer than 30 working days with more than 20 workers on site simultaneously",
	"over_500_person":  "The construction work is expected to exceed 500 person days",
	"f10_submitted":    "An F10 notification has been submitted to the Health and Safety Executive",
	"domestic_client":  "The work is carried out for a domestic client and notification duties have been agreed in writing",
	"multiple_phases":  "The project is delivered in multiple notifiable phases under a single construction phase plan",
	"asbestos_licence": "The work includes licensed asbestos removal notified to the relevant enforcing authority",
}

// expandOptions resolves a selection to display lines using the given
// lookup, skipping blank codes and preserving the stored order.
func expandOptions(sel *model.OptionSelection, lookup map[string]string) []string {
	if sel == nil {
		return nil
	}
	var lines []string
	for _, code := range sel.SelectedOptions {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		if text, ok := lookup[code]; ok {
			lines = append(lines, text)
		} else {
			lines = append(lines, code)
		}
	}
	return lines
}

// highRiskLines returns the bullet lines for the high risk section, or
// the placeholder when nothing is selected.
func highRiskLines(sel *model.OptionSelection) []string {
	if lines := expandOptions(sel, highRiskOptionText); len(lines) > 0 {
		return lines
	}
	return []string{highRiskNonePlaceholder}
}

// notifiableLines returns the bullet lines for the notifiable work
// section, or the placeholder when nothing is selected.
func notifiableLines(sel *model.OptionSelection) []string {
	if lines := expandOptions(sel, notifiableOptionText); len(lines) > 0 {
		return lines
	}
	return []string{notifiableNonePlaceholder}
}
