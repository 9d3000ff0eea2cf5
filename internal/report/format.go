package report

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/sitesafe/sitesafe/internal/model"
)

// Formatted content conventions: blocks are separated by a blank line,
// lines within a block by a single newline. Two-column blocks put the
// row label on the first line and the value on the rest, except where a
// section registers a split marker (see composer.go).
const (
	blockSep = "\n\n"
	bullet   = "• "
)

// pipeDelim separates label from value in the high risk section, whose
// regulatory wording regularly spans multiple lines and so cannot use
// the first-line rule.
const pipeDelim = " | "

type formatFunc func(sec Section, doc *model.ReportDocument) string

var formatters = map[SectionKind]formatFunc{
	KindSiteInformation:      formatSiteInformation,
	KindProjectDescription:   formatProjectDescription,
	KindHoursTeam:            formatHoursTeam,
	KindManagementOfWork:     formatManagementOfWork,
	KindManagementStructure:  formatManagementStructure,
	KindSiteRules:            formatSiteRules,
	KindArrangements:         formatArrangements,
	KindSiteInduction:        formatSiteInduction,
	KindWelfareArrangements:  formatWelfareArrangements,
	KindFirstAidArrangements: formatFirstAid,
	KindRescuePlan:           formatRescuePlan,
	KindSpecificMeasures:     formatSpecificMeasures,
	KindHazardIdentification: formatHazardIdentification,
	KindHighRiskWork:         formatHighRiskWork,
	KindNotifiableWork:       formatNotifiableWork,
	KindContractors:          formatContractors,
	KindMonitoringReview:     formatMonitoringReview,
}

// Format turns a selected section into its content string. Sections
// without a registered formatter fall back to the generic field walk,
// so a new catalog entry renders usably before it gets bespoke wording.
func Format(sec Section, doc *model.ReportDocument) string {
	if fn, ok := formatters[sec.Desc.Kind]; ok {
		return fn(sec, doc)
	}
	return formatGeneric(sec)
}

// joinBlocks drops empty blocks and joins the rest
func joinBlocks(blocks ...string) string {
	var kept []string
	for _, b := range blocks {
		if strings.TrimSpace(b) != "" {
			kept = append(kept, b)
		}
	}
	return strings.Join(kept, blockSep)
}

// block builds a "Label\nvalue" block, or returns "" when the value is
// blank so no empty row is ever emitted.
func block(label, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	return label + "\n" + value
}

// bulletList renders items as one bullet line each
func bulletList(items []string) string {
	var lines []string
	for _, it := range items {
		if strings.TrimSpace(it) == "" {
			continue
		}
		lines = append(lines, bullet+it)
	}
	return strings.Join(lines, "\n")
}

func formatSiteInformation(_ Section, doc *model.ReportDocument) string {
	s := doc.SiteInformation
	var addr string
	if s.Address != nil {
		var parts []string
		for _, l := range []string{s.Address.Line1, s.Address.Line2, s.Address.Town, s.Address.County, s.Address.Postcode} {
			if strings.TrimSpace(l) != "" {
				parts = append(parts, l)
			}
		}
		addr = strings.Join(parts, ", ")
	}
	return joinBlocks(
		block("Site Address", addr),
		block("Site Manager", s.SiteManager),
		block("Site Telephone", s.SitePhone),
		block("Access Restrictions", s.AccessRestrictions),
	)
}

func formatProjectDescription(_ Section, doc *model.ReportDocument) string {
	p := doc.ProjectDescription
	return joinBlocks(
		block("Description of Works", p.Description),
		block("Client", p.ClientName),
		block("Start Date", p.StartDate),
		block("Expected Duration", p.ExpectedDuration),
	)
}

// Hours & Team keeps the legacy question wording inline: the composer
// re-splits the block on the question text rather than the first line.
func formatHoursTeam(_ Section, doc *model.ReportDocument) string {
	h := doc.HoursTeam
	blocks := []string{block("Working Hours", h.WorkingHours)}
	if strings.TrimSpace(h.KeyTeamMembers) != "" {
		blocks = append(blocks, markerHoursTeam+" "+strings.TrimSpace(h.KeyTeamMembers))
	}
	return joinBlocks(blocks...)
}

func formatManagementOfWork(_ Section, doc *model.ReportDocument) string {
	m := doc.ManagementOfWork
	return joinBlocks(
		block("How the Work is Managed", m.HowWorkIsManaged),
		block("Supervision Arrangements", m.SupervisionArrangements),
		block("Training Requirements", m.TrainingRequirements),
		block("Communication", m.CommunicationArrangement),
	)
}

func formatManagementStructure(_ Section, doc *model.ReportDocument) string {
	m := doc.ManagementStructure
	return joinBlocks(
		block("Principal Designer", m.PrincipalDesigner),
		block("Principal Contractor", m.PrincipalContractor),
		block("Site Supervisor", m.SiteSupervisor),
	)
}

// Site Rules keeps the PPE requirements label inline, re-split by the
// composer on its marker.
func formatSiteRules(_ Section, doc *model.ReportDocument) string {
	s := doc.SiteRules
	blocks := []string{block("General Site Rules", s.GeneralRules)}
	if strings.TrimSpace(s.PPERequirements) != "" {
		blocks = append(blocks, markerSiteRules+" "+strings.TrimSpace(s.PPERequirements))
	}
	blocks = append(blocks, block("Restricted Areas", s.RestrictedAreas))
	return joinBlocks(blocks...)
}

func formatArrangements(_ Section, doc *model.ReportDocument) string {
	a := doc.Arrangements
	return joinBlocks(
		block("Liaison with Others", a.LiaisonArrangements),
		block("Consultation with the Workforce", a.ConsultationArrangements),
		block("Site Security", a.SiteSecurity),
	)
}

func formatSiteInduction(_ Section, doc *model.ReportDocument) string {
	s := doc.SiteInduction
	return joinBlocks(
		block("Induction Topics", bulletList(s.InductionTopics)),
		block("Induction Led By", s.InductionLead),
	)
}

func formatWelfareArrangements(_ Section, doc *model.ReportDocument) string {
	w := doc.WelfareArrangements
	return joinBlocks(
		block("Toilets", w.Toilets),
		block("Rest Areas", w.RestAreas),
		block("Drinking Water", w.DrinkingWater),
		block("Changing Facilities", w.ChangingFacilities),
	)
}

func formatFirstAid(_ Section, doc *model.ReportDocument) string {
	f := doc.FirstAidArrangements
	return joinBlocks(
		block("First Aiders", f.FirstAiders),
		block("First Aid Kit Location", f.FirstAidKitLocation),
		block("Nearest Hospital", f.NearestHospital),
		block("Accident Reporting", f.AccidentReporting),
	)
}

func formatRescuePlan(_ Section, doc *model.ReportDocument) string {
	r := doc.RescuePlan
	return joinBlocks(
		block("Rescue Arrangements", r.RescueArrangements),
		block("Emergency Contacts", r.EmergencyContacts),
	)
}

func formatSpecificMeasures(_ Section, doc *model.ReportDocument) string {
	s := doc.SpecificMeasures
	return joinBlocks(
		block("Control Measures", bulletList(s.Measures)),
		block("Residual Risks", s.ResidualRisks),
	)
}

func formatHazardIdentification(_ Section, doc *model.ReportDocument) string {
	topics := selectedChecklistLeaves(doc.HazardIdentification)
	var blocks []string
	for _, t := range topics {
		blocks = append(blocks, block(t.Title, bulletList(t.Labels)))
	}
	return joinBlocks(blocks...)
}

// The high risk section is the one pipe-delimited producer: the
// regulatory wording spans lines, so label and value travel in a single
// block separated by pipeDelim instead of a newline.
func formatHighRiskWork(_ Section, doc *model.ReportDocument) string {
	return "Selected Categories" + pipeDelim + bulletList(highRiskLines(doc.HighRiskWork))
}

func formatNotifiableWork(_ Section, doc *model.ReportDocument) string {
	return bulletList(notifiableLines(doc.NotifiableWork))
}

func formatContractors(_ Section, doc *model.ReportDocument) string {
	var blocks []string
	for _, c := range doc.Contractors {
		var lines []string
		for _, l := range []string{c.Name, c.Trade, c.Phone, c.Email, c.Address} {
			if strings.TrimSpace(l) != "" {
				lines = append(lines, l)
			}
		}
		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}
	return joinBlocks(blocks...)
}

func formatMonitoringReview(_ Section, doc *model.ReportDocument) string {
	m := doc.MonitoringReview
	return joinBlocks(
		block("Inspection Schedule", m.InspectionSchedule),
		block("Review Frequency", m.ReviewFrequency),
		block("Responsible Person", m.ResponsiblePerson),
	)
}

var titleCaser = cases.Title(language.BritishEnglish)

// formatGeneric walks the filtered field values in declared order and
// derives each label from the field name. Fields missing a declared
// order entry are appended alphabetically so nothing meaningful is lost.
func formatGeneric(sec Section) string {
	seen := make(map[string]bool, len(sec.Values))
	var blocks []string

	emit := func(field string) {
		v, ok := sec.Values[field]
		if !ok || seen[field] {
			return
		}
		seen[field] = true
		if s := renderValue(v); s != "" {
			blocks = append(blocks, fieldLabel(field)+"\n"+s)
		}
	}

	for _, f := range sec.Desc.Fields {
		emit(f)
	}
	var rest []string
	for f := range sec.Values {
		if !seen[f] {
			rest = append(rest, f)
		}
	}
	sort.Strings(rest)
	for _, f := range rest {
		emit(f)
	}
	return strings.Join(blocks, blockSep)
}

// renderValue turns a decoded JSON value into display text
func renderValue(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case bool:
		if val {
			return "Yes"
		}
		return "No"
	case []any:
		var items []string
		for _, it := range val {
			if s := renderValue(it); s != "" {
				items = append(items, s)
			}
		}
		return bulletList(items)
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		var parts []string
		for _, k := range keys {
			if s := renderValue(val[k]); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", val)
	}
}

// fieldLabel turns a camelCase field name into a display label, e.g.
// "siteManager" becomes "Site Manager".
func fieldLabel(field string) string {
	var b strings.Builder
	for i, r := range field {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return titleCaser.String(b.String())
}
