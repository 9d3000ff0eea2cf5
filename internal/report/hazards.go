package report

import (
	"fmt"
	"strings"

	"github.com/sitesafe/sitesafe/internal/model"
)

// Risk grid geometry. Caption, three label cells and three value cells
// add up to the full content width.
const (
	riskCaptionW = 60.0
	riskLabelW   = 25.0
	riskValueW   = 15.0
	riskRowH     = 6.0
	hazardGap    = 4.0
)

// renderHazards draws one mini-table per hazard record. Each hazard is
// measured up front and moved to a fresh page when it will not fit, so
// a risk grid is never split across a page edge.
func (c *composer) renderHazards() {
	c.renderSectionHeader("Hazards")
	for i, hz := range c.doc.Hazards {
		c.renderHazard(i, hz)
	}
	c.pdf.Ln(sectionGap - hazardGap)
}

func (c *composer) renderHazard(i int, hz model.HazardRecord) {
	pdf := c.pdf

	title := strings.TrimSpace(hz.Title)
	if title == "" {
		title = fmt.Sprintf("Hazard %d", i+1)
	}
	measures := controlMeasureLines(hz.ControlMeasures)

	if est := c.estimateHazardHeight(hz, measures); pdf.GetY()+est > breakY && est < breakY-marginTop {
		pdf.AddPage()
	}

	pdf.SetX(marginLeft)
	pdf.SetFillColor(225, 231, 238)
	pdf.SetDrawColor(180, 180, 180)
	pdf.SetFont("Helvetica", "B", 9.5)
	pdf.CellFormat(contentWidth, 6.5, c.tr(title), "1", 1, "L", true, 0, "")

	if strings.TrimSpace(hz.WhoMightBeHarmed) != "" {
		c.renderRow("Who might be harmed", hz.WhoMightBeHarmed)
	}
	if strings.TrimSpace(hz.HowMightBeHarmed) != "" {
		c.renderRow("How they might be harmed", hz.HowMightBeHarmed)
	}
	c.renderRiskRow("Risk Before Controls", hz.BeforeLikelihood, hz.BeforeSeverity, hz.BeforeTotal)
	if measures != "" {
		c.renderRow("Control Measures", measures)
	}
	c.renderRiskRow("Risk After Controls", hz.AfterLikelihood, hz.AfterSeverity, hz.AfterTotal)

	pdf.Ln(hazardGap)
}

// renderRiskRow draws one likelihood/severity/total grid line. The
// values are author supplied and printed verbatim; nothing is computed
// or validated here.
func (c *composer) renderRiskRow(caption, likelihood, severity, total string) {
	pdf := c.pdf
	if pdf.GetY()+riskRowH > breakY {
		pdf.AddPage()
	}
	pdf.SetX(marginLeft)

	pdf.SetFillColor(245, 246, 248)
	pdf.SetFont("Helvetica", "B", 8.5)
	pdf.CellFormat(riskCaptionW, riskRowH, caption, "1", 0, "L", true, 0, "")

	for _, cell := range []struct{ label, value string }{
		{"Likelihood", likelihood},
		{"Severity", severity},
		{"Total", total},
	} {
		pdf.SetFont("Helvetica", "B", 8.5)
		pdf.CellFormat(riskLabelW, riskRowH, cell.label, "1", 0, "L", true, 0, "")
		pdf.SetFont("Helvetica", "", 8.5)
		pdf.CellFormat(riskValueW, riskRowH, c.tr(cell.value), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(riskRowH)
}

// estimateHazardHeight approximates the vertical space one hazard block
// needs, used only for the pre-emptive page break.
func (c *composer) estimateHazardHeight(hz model.HazardRecord, measures string) float64 {
	pdf := c.pdf
	pdf.SetFont("Helvetica", "", 9)

	h := 6.5 + 2*riskRowH + hazardGap
	for _, text := range []string{hz.WhoMightBeHarmed, hz.HowMightBeHarmed, measures} {
		if strings.TrimSpace(text) == "" {
			continue
		}
		lines := pdf.SplitText(text, valueWidth-2*cellPad)
		h += float64(len(lines))*lineHeight + 2*cellPad
	}
	return h
}

// controlMeasureLines renders the control measures as bullet lines
func controlMeasureLines(measures []model.ControlMeasure) string {
	var items []string
	for _, m := range measures {
		if strings.TrimSpace(m.Description) != "" {
			items = append(items, m.Description)
		}
	}
	return bulletList(items)
}
