package report

import (
	"bytes"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/sitesafe/sitesafe/consts"
	"github.com/sitesafe/sitesafe/internal/model"
)

// A4 portrait layout in millimetres. The bottom margin reserves the
// footer band stamped by the finalizer pass.
const (
	pageWidth    = 210.0
	pageHeight   = 297.0
	marginLeft   = 15.0
	marginTop    = 15.0
	marginBottom = 25.0

	contentWidth = pageWidth - 2*marginLeft
	labelWidth   = contentWidth / 2
	valueWidth   = contentWidth - labelWidth

	lineHeight   = 5.0
	cellPad      = 1.5
	headerRowH   = 7.0
	sectionGap   = 6.0
	breakY       = pageHeight - marginBottom
	keepWithNext = 20.0

	// Cursor ceiling applied to the section that follows the hazard
	// tables. The hazard builder leaves the cursor wherever its last
	// mini-table ended, which can be deep in the footer band.
	hazardClampY = 240.0
)

// Sub-label markers detected by substring match inside a block. Blocks
// containing a marker are split at the marker rather than on the first
// line, because the text before it belongs to the preceding row.
const (
	markerHoursTeam = "Who are the key team members?"
	markerSiteRules = "PPE Requirements:"
)

var splitMarkers = map[SectionKind]string{
	KindHoursTeam: markerHoursTeam,
	KindSiteRules: markerSiteRules,
}

// composer drives one document through the layout engine. It owns the
// fpdf cursor; sections must not assume a page position beyond what the
// cursor tells them.
type composer struct {
	pdf     *fpdf.Fpdf
	doc     *model.ReportDocument
	profile *model.CompanyProfile
	logo    *logoImage

	// tr maps UTF-8 content to the cp1252 range the core fonts use,
	// so bullets and accented names survive the encoding.
	tr func(string) string
}

func newComposer(doc *model.ReportDocument, profile *model.CompanyProfile, logo *logoImage) *composer {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginLeft)
	pdf.SetAutoPageBreak(true, marginBottom)
	pdf.SetTitle(consts.ReportTitleCPP, false)
	pdf.SetAuthor(consts.ProjectName, false)
	return &composer{
		pdf:     pdf,
		doc:     doc,
		profile: profile,
		logo:    logo,
		tr:      pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

// compose renders the header and every selected section in catalog
// order. It fails fast on the first drawing error so a broken page
// never silently truncates the document.
func (c *composer) compose() error {
	c.pdf.AddPage()
	c.renderHeader()
	if err := c.pdf.Error(); err != nil {
		return err
	}

	afterHazards := false
	for _, sec := range Select(c.doc) {
		if afterHazards {
			c.clampAfterHazards()
			afterHazards = false
		}

		switch sec.Desc.Layout {
		case LayoutCustom:
			c.renderHazards()
			afterHazards = true
		case LayoutTwoColumn:
			c.renderTwoColumn(sec)
		default:
			c.renderSingleColumn(sec)
		}

		if err := c.pdf.Error(); err != nil {
			return err
		}
	}
	return c.pdf.Error()
}

// renderHeader draws the logo, document title and the two side-by-side
// identity boxes (company on the left, project on the right).
func (c *composer) renderHeader() {
	pdf := c.pdf

	if c.logo != nil {
		c.logo.place(pdf, marginLeft, 12, 30)
	}

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(33, 37, 41)
	pdf.SetXY(marginLeft, 18)
	pdf.CellFormat(contentWidth, 10, consts.ReportTitleCPP, "", 1, "C", false, 0, "")

	boxTop := 38.0
	boxH := 40.0
	boxW := contentWidth/2 - 2.5

	c.renderInfoBox(marginLeft, boxTop, boxW, boxH, c.profile.Name, c.companyLines())
	c.renderInfoBox(marginLeft+boxW+5, boxTop, boxW, boxH, "Project Details", c.projectLines())

	pdf.SetY(boxTop + boxH + sectionGap)
}

func (c *composer) renderInfoBox(x, y, w, h float64, title string, lines []string) {
	pdf := c.pdf
	pdf.SetDrawColor(180, 180, 180)
	pdf.SetFillColor(245, 246, 248)
	pdf.Rect(x, y, w, h, "FD")

	pdf.SetXY(x+2, y+2)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(w-4, 6, c.tr(title), "", 2, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 8.5)
	for _, line := range lines {
		pdf.CellFormat(w-4, 4.2, c.tr(line), "", 2, "L", false, 0, "")
	}
}

func (c *composer) companyLines() []string {
	lines := c.profile.AddressLines()
	if strings.TrimSpace(c.profile.Phone) != "" {
		lines = append(lines, "Tel: "+c.profile.Phone)
	}
	if strings.TrimSpace(c.profile.Email) != "" {
		lines = append(lines, c.profile.Email)
	}
	return lines
}

func (c *composer) projectLines() []string {
	var lines []string
	add := func(label, v string) {
		if strings.TrimSpace(v) != "" {
			lines = append(lines, label+": "+v)
		}
	}
	if si := c.doc.SiteInformation; si != nil {
		add("Site Manager", si.SiteManager)
		add("Site Tel", si.SitePhone)
	}
	if p := c.doc.ProjectDescription; p != nil {
		add("Client", p.ClientName)
		add("Start Date", p.StartDate)
		add("Duration", p.ExpectedDuration)
	}
	return lines
}

// renderSectionHeader draws the filled title row, breaking to a new
// page first when too little room is left to keep the header together
// with at least one content row.
func (c *composer) renderSectionHeader(title string) {
	pdf := c.pdf
	if pdf.GetY()+headerRowH+keepWithNext > breakY {
		pdf.AddPage()
	}
	pdf.SetX(marginLeft)
	pdf.SetFillColor(41, 84, 128)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(41, 84, 128)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentWidth, headerRowH, c.tr(title), "1", 1, "L", true, 0, "")
	pdf.SetTextColor(33, 37, 41)
	pdf.SetDrawColor(180, 180, 180)
}

// renderTwoColumn draws one label | value row per content block
func (c *composer) renderTwoColumn(sec Section) {
	content := Format(sec, c.doc)
	if strings.TrimSpace(content) == "" {
		return
	}
	c.renderSectionHeader(sec.Desc.Title)

	for _, blk := range strings.Split(content, blockSep) {
		label, value := splitBlock(sec.Desc.Kind, blk)
		if strings.TrimSpace(label) == "" {
			continue
		}
		c.renderRow(label, value)
	}
	c.pdf.Ln(sectionGap)
}

// renderRow measures both cells, breaks the page when the row will not
// fit, then draws the bordered cells at a shared top edge.
func (c *composer) renderRow(label, value string) {
	pdf := c.pdf
	label, value = c.tr(label), c.tr(value)

	pdf.SetFont("Helvetica", "B", 9)
	labelLines := pdf.SplitText(label, labelWidth-2*cellPad)
	pdf.SetFont("Helvetica", "", 9)
	valueLines := pdf.SplitText(value, valueWidth-2*cellPad)

	n := len(labelLines)
	if len(valueLines) > n {
		n = len(valueLines)
	}
	rowH := float64(n)*lineHeight + 2*cellPad

	if pdf.GetY()+rowH > breakY && rowH < breakY-marginTop {
		pdf.AddPage()
	}

	x, y := marginLeft, pdf.GetY()
	pdf.Rect(x, y, labelWidth, rowH, "D")
	pdf.Rect(x+labelWidth, y, valueWidth, rowH, "D")

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(x+cellPad, y+cellPad)
	pdf.MultiCell(labelWidth-2*cellPad, lineHeight, label, "", "L", false)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetXY(x+labelWidth+cellPad, y+cellPad)
	pdf.MultiCell(valueWidth-2*cellPad, lineHeight, value, "", "L", false)

	pdf.SetY(y + rowH)
}

// renderSingleColumn draws the header row and one full-width body cell
func (c *composer) renderSingleColumn(sec Section) {
	content := Format(sec, c.doc)
	if strings.TrimSpace(content) == "" {
		return
	}
	c.renderSectionHeader(sec.Desc.Title)

	pdf := c.pdf
	content = c.tr(content)
	pdf.SetFont("Helvetica", "", 9)
	lines := pdf.SplitText(content, contentWidth-2*cellPad)
	bodyH := float64(len(lines))*lineHeight + 2*cellPad

	if pdf.GetY()+bodyH > breakY && bodyH < breakY-marginTop {
		pdf.AddPage()
	}

	x, y := marginLeft, pdf.GetY()
	pdf.Rect(x, y, contentWidth, bodyH, "D")
	pdf.SetXY(x+cellPad, y+cellPad)
	pdf.MultiCell(contentWidth-2*cellPad, lineHeight, content, "", "L", false)
	pdf.SetY(y + bodyH)
	pdf.Ln(sectionGap)
}

// clampAfterHazards repositions the cursor for the section following
// the hazard tables: back up to the top margin if the builder left the
// cursor above it, or onto a fresh page when too little room remains.
func (c *composer) clampAfterHazards() {
	pdf := c.pdf
	if pdf.GetY() < marginTop {
		pdf.SetY(marginTop)
	}
	if pdf.GetY() > hazardClampY {
		pdf.AddPage()
		pdf.SetY(marginTop)
	}
}

// splitBlock resolves one content block into its label and value. The
// high risk section splits on the pipe delimiter; marker sections split
// at their registered sub-label; everything else follows the first-line
// rule.
func splitBlock(kind SectionKind, blk string) (label, value string) {
	if kind == KindHighRiskWork {
		if i := strings.Index(blk, pipeDelim); i >= 0 {
			return blk[:i], strings.TrimSpace(blk[i+len(pipeDelim):])
		}
	}
	if marker, ok := splitMarkers[kind]; ok {
		if i := strings.Index(blk, marker); i >= 0 {
			return strings.TrimSuffix(marker, ":"), strings.TrimSpace(blk[i+len(marker):])
		}
	}
	if i := strings.Index(blk, "\n"); i >= 0 {
		return blk[:i], blk[i+1:]
	}
	return blk, ""
}

// output serialises the composed document
func (c *composer) output() ([]byte, int, error) {
	var buf bytes.Buffer
	if err := c.pdf.Output(&buf); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), c.pdf.PageCount(), nil
}
