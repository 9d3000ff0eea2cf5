package report

import (
	"fmt"

	"github.com/sitesafe/sitesafe/internal/model"
)

// stampFooters is the finalizer pass: it runs after composition, when
// the total page count is known, and revisits every page to write the
// footer band. Auto page breaks are disabled for the pass so writing in
// the band cannot spawn a new page.
func (c *composer) stampFooters(profile *model.CompanyProfile) {
	pdf := c.pdf
	total := pdf.PageCount()
	registration := c.tr(profile.RegistrationLine())

	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", 7.5)
	pdf.SetTextColor(120, 120, 120)

	for page := 1; page <= total; page++ {
		pdf.SetPage(page)
		pdf.SetXY(marginLeft, pageHeight-15)
		if registration != "" {
			pdf.CellFormat(contentWidth/2, 5, registration, "", 0, "L", false, 0, "")
		} else {
			pdf.CellFormat(contentWidth/2, 5, "", "", 0, "L", false, 0, "")
		}
		pdf.CellFormat(contentWidth/2, 5, fmt.Sprintf("Page %d of %d", page, total), "", 0, "R", false, 0, "")
	}
}
