package report

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitBlock(t *testing.T) {
	tests := []struct {
		name  string
		kind  SectionKind
		block string
		label string
		value string
	}{
		{
			name:  "first line rule",
			kind:  KindProjectDescription,
			block: "Client\nMrs P. Hargreaves",
			label: "Client",
			value: "Mrs P. Hargreaves",
		},
		{
			name:  "first line rule with multiline value",
			kind:  KindProjectDescription,
			block: "Description of Works\nTwo storey extension\nwith alterations",
			label: "Description of Works",
			value: "Two storey extension\nwith alterations",
		},
		{
			name:  "single line block",
			kind:  KindProjectDescription,
			block: "Client",
			label: "Client",
			value: "",
		},
		{
			name:  "hours team marker",
			kind:  KindHoursTeam,
			block: markerHoursTeam + " Alice, Bob",
			label: markerHoursTeam,
			value: "Alice, Bob",
		},
		{
			name:  "site rules marker drops trailing colon",
			kind:  KindSiteRules,
			block: markerSiteRules + " Hard hats at all times",
			label: "PPE Requirements",
			value: "Hard hats at all times",
		},
		{
			name:  "marker absent falls back to first line",
			kind:  KindSiteRules,
			block: "General Site Rules\nNo smoking",
			label: "General Site Rules",
			value: "No smoking",
		},
		{
			name:  "high risk pipe delimiter",
			kind:  KindHighRiskWork,
			block: "Selected Categories" + pipeDelim + bullet + "Demolition work\n" + bullet + "Deep excavations",
			label: "Selected Categories",
			value: bullet + "Demolition work\n" + bullet + "Deep excavations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label, value := splitBlock(tt.kind, tt.block)
			assert.Equal(t, tt.label, label)
			assert.Equal(t, tt.value, value)
		})
	}
}

// renderUncompressed renders the full fixture without stream
// compression so text shows up literally in the output for assertions.
func renderUncompressed(t *testing.T) (string, int) {
	t.Helper()
	doc := fullDocument()
	comp := newComposer(doc, testProfile(), nil)
	comp.pdf.SetCompression(false)
	comp.pdf.SetCreationDate(pinnedDate)
	comp.pdf.SetModificationDate(pinnedDate)

	require.NoError(t, comp.compose())
	comp.stampFooters(testProfile())

	out, pages, err := comp.output()
	require.NoError(t, err)
	return string(out), pages
}

func TestComposeRendersSectionHeaders(t *testing.T) {
	out, _ := renderUncompressed(t)

	for _, title := range []string{
		"Site Information",
		"Project Description",
		"Hazards",
		"High Risk Construction Work",
		"Monitoring & Review",
	} {
		assert.Contains(t, out, "("+title+")", "missing section header %q", title)
	}
	assert.Contains(t, out, "(Construction Phase Plan)")
}

func TestComposeRendersHazardGrid(t *testing.T) {
	out, _ := renderUncompressed(t)

	assert.Contains(t, out, "(Falls from scaffold)")
	assert.Contains(t, out, "(Risk Before Controls)")
	assert.Contains(t, out, "(Risk After Controls)")
	assert.Contains(t, out, "(Likelihood)")
	assert.Contains(t, out, "(20)")
	assert.Contains(t, out, "(10)")
}

func TestStampFootersOnEveryPage(t *testing.T) {
	out, pages := renderUncompressed(t)
	require.GreaterOrEqual(t, pages, 2)

	for page := 1; page <= pages; page++ {
		assert.Contains(t, out, "(Page "+strconv.Itoa(page)+" of "+strconv.Itoa(pages)+")")
	}
	assert.Contains(t, out, "(Company No. 12345678 VAT No. GB987654321)")
}

func TestStampFootersWithoutRegistration(t *testing.T) {
	profile := testProfile()
	profile.CompanyNumber = ""
	profile.VATNumber = ""

	comp := newComposer(fullDocument(), profile, nil)
	comp.pdf.SetCompression(false)
	require.NoError(t, comp.compose())
	comp.stampFooters(profile)

	out, pages, err := comp.output()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pages, 1)
	assert.NotContains(t, string(out), "Company No.")
	assert.Contains(t, string(out), "(Page 1 of")
}
