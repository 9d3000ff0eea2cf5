package report

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitesafe/sitesafe/internal/model"
	apperrors "github.com/sitesafe/sitesafe/pkg/errors"
)

// 1x1 transparent PNG
const tinyPNG = "iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8z8BQDwAEhQGAhKmMIQAAAABJRU5ErkJggg=="

func tinyPNGBytes(t *testing.T) []byte {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(tinyPNG)
	require.NoError(t, err)
	return data
}

func TestGenerateEmptyDocument(t *testing.T) {
	res, err := testGenerator().GenerateResult(context.Background(), &model.ReportDocument{}, testProfile())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Pages)
	assert.True(t, len(res.PDF) > 0)
	assert.Equal(t, "%PDF-", string(res.PDF[:5]))
}

func TestGenerateNilDocument(t *testing.T) {
	_, err := testGenerator().GenerateResult(context.Background(), nil, testProfile())
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeDocumentEmpty, appErr.Code)
}

func TestGenerateNilProfile(t *testing.T) {
	_, err := testGenerator().GenerateResult(context.Background(), &model.ReportDocument{}, nil)
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}

func TestGenerateFullDocument(t *testing.T) {
	res, err := testGenerator().GenerateResult(context.Background(), fullDocument(), testProfile())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Pages, 2)
}

func TestGenerateIsDeterministic(t *testing.T) {
	g := testGenerator()
	first, err := g.Generate(context.Background(), fullDocument(), testProfile())
	require.NoError(t, err)
	second, err := g.Generate(context.Background(), fullDocument(), testProfile())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

// A hazards value stored as a single object must render identically to
// the same hazard stored as a one-element array.
func TestGenerateHazardNormalization(t *testing.T) {
	single := []byte(`{"hazards": {
		"title": "Noise",
		"whoMightBeHarmed": "Operatives",
		"beforeLikelihood": "3", "beforeSeverity": "3", "beforeTotal": "9",
		"afterLikelihood": "1", "afterSeverity": "3", "afterTotal": "3"
	}}`)
	array := []byte(`{"hazards": [{
		"title": "Noise",
		"whoMightBeHarmed": "Operatives",
		"beforeLikelihood": "3", "beforeSeverity": "3", "beforeTotal": "9",
		"afterLikelihood": "1", "afterSeverity": "3", "afterTotal": "3"
	}]}`)

	var docSingle, docArray model.ReportDocument
	require.NoError(t, json.Unmarshal(single, &docSingle))
	require.NoError(t, json.Unmarshal(array, &docArray))

	g := testGenerator()
	pdfSingle, err := g.Generate(context.Background(), &docSingle, testProfile())
	require.NoError(t, err)
	pdfArray, err := g.Generate(context.Background(), &docArray, testProfile())
	require.NoError(t, err)

	assert.Equal(t, pdfArray, pdfSingle)
}

func TestGenerateManyHazardsSpansPages(t *testing.T) {
	doc := &model.ReportDocument{Hazards: manyHazards(40)}
	res, err := testGenerator().GenerateResult(context.Background(), doc, testProfile())
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Pages, 4)
}

func TestGenerateWithLogo(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(tinyPNGBytes(t))
	}))
	defer srv.Close()

	profile := testProfile()
	profile.LogoURL = srv.URL

	res, err := testGenerator().GenerateResult(context.Background(), fullDocument(), profile)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Pages, 2)
}

func TestGenerateToleratesLogoFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusInternalServerError)
	}))
	defer srv.Close()

	profile := testProfile()
	profile.LogoURL = srv.URL

	res, err := testGenerator().GenerateResult(context.Background(), fullDocument(), profile)
	require.NoError(t, err)

	// Output matches a render with no logo at all
	plain := testProfile()
	expected, err := testGenerator().GenerateResult(context.Background(), fullDocument(), plain)
	require.NoError(t, err)
	assert.Equal(t, expected.Pages, res.Pages)
}

func TestFetchLogoRejectsNonImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("definitely not an image"))
	}))
	defer srv.Close()

	_, err := fetchLogo(context.Background(), srv.Client(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported logo image type")
}

func TestFetchLogoStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := fetchLogo(context.Background(), srv.Client(), srv.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 404")
}

func TestSniffImageType(t *testing.T) {
	imgType, err := sniffImageType(tinyPNGBytes(t))
	require.NoError(t, err)
	assert.Equal(t, "PNG", imgType)
}
