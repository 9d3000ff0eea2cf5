package report

import (
	"context"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/sitesafe/sitesafe/internal/model"
	apperrors "github.com/sitesafe/sitesafe/pkg/errors"
	"github.com/sitesafe/sitesafe/pkg/idgen"
	"github.com/sitesafe/sitesafe/pkg/logger"
	"github.com/sitesafe/sitesafe/pkg/telemetry"
)

const defaultLogoTimeout = 5 * time.Second

// Options configures a Generator. Zero values fall back to sensible
// defaults; CreationDate pins the document metadata timestamp so the
// same input yields byte-identical output.
type Options struct {
	HTTPClient   *http.Client
	Metrics      *telemetry.Metrics
	LogoTimeout  time.Duration
	CreationDate time.Time
}

// Generator renders Construction Phase Plan documents. It is stateless
// between calls and safe for concurrent use.
type Generator struct {
	client       *http.Client
	metrics      *telemetry.Metrics
	logoTimeout  time.Duration
	creationDate time.Time
}

// Result is one generated document with its final page count
type Result struct {
	PDF   []byte
	Pages int
}

// NewGenerator builds a Generator from options
func NewGenerator(opts Options) *Generator {
	g := &Generator{
		client:       opts.HTTPClient,
		metrics:      opts.Metrics,
		logoTimeout:  opts.LogoTimeout,
		creationDate: opts.CreationDate,
	}
	if g.client == nil {
		g.client = &http.Client{Timeout: defaultLogoTimeout}
	}
	if g.metrics == nil {
		g.metrics = telemetry.GetMetrics()
	}
	if g.logoTimeout <= 0 {
		g.logoTimeout = defaultLogoTimeout
	}
	return g
}

// Generate renders the document and returns the PDF bytes
func (g *Generator) Generate(ctx context.Context, doc *model.ReportDocument, profile *model.CompanyProfile) ([]byte, error) {
	res, err := g.GenerateResult(ctx, doc, profile)
	if err != nil {
		return nil, err
	}
	return res.PDF, nil
}

// GenerateResult renders the document and reports the page count along
// with the bytes. A document with no renderable sections is valid and
// produces the header and footer alone; a nil document is not.
func (g *Generator) GenerateResult(ctx context.Context, doc *model.ReportDocument, profile *model.CompanyProfile) (*Result, error) {
	if doc == nil {
		return nil, apperrors.New(apperrors.ErrCodeDocumentEmpty, "report document is required")
	}
	if profile == nil {
		return nil, apperrors.ErrValidation("company profile is required")
	}

	renderID := idgen.NewRenderID()
	log := logger.With(zap.String("render_id", renderID))
	start := time.Now()

	logo := g.fetchLogoTolerant(ctx, profile, log)

	comp := newComposer(doc, profile, logo)
	if !g.creationDate.IsZero() {
		comp.pdf.SetCreationDate(g.creationDate)
		comp.pdf.SetModificationDate(g.creationDate)
	}

	if err := comp.compose(); err != nil {
		g.metrics.ObserveGeneration("failure", time.Since(start).Seconds(), 0, 0)
		log.Error("document composition failed", zap.Error(err))
		return nil, apperrors.ErrRenderFailed(err)
	}

	comp.stampFooters(profile)

	pdf, pages, err := comp.output()
	if err != nil {
		g.metrics.ObserveGeneration("failure", time.Since(start).Seconds(), 0, 0)
		log.Error("document serialisation failed", zap.Error(err))
		return nil, apperrors.ErrRenderFailed(err)
	}

	g.metrics.ObserveGeneration("success", time.Since(start).Seconds(), pages, len(pdf))
	log.Info("document generated",
		zap.Int("pages", pages),
		zap.Int("bytes", len(pdf)),
		zap.Duration("duration", time.Since(start)))

	return &Result{PDF: pdf, Pages: pages}, nil
}

// fetchLogoTolerant downloads the company logo when a URL is set. Every
// failure is logged and counted but never propagated: the document is
// rendered without the logo instead.
func (g *Generator) fetchLogoTolerant(ctx context.Context, profile *model.CompanyProfile, log *zap.Logger) *logoImage {
	url := strings.TrimSpace(profile.LogoURL)
	if url == "" {
		return nil
	}

	fetchCtx, cancel := context.WithTimeout(ctx, g.logoTimeout)
	defer cancel()

	logo, err := fetchLogo(fetchCtx, g.client, url)
	if err != nil {
		g.metrics.LogoFetchErrors.Inc()
		log.Warn("company logo unavailable, rendering without it",
			zap.String("logo_url", url), zap.Error(err))
		return nil
	}
	return logo
}
