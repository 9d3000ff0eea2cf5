package report

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-pdf/fpdf"
)

// Logos come from user-supplied URLs, so downloads are capped rather
// than trusted.
const maxLogoBytes = 4 << 20

// logoImage is a fetched, type-sniffed logo ready for placement
type logoImage struct {
	data    []byte
	imgType string
}

// fetchLogo downloads the company logo. Any failure returns an error
// for the caller to log and tolerate: a missing logo must never fail
// document generation.
func fetchLogo(ctx context.Context, client *http.Client, url string) (*logoImage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build logo request: %w", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch logo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch logo: unexpected status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read logo body: %w", err)
	}
	if len(data) > maxLogoBytes {
		return nil, fmt.Errorf("logo exceeds %d bytes", maxLogoBytes)
	}

	imgType, err := sniffImageType(data)
	if err != nil {
		return nil, err
	}
	return &logoImage{data: data, imgType: imgType}, nil
}

// sniffImageType maps the detected content type to the image type names
// the renderer accepts
func sniffImageType(data []byte) (string, error) {
	switch http.DetectContentType(data) {
	case "image/png":
		return "PNG", nil
	case "image/jpeg":
		return "JPG", nil
	case "image/gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("unsupported logo image type %q", http.DetectContentType(data))
	}
}

// place registers the image with the renderer and draws it at the given
// position with proportional height.
func (l *logoImage) place(pdf *fpdf.Fpdf, x, y, w float64) {
	opts := fpdf.ImageOptions{ImageType: l.imgType}
	pdf.RegisterImageOptionsReader("company-logo", opts, bytes.NewReader(l.data))
	pdf.ImageOptions("company-logo", x, y, w, 0, false, opts, 0, "")
}
