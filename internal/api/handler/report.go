// Package handler provides HTTP request handlers for the API server.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sitesafe/sitesafe/internal/model"
	"github.com/sitesafe/sitesafe/internal/report"
	"github.com/sitesafe/sitesafe/pkg/errors"
)

// ReportHandler handles PDF generation requests
type ReportHandler struct {
	generator *report.Generator
}

// NewReportHandler creates a new report handler
func NewReportHandler(g *report.Generator) *ReportHandler {
	return &ReportHandler{generator: g}
}

// generateRequest is the request body for PDF generation
type generateRequest struct {
	Document       *model.ReportDocument `json:"document"`
	CompanyProfile *model.CompanyProfile `json:"company_profile"`
}

// GeneratePDF renders a Construction Phase Plan document to PDF
// POST /api/v1/reports/construction-phase-plan/pdf
func (h *ReportHandler) GeneratePDF(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(errors.Wrap(errors.ErrCodeDocumentDecode, "invalid request body", err))
		return
	}
	if req.Document == nil {
		c.Error(errors.New(errors.ErrCodeDocumentEmpty, "document is required"))
		return
	}
	if req.CompanyProfile == nil {
		c.Error(errors.ErrValidation("company_profile is required"))
		return
	}

	res, err := h.generator.GenerateResult(c.Request.Context(), req.Document, req.CompanyProfile)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="construction-phase-plan.pdf"`)
	c.Header("X-Document-Pages", strconv.Itoa(res.Pages))
	c.Data(http.StatusOK, "application/pdf", res.PDF)
}
