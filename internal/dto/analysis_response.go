package dto

import "github.com/fadilmartias/profile-analyzer/internal/scoring"

const (
	SourceText     = "text"
	SourcePDF      = "pdf"
	SourceTextFile = "text_file"
)

// AnalysisResponse is the score report plus metadata added by the caller.
type AnalysisResponse struct {
	scoring.Report
	LatencyMS int64  `json:"latency_ms"`
	Source    string `json:"_source"`
	RequestID string `json:"request_id"`
	Note      string `json:"note,omitempty"`
}
