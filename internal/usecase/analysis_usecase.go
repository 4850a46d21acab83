package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fadilmartias/profile-analyzer/internal/dto"
	"github.com/fadilmartias/profile-analyzer/internal/extract"
	"github.com/fadilmartias/profile-analyzer/internal/logger"
	"github.com/fadilmartias/profile-analyzer/internal/metrics"
	"github.com/fadilmartias/profile-analyzer/internal/scoring"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidRequest      = errors.New("invalid analyze request")
	ErrUnsupportedDocument = errors.New("unsupported document type")
)

const (
	extractionFailedNote = "could not extract text from the document; all section scores are 0"

	maxLoggedFilename = 120
	maxLoggedError    = 300
)

type AnalysisUsecase struct {
	engine         scoring.Engine
	documents      extract.Extractor
	plainText      extract.Extractor
	extractTimeout time.Duration
	metrics        *metrics.Metrics
	logger         *zap.Logger
}

func NewAnalysisUsecase(engine scoring.Engine, documents extract.Extractor, extractTimeout time.Duration, m *metrics.Metrics, l *zap.Logger) *AnalysisUsecase {
	return &AnalysisUsecase{
		engine:         engine,
		documents:      documents,
		plainText:      extract.PlainTextExtractor{},
		extractTimeout: extractTimeout,
		metrics:        m,
		logger:         logger.WithFields(l),
	}
}

// SupportedDocument reports whether AnalyzeDocument accepts filename.
func SupportedDocument(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".txt":
		return true
	}
	return false
}

func (uc *AnalysisUsecase) AnalyzeText(ctx context.Context, req dto.AnalyzeRequest) (*dto.AnalysisResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	start := time.Now()
	return uc.respond(uc.logger, req.Sections(), dto.SourceText, "", start), nil
}

// AnalyzeDocument extracts text from an uploaded document, splits it into
// sections with Partition and scores it. A document without extractable text
// yields a zero report with a note instead of an error.
func (uc *AnalysisUsecase) AnalyzeDocument(ctx context.Context, filename string, data []byte) (*dto.AnalysisResponse, error) {
	start := time.Now()
	log := logger.WithFields(uc.logger, zap.String("filename", logger.TruncateForLog(filename, maxLoggedFilename)))

	var extractor extract.Extractor
	var source string
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".pdf":
		extractor, source = uc.documents, dto.SourcePDF
	case ".txt":
		extractor, source = uc.plainText, dto.SourceTextFile
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDocument, ext)
	}

	extractCtx := ctx
	if uc.extractTimeout > 0 {
		var cancel context.CancelFunc
		extractCtx, cancel = context.WithTimeout(ctx, uc.extractTimeout)
		defer cancel()
	}

	text, err := extractor.Extract(extractCtx, data)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		log.Warn("document extraction failed",
			zap.String("source", source),
			zap.String("error", logger.TruncateForLog(err.Error(), maxLoggedError)))
		uc.metrics.ObserveExtractionFailure(source)
		return uc.respond(log, scoring.Sections{}, source, extractionFailedNote, start), nil
	}

	return uc.respond(log, Partition(text), source, "", start), nil
}

func (uc *AnalysisUsecase) respond(log *zap.Logger, sections scoring.Sections, source, note string, start time.Time) *dto.AnalysisResponse {
	report := uc.engine.Score(sections)
	resp := &dto.AnalysisResponse{
		Report:    report,
		LatencyMS: time.Since(start).Milliseconds(),
		Source:    source,
		RequestID: uuid.NewString(),
		Note:      note,
	}

	uc.metrics.ObserveAnalysis(source, uc.engine.Name(), report.OverallScore)
	logger.WithFields(log, zap.String("request_id", resp.RequestID)).Info("profile analyzed",
		zap.String("source", source),
		zap.String("engine", uc.engine.Name()),
		zap.Int("overall_score", report.OverallScore),
		zap.Int64("latency_ms", resp.LatencyMS))
	return resp
}
