package ioc

import (
	"context"

	"github.com/fadilmartias/profile-analyzer/internal/config"
	"github.com/fadilmartias/profile-analyzer/internal/extract"
	"go.uber.org/zap"
)

// InitDocumentExtractor chains the text layer reader with the optional OCR and
// Gemini fallbacks, in that order.
func InitDocumentExtractor(ctx context.Context, ecfg *config.ExtractionConfig, gcfg *config.GeminiConfig, logger *zap.Logger) extract.Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}

	extractors := []extract.Extractor{extract.NewFitzExtractor(logger)}
	if ecfg.OCREnabled {
		extractors = append(extractors, extract.NewOCRExtractor(ecfg.TesseractLang, logger))
	}
	if gcfg.Enabled() {
		gemini, err := extract.NewGeminiExtractor(ctx, gcfg, logger)
		if err != nil {
			logger.Warn("gemini fallback disabled", zap.Error(err))
		} else {
			extractors = append(extractors, gemini)
		}
	}

	names := make([]string, len(extractors))
	for i, e := range extractors {
		names[i] = e.Name()
	}
	logger.Info("document extraction chain", zap.Strings("extractors", names))

	return extract.NewChain("document", logger, extractors...)
}
