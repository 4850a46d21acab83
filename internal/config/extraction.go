package config

import (
	"sync"
	"time"
)

type ExtractionConfig struct {
	MaxUploadBytes int64
	Timeout        time.Duration
	OCREnabled     bool
	TesseractLang  string
}

var (
	extractionConfig *ExtractionConfig
	extractionOnce   sync.Once
)

func LoadExtractionConfig() *ExtractionConfig {
	extractionOnce.Do(func() {
		extractionConfig = newExtractionConfig()
	})
	return extractionConfig
}

func newExtractionConfig() *ExtractionConfig {
	return &ExtractionConfig{
		MaxUploadBytes: int64(envInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
		Timeout:        envDuration("EXTRACT_TIMEOUT", 60*time.Second),
		OCREnabled:     envBool("EXTRACT_OCR_ENABLED", false),
		TesseractLang:  envString("TESSERACT_LANG", "eng"),
	}
}
