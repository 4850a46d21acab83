package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

const defaultOCRDPI = 300

// OCRExtractor renders every page with go-fitz and runs tesseract over the
// image. It is meant for scanned documents without a text layer.
type OCRExtractor struct {
	binary string
	lang   string
	dpi    float64
	logger *zap.Logger
}

func NewOCRExtractor(lang string, logger *zap.Logger) *OCRExtractor {
	if lang == "" {
		lang = "eng"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OCRExtractor{
		binary: "tesseract",
		lang:   lang,
		dpi:    defaultOCRDPI,
		logger: logger,
	}
}

func (e *OCRExtractor) Name() string {
	return "ocr"
}

func (e *OCRExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	if err := e.checkTesseract(ctx); err != nil {
		return "", fmt.Errorf("tesseract check failed: %w", err)
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer doc.Close()

	e.logger.Debug("running OCR", zap.Int("pages", doc.NumPage()))

	var fullText bytes.Buffer
	var lastErr error
	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.ImagePNG(n, e.dpi)
		if err != nil {
			lastErr = fmt.Errorf("page %d: failed to render image: %w", n+1, err)
			e.logger.Debug("page render failed", zap.Error(lastErr))
			continue
		}

		// tesseract reads the image from stdin and writes text to stdout.
		cmd := exec.CommandContext(ctx, e.binary, "stdin", "stdout", "-l", e.lang)
		cmd.Stdin = bytes.NewReader(img)
		var stderr bytes.Buffer
		cmd.Stderr = &stderr
		out, err := cmd.Output()
		if err != nil {
			if ctx.Err() != nil {
				return "", ctx.Err()
			}
			lastErr = fmt.Errorf("page %d: tesseract error: %w, output: %s", n+1, err, strings.TrimSpace(stderr.String()))
			e.logger.Debug("page OCR failed", zap.Error(lastErr))
			continue
		}

		pageText := strings.TrimSpace(string(out))
		if pageText != "" {
			fullText.WriteString(pageText)
			fullText.WriteString("\n\n")
		}
	}

	result := strings.TrimSpace(fullText.String())
	if result == "" {
		if lastErr != nil {
			return "", errors.Join(ErrNoText, lastErr)
		}
		return "", ErrNoText
	}
	return result, nil
}

// checkTesseract verifies that the tesseract binary can be executed.
func (e *OCRExtractor) checkTesseract(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, e.binary, "--version").CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s not found or not executable: %w", e.binary, err)
	}
	e.logger.Debug("tesseract available", zap.String("version", strings.Split(string(out), "\n")[0]))
	return nil
}
