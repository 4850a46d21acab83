package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"go.uber.org/zap"
)

// FitzExtractor reads the embedded text layer of PDF, XPS and EPUB documents.
type FitzExtractor struct {
	logger *zap.Logger
}

func NewFitzExtractor(logger *zap.Logger) *FitzExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FitzExtractor{logger: logger}
}

func (e *FitzExtractor) Name() string {
	return "fitz"
}

func (e *FitzExtractor) Extract(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrNoText
	}

	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("failed to open document: %w", err)
	}
	defer doc.Close()

	pages := make([]string, 0, doc.NumPage())
	var lastErr error
	for n := 0; n < doc.NumPage(); n++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := doc.Text(n)
		if err != nil {
			// One unreadable page should not lose the rest of the document.
			lastErr = fmt.Errorf("page %d: %w", n+1, err)
			e.logger.Debug("page text extraction failed", zap.Int("page", n+1), zap.Error(err))
			pages = append(pages, "")
			continue
		}
		pages = append(pages, text)
	}

	result := strings.Join(pages, "\n")
	if strings.TrimSpace(result) == "" {
		if lastErr != nil {
			return "", errors.Join(ErrNoText, lastErr)
		}
		return "", ErrNoText
	}
	return result, nil
}
