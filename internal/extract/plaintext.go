package extract

import (
	"bytes"
	"context"
	"strings"
	"unicode/utf8"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// PlainTextExtractor accepts UTF-8 text uploads. Invalid sequences are
// replaced rather than rejected.
type PlainTextExtractor struct{}

func (PlainTextExtractor) Name() string {
	return "plaintext"
}

func (PlainTextExtractor) Extract(_ context.Context, doc []byte) (string, error) {
	doc = bytes.TrimPrefix(doc, utf8BOM)
	text := string(doc)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "�")
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}
