// Package extract converts uploaded documents into plain text.
//
// Extractors are best effort. A Chain tries several of them in order and
// reports a *Failure when none produced usable text, so callers can tell an
// unreadable document apart from an empty profile.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

var ErrNoText = errors.New("no text extracted from document")

type Extractor interface {
	Extract(ctx context.Context, doc []byte) (string, error)
	Name() string
}

// Failure is returned by Chain when every extractor failed or returned blank
// text. It matches ErrNoText with errors.Is.
type Failure struct {
	Attempts map[string]error
	order    []string
}

func (f *Failure) add(name string, err error) {
	if f.Attempts == nil {
		f.Attempts = make(map[string]error)
	}
	f.Attempts[name] = err
	f.order = append(f.order, name)
}

func (f *Failure) Error() string {
	if len(f.order) == 0 {
		return ErrNoText.Error()
	}
	parts := make([]string, 0, len(f.order))
	for _, name := range f.order {
		parts = append(parts, fmt.Sprintf("%s: %v", name, f.Attempts[name]))
	}
	return fmt.Sprintf("%s (%s)", ErrNoText, strings.Join(parts, "; "))
}

func (f *Failure) Unwrap() []error {
	errs := []error{ErrNoText}
	for _, name := range f.order {
		errs = append(errs, f.Attempts[name])
	}
	return errs
}

type Chain struct {
	name       string
	extractors []Extractor
	logger     *zap.Logger
}

func NewChain(name string, logger *zap.Logger, extractors ...Extractor) *Chain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chain{name: name, extractors: extractors, logger: logger}
}

func (c *Chain) Name() string {
	return c.name
}

// Extract returns the first non-blank text produced by an extractor.
func (c *Chain) Extract(ctx context.Context, doc []byte) (string, error) {
	failure := &Failure{}
	for _, e := range c.extractors {
		if err := ctx.Err(); err != nil {
			failure.add(e.Name(), err)
			break
		}

		text, err := e.Extract(ctx, doc)
		if err == nil && strings.TrimSpace(text) == "" {
			err = ErrNoText
		}
		if err == nil {
			c.logger.Debug("document text extracted",
				zap.String("extractor", e.Name()),
				zap.Int("chars", len(text)))
			return text, nil
		}

		c.logger.Warn("extractor produced no text, trying next",
			zap.String("extractor", e.Name()),
			zap.Error(err))
		failure.add(e.Name(), err)
	}
	return "", failure
}
