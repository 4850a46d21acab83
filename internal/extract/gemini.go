package extract

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fadilmartias/profile-analyzer/internal/config"
	"github.com/fadilmartias/profile-analyzer/internal/logger"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const transcribePrompt = "Transcribe all text in this document verbatim as plain text. " +
	"Keep section headings on their own lines. Do not summarize, translate or comment."

// API errors can echo large request payloads.
const maxLoggedErrorRunes = 300

type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiExtractor asks a Gemini model to transcribe the document. It retries
// transient API errors with exponential backoff and stops calling the API after
// too many consecutive failures.
type GeminiExtractor struct {
	models            contentGenerator
	model             string
	MaxRetries        int
	BaseDelay         time.Duration
	MaxDelay          time.Duration
	RequestTimeout    time.Duration
	consecutiveErrors atomic.Int32
	circuitBreakerMax int32
	logger            *zap.Logger
}

func NewGeminiExtractor(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (*GeminiExtractor, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	e := newGeminiExtractor(client.Models, cfg.Model, logger)
	e.MaxRetries = cfg.MaxRetries
	e.RequestTimeout = cfg.Timeout
	return e, nil
}

func newGeminiExtractor(models contentGenerator, model string, logger *zap.Logger) *GeminiExtractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeminiExtractor{
		models:            models,
		model:             model,
		MaxRetries:        3,
		BaseDelay:         time.Second,
		MaxDelay:          90 * time.Second,
		RequestTimeout:    90 * time.Second,
		circuitBreakerMax: 5,
		logger:            logger.With(zap.String("ai_provider", "gemini"), zap.String("ai_model", model)),
	}
}

func (e *GeminiExtractor) Name() string {
	return "gemini"
}

func (e *GeminiExtractor) Extract(ctx context.Context, doc []byte) (string, error) {
	if len(doc) == 0 {
		return "", ErrNoText
	}

	if n := e.consecutiveErrors.Load(); n >= e.circuitBreakerMax {
		return "", fmt.Errorf("circuit breaker open: too many consecutive errors (%d)", n)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, e.RequestTimeout)
	defer cancel()

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromBytes(doc, http.DetectContentType(doc)),
			genai.NewPartFromText(transcribePrompt),
		}, genai.RoleUser),
	}
	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0)),
	}

	var lastErr error
	for attempt := 0; attempt <= e.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := e.calculateBackoff(attempt)
			e.logger.Info("retrying transcription",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", e.MaxRetries),
				zap.Duration("delay", delay))

			select {
			case <-time.After(delay):
			case <-timeoutCtx.Done():
				return "", fmt.Errorf("context timeout during retry: %w", timeoutCtx.Err())
			}
		}

		result, err := e.models.GenerateContent(timeoutCtx, e.model, contents, genConfig)
		if err == nil {
			e.consecutiveErrors.Store(0)
			if err := validateGenerateResponse(result); err != nil {
				return "", fmt.Errorf("invalid response: %w", err)
			}
			return result.Text(), nil
		}

		lastErr = err
		if !isRetryableError(err) {
			e.consecutiveErrors.Add(1)
			return "", fmt.Errorf("transcription failed: %w", err)
		}
		e.logger.Warn("retryable transcription error",
			zap.Int("attempt", attempt+1),
			zap.String("error", logger.TruncateForLog(err.Error(), maxLoggedErrorRunes)))
	}

	e.consecutiveErrors.Add(1)
	return "", fmt.Errorf("max retries (%d) exceeded for transcription: %w", e.MaxRetries, lastErr)
}

func (e *GeminiExtractor) calculateBackoff(attempt int) time.Duration {
	delay := e.BaseDelay * time.Duration(math.Pow(2, float64(attempt-1)))
	if delay > e.MaxDelay {
		delay = e.MaxDelay
	}
	return delay
}

// CircuitBreakerStatus reports the consecutive error count and whether calls
// are currently refused.
func (e *GeminiExtractor) CircuitBreakerStatus() (consecutiveErrors int, isOpen bool) {
	n := e.consecutiveErrors.Load()
	return int(n), n >= e.circuitBreakerMax
}

func (e *GeminiExtractor) ResetCircuitBreaker() {
	e.consecutiveErrors.Store(0)
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		default:
			return false
		}
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "temporary failure") ||
		strings.Contains(errMsg, "EOF")
}

func validateGenerateResponse(resp *genai.GenerateContentResponse) error {
	if resp == nil {
		return fmt.Errorf("response is nil")
	}
	if len(resp.Candidates) == 0 {
		return fmt.Errorf("no candidates in response")
	}
	if resp.Candidates[0].Content == nil {
		return fmt.Errorf("candidate content is nil")
	}
	if len(resp.Candidates[0].Content.Parts) == 0 {
		return fmt.Errorf("no parts in content")
	}
	return nil
}
