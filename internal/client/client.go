// Package client talks to a running profile analyzer server.
package client

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/fadilmartias/profile-analyzer/internal/dto"
	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"
)

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Result keeps the raw report body next to the fields callers usually need.
type Result struct {
	Raw          []byte
	OverallScore int
	Version      string
	Source       string
	Note         string
}

type Client struct {
	http *resty.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// Health returns the scoring version and engine the server runs.
func (c *Client) Health(ctx context.Context) (version, engine string, err error) {
	resp, err := c.http.R().SetContext(ctx).Get("/health")
	if err != nil {
		return "", "", err
	}
	if resp.IsError() {
		return "", "", apiError(resp)
	}
	body := resp.String()
	return gjson.Get(body, "version").String(), gjson.Get(body, "engine").String(), nil
}

func (c *Client) Analyze(ctx context.Context, req dto.AnalyzeRequest) (*Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/analyze")
	if err != nil {
		return nil, err
	}
	return result(resp)
}

// AnalyzeFile uploads a PDF or text export under the "file" form field.
func (c *Client) AnalyzeFile(ctx context.Context, filename string, data []byte) (*Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", filename, bytes.NewReader(data)).
		Post("/analyze_pdf")
	if err != nil {
		return nil, err
	}
	return result(resp)
}

func result(resp *resty.Response) (*Result, error) {
	if resp.IsError() {
		return nil, apiError(resp)
	}

	body := resp.Body()
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON in response")
	}
	fields := gjson.GetManyBytes(body, "overall_score", "version", "_source", "note")
	if !fields[0].Exists() {
		return nil, fmt.Errorf("no overall_score in response")
	}

	return &Result{
		Raw:          body,
		OverallScore: int(fields[0].Int()),
		Version:      fields[1].String(),
		Source:       fields[2].String(),
		Note:         fields[3].String(),
	}, nil
}

func apiError(resp *resty.Response) error {
	message := gjson.GetBytes(resp.Body(), "message").String()
	if message == "" {
		message = resp.Status()
	}
	return &APIError{Status: resp.StatusCode(), Message: message}
}
