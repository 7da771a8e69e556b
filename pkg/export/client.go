// Copyright 2025 Shutterdesk Inc.
// SPDX-License-Identifier: AGPL-3.0

package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/shutterdesk/inspection-service/internal/logging"
	"github.com/shutterdesk/inspection-service/internal/tracing"
)

type RendererConfig struct {
	URL     string
	Token   string
	Timeout time.Duration
}

var _ RendererInterface = (*RendererClient)(nil)

// RendererClient talks to the external Excel renderer.
type RendererClient struct {
	url    string
	token  string
	client *http.Client

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func NewRendererClient(cfg RendererConfig, tracer tracing.TracingInterface, logger logging.LoggerInterface) *RendererClient {
	return &RendererClient{
		url:   cfg.URL,
		token: cfg.Token,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		tracer: tracer,
		logger: logger,
	}
}

type renderResponse struct {
	DownloadURL string `json:"download_url"`
}

// Render posts the payload and returns the renderer's download URL
// verbatim.
func (c *RendererClient) Render(ctx context.Context, payload *Payload) (string, error) {
	ctx, span := c.tracer.Start(ctx, "export.RendererClient.Render")
	defer span.End()

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build renderer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("renderer request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("renderer returned status %d", resp.StatusCode)
	}

	var out renderResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode renderer response: %w", err)
	}
	if out.DownloadURL == "" {
		return "", fmt.Errorf("renderer response carried no download url")
	}

	return out.DownloadURL, nil
}
