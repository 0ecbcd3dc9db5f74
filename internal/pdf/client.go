// Package pdf is the boundary to the external headless-browser snapshot
// service. The service accepts report HTML and returns rendered PDF bytes;
// nothing in this package knows anything about scores.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Renderer turns a self-contained HTML document into PDF bytes.
type Renderer interface {
	Render(ctx context.Context, html []byte) ([]byte, error)
}

// SnapshotClient renders via an HTTP snapshot service: POST the HTML,
// read back the PDF.
type SnapshotClient struct {
	baseURL string
	client  *http.Client
}

func NewSnapshotClient(baseURL string) *SnapshotClient {
	return &SnapshotClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

var _ Renderer = (*SnapshotClient)(nil)

// maxErrBody caps how much of an error response we echo back.
const maxErrBody = 512

func (c *SnapshotClient) Render(ctx context.Context, html []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/render", bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("pdf: build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/html; charset=utf-8")
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pdf: snapshot service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return nil, fmt.Errorf("pdf: snapshot service returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("pdf: read response: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("pdf: snapshot service returned empty body")
	}
	return out, nil
}
