// Package encoder provides an embedder.Client implementation backed by a
// self-hosted image encoder service exposing a small REST API.
package encoder

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"stylist/pkg/embedder"
	"stylist/pkg/serrors"
)

// Client talks to the encoder REST API and fulfills the embedder.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the encoder
	baseURL    string       // baseURL of the encoder service
	dimension  int          // dimension every returned embedding must have
}

// Embed submits the image to the encoder and returns its embedding vector.
// A 422 from the encoder means the image could not be processed and maps to
// ErrInvalidInput; any other failure maps to ErrUpstream.
func (c *Client) Embed(ctx context.Context, image []byte, contentType string) ([]float32, error) {
	body := struct {
		Image       string `json:"image"`
		ContentType string `json:"contentType"`
	}{
		Image:       base64.StdEncoding.EncodeToString(image),
		ContentType: contentType,
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/embeddings",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not reach embedding service")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not read response body")
	}
	if resp.StatusCode == http.StatusUnprocessableEntity {
		return nil, serrors.With(serrors.ErrInvalidInput,
			"embedding service rejected image: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrUpstream,
			"embedding failed: %s", strings.TrimSpace(string(b)))
	}

	// successful
	var embedResp struct {
		Embedding []float32 `json:"embedding"`
	}
	if err := json.Unmarshal(b, &embedResp); err != nil {
		return nil, serrors.Wrap(serrors.ErrUpstream, err, "could not decode response")
	}
	// the store's vector column is fixed-width, so a wrong-length embedding
	// is an encoder fault and must not reach the insert
	if len(embedResp.Embedding) != c.dimension {
		return nil, serrors.With(serrors.ErrUpstream,
			"embedding has %d dimensions, expected %d", len(embedResp.Embedding), c.dimension)
	}

	return embedResp.Embedding, nil
}

// Ensure Client conforms to the embedder.Client interface at compile time.
var _ embedder.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client to talk to the
// encoder service at baseURL. Embeddings whose length differs from dimension
// are rejected.
func New(httpClient *http.Client, baseURL string, dimension int) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		dimension:  dimension,
	}
}
