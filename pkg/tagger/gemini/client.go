// Package gemini provides a tagger.Client implementation backed by the Google
// Gemini generateContent API.
package gemini

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"stylist/pkg/domain"
	"stylist/pkg/serrors"
	"stylist/pkg/tagger"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// prompt instructs the model to answer with a single JSON object matching
// domain.Tags. response_mime_type pins the output to JSON so no markdown
// fencing needs to be stripped.
const prompt = `Analyze the clothing item in this image and respond with a JSON object ` +
	`with these fields: "category" (one of: top, bottom, shoes, outerwear, accessory), ` +
	`"type" (a short description such as "t-shirt" or "sneakers"), ` +
	`"season" (array drawn from: spring, summer, autumn, winter), ` +
	`"occasion" (array drawn from: casual, work, formal, party, sporty).`

// Client talks to the Gemini REST API and fulfills the tagger.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the Gemini API
	baseURL    string       // baseURL of the generative language API
	model      string       // model is the Gemini model name, e.g. "gemini-2.0-flash"
	apiKey     string       // apiKey authenticates requests
}

// Tag submits the image to Gemini and decodes the attribute set from the
// model's JSON answer. The returned tags are not validated against the known
// vocabularies; that is the caller's responsibility.
func (c *Client) Tag(ctx context.Context, image []byte, contentType string) (domain.Tags, error) {
	// https://ai.google.dev/api/generate-content
	type inlineData struct {
		MimeType string `json:"mime_type"`
		Data     string `json:"data"`
	}
	type part struct {
		Text       string      `json:"text,omitempty"`
		InlineData *inlineData `json:"inline_data,omitempty"`
	}
	body := struct {
		Contents []struct {
			Parts []part `json:"parts"`
		} `json:"contents"`
		GenerationConfig struct {
			ResponseMimeType string `json:"response_mime_type"`
		} `json:"generationConfig"`
	}{}
	body.Contents = append(body.Contents, struct {
		Parts []part `json:"parts"`
	}{Parts: []part{
		{Text: prompt},
		{InlineData: &inlineData{
			MimeType: contentType,
			Data:     base64.StdEncoding.EncodeToString(image),
		}},
	}})
	body.GenerationConfig.ResponseMimeType = "application/json"

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return domain.Tags{}, fmt.Errorf("could not marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(string(bodyBytes)))
	if err != nil {
		return domain.Tags{}, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Tags{}, serrors.Wrap(serrors.ErrUpstream, err, "could not reach tagging service")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.Tags{}, serrors.Wrap(serrors.ErrUpstream, err, "could not read response body")
	}
	if resp.StatusCode == http.StatusBadRequest {
		return domain.Tags{}, serrors.With(serrors.ErrInvalidInput,
			"tagging service rejected image: %s", strings.TrimSpace(string(b)))
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.Tags{}, serrors.With(serrors.ErrUpstream,
			"tagging failed: %s", strings.TrimSpace(string(b)))
	}

	// successful
	var genResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.Unmarshal(b, &genResp); err != nil {
		return domain.Tags{}, serrors.Wrap(serrors.ErrUpstream, err, "could not decode response")
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return domain.Tags{}, serrors.With(serrors.ErrUpstream, "tagging response has no candidates")
	}

	var tags domain.Tags
	if err := json.Unmarshal([]byte(genResp.Candidates[0].Content.Parts[0].Text), &tags); err != nil {
		return domain.Tags{}, serrors.Wrap(serrors.ErrUpstream, err, "could not decode tags")
	}

	return tags, nil
}

// Ensure Client conforms to the tagger.Client interface at compile time.
var _ tagger.Client = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, model name and
// API key to interact with the Gemini API. An empty baseURL selects the
// public endpoint.
func New(httpClient *http.Client, baseURL, model, apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, serrors.With(serrors.ErrConfig, "api key is required")
	}

	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		model:      model,
		apiKey:     apiKey,
	}, nil
}
