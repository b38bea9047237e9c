package anvil

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// FillPDFPayload fills an existing template's fields with literal values.
type FillPDFPayload struct {
	Title     string `json:"title,omitempty"`
	FontSize  int    `json:"fontSize,omitempty"`
	TextColor string `json:"textColor,omitempty"`

	// Data maps template field ids to fill values.
	Data map[string]any `json:"data"`
}

// GeneratePDFPayload renders a new PDF from markdown or HTML content.
type GeneratePDFPayload struct {
	Title string `json:"title,omitempty"`

	// Type is "markdown" (default) or "html".
	Type string `json:"type,omitempty"`

	// Data is the content: a list of markdown blocks, or an object with
	// "html" and "css" members when Type is "html".
	Data any `json:"data"`
}

// FillPDF fills the cast template identified by castEid and returns the
// resulting PDF bytes.
func (c *Client) FillPDF(ctx context.Context, castEid string, payload *FillPDFPayload) ([]byte, error) {
	const op = "fillPDF"
	if payload == nil {
		return nil, fmt.Errorf("%s: payload is nil", op)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", op, err)
	}

	u := fmt.Sprintf("%s/api/v1/fill/%s.pdf", c.baseURL, url.PathEscape(castEid))
	res, err := c.send(ctx, op, http.MethodPost, u, "application/json", body)
	if err != nil {
		return nil, err
	}
	return res.body, nil
}

// GeneratePDF renders payload into a PDF and returns its bytes.
func (c *Client) GeneratePDF(ctx context.Context, payload *GeneratePDFPayload) ([]byte, error) {
	const op = "generatePDF"
	if payload == nil {
		return nil, fmt.Errorf("%s: payload is nil", op)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%s: encode request: %w", op, err)
	}

	res, err := c.send(ctx, op, http.MethodPost, c.baseURL+"/api/v1/generate-pdf", "application/json", body)
	if err != nil {
		return nil, err
	}
	return res.body, nil
}

// DownloadDocuments fetches the finished documents of a document group as one
// zip archive.
func (c *Client) DownloadDocuments(ctx context.Context, documentGroupEid string) ([]byte, error) {
	const op = "downloadDocuments"

	u := fmt.Sprintf("%s/api/document-group/%s.zip", c.baseURL, url.PathEscape(documentGroupEid))
	res, err := c.send(ctx, op, http.MethodGet, u, "", nil)
	if err != nil {
		return nil, err
	}
	return res.body, nil
}
