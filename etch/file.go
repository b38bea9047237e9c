package etch

import (
	"encoding/base64"
	"mime"
	"path/filepath"
)

// File is one document attached to a packet: either a fresh upload
// (DocumentUpload) or a reference to an existing cast template
// (CastReference). Both carry a caller-chosen alias that signer field
// assignments and pre-fill entries use to point at the file.
type File interface {
	// Alias returns the caller-chosen file alias, unique within a packet.
	// Uniqueness is not enforced locally; duplicates are rejected remotely.
	Alias() string
}

// Rect positions a field on a page. X and Y locate the top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Field defines one fillable or signable region on an uploaded document.
type Field struct {
	ID   string `json:"id"`
	Type string `json:"type"`

	// PageNum is zero-based.
	PageNum int  `json:"pageNum"`
	Rect    Rect `json:"rect"`
}

// Upload is the encoded document content of a DocumentUpload.
type Upload struct {
	// Data is the base64-encoded document.
	Data string `json:"data"`

	// Filename is shown to signers when they download the finished packet.
	Filename string `json:"filename"`

	MimeType string `json:"mimetype,omitempty"`
}

// DocumentUpload is a new document sent along with the packet, together with
// its field definitions.
type DocumentUpload struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	File   Upload  `json:"file"`
	Fields []Field `json:"fields"`
}

// NewDocumentUpload base64-encodes raw document bytes into a DocumentUpload.
// The mime type is guessed from the filename extension and can be overridden
// on the returned value.
func NewDocumentUpload(alias, title string, raw []byte, filename string, fields ...Field) *DocumentUpload {
	if fields == nil {
		fields = []Field{}
	}
	return &DocumentUpload{
		ID:    alias,
		Title: title,
		File: Upload{
			Data:     base64.StdEncoding.EncodeToString(raw),
			Filename: filename,
			MimeType: guessMimeType(filename),
		},
		Fields: fields,
	}
}

func guessMimeType(filename string) string {
	return mime.TypeByExtension(filepath.Ext(filename))
}

func (d *DocumentUpload) Alias() string { return d.ID }

// CastReference attaches an existing remote template ("cast") by its eid.
type CastReference struct {
	ID      string `json:"id"`
	CastEid string `json:"castEid"`
}

// NewCastReference builds a CastReference with the given packet-local alias.
func NewCastReference(alias, castEid string) *CastReference {
	return &CastReference{ID: alias, CastEid: castEid}
}

func (c *CastReference) Alias() string { return c.ID }
