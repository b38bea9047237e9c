package etch

import (
	"fmt"

	"github.com/google/uuid"
)

// SignerType selects how the remote service delivers the signing request.
type SignerType string

const (
	// SignerTypeEmail sends the signer a hosted signing link by email.
	SignerTypeEmail SignerType = "email"
	// SignerTypeEmbedded leaves delivery to the caller (embedded or manual flow).
	SignerTypeEmbedded SignerType = "embedded"
)

// SignatureMode selects how a signature is collected.
type SignatureMode string

const (
	// SignatureModeDraw lets the signer draw their signature.
	SignatureModeDraw SignatureMode = "draw"
	// SignatureModeText inserts a typed text rendition of the signer's name.
	SignatureModeText SignatureMode = "text"
)

// FieldAssignment binds a signer to one field on one file. FileID is the
// caller-chosen alias of a file added to the same packet; FieldID is the field
// id within that file (or within the referenced cast template).
type FieldAssignment struct {
	FileID  string `json:"fileId"`
	FieldID string `json:"fieldId"`
}

// Signer is one person who must act on fields across the packet's files.
//
// Name and Email are required. ID and RoutingOrder may be left zero: the
// builder assigns an id on add, and a routing order too when the packet was
// configured for sequential signing.
type Signer struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Email string `json:"email"`

	// Fields lists the field assignments for this signer, in order.
	Fields []FieldAssignment `json:"fields"`

	SignerType    SignerType    `json:"signerType,omitempty"`
	SignatureMode SignatureMode `json:"signatureMode,omitempty"`

	// RoutingOrder positions the signer in the sequential signing flow.
	// Lower numbers sign first.
	RoutingOrder int `json:"routingOrder,omitempty"`

	// RedirectURL is where the signer lands after completing their fields.
	RedirectURL string `json:"redirectURL,omitempty"`

	// AcceptEachField forces the signer to click every field individually.
	AcceptEachField *bool `json:"acceptEachField,omitempty"`
}

// validate checks the locally enforceable signer requirements.
func (s *Signer) validate() error {
	if s.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSigner)
	}
	if s.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidSigner)
	}
	switch s.SignerType {
	case SignerTypeEmail, SignerTypeEmbedded:
	default:
		return fmt.Errorf("%w: signer type must be %q or %q, got %q",
			ErrInvalidSigner, SignerTypeEmail, SignerTypeEmbedded, s.SignerType)
	}
	switch s.SignatureMode {
	case "", SignatureModeDraw, SignatureModeText:
	default:
		return fmt.Errorf("%w: signature mode must be %q or %q, got %q",
			ErrInvalidSigner, SignatureModeDraw, SignatureModeText, s.SignatureMode)
	}
	return nil
}

func newSignerID() string {
	return "signer-" + uuid.NewString()
}

// SignerFromMap normalizes a raw mapping into a Signer. Keys follow the wire
// schema names (name, email, fields, signerType, signatureMode, routingOrder,
// redirectURL, acceptEachField). Unknown keys are ignored; values of the wrong
// type fail with ErrInvalidSigner.
func SignerFromMap(m map[string]any) (*Signer, error) {
	s := &Signer{}

	str := func(key string) (string, error) {
		v, ok := m[key]
		if !ok || v == nil {
			return "", nil
		}
		sv, ok := v.(string)
		if !ok {
			return "", fmt.Errorf("%w: %q must be a string", ErrInvalidSigner, key)
		}
		return sv, nil
	}

	var err error
	if s.ID, err = str("id"); err != nil {
		return nil, err
	}
	if s.Name, err = str("name"); err != nil {
		return nil, err
	}
	if s.Email, err = str("email"); err != nil {
		return nil, err
	}
	signerType, err := str("signerType")
	if err != nil {
		return nil, err
	}
	s.SignerType = SignerType(signerType)
	signatureMode, err := str("signatureMode")
	if err != nil {
		return nil, err
	}
	s.SignatureMode = SignatureMode(signatureMode)
	if s.RedirectURL, err = str("redirectURL"); err != nil {
		return nil, err
	}

	if v, ok := m["routingOrder"]; ok && v != nil {
		switch n := v.(type) {
		case int:
			s.RoutingOrder = n
		case float64:
			s.RoutingOrder = int(n)
		default:
			return nil, fmt.Errorf("%w: \"routingOrder\" must be a number", ErrInvalidSigner)
		}
	}

	if v, ok := m["acceptEachField"]; ok && v != nil {
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: \"acceptEachField\" must be a bool", ErrInvalidSigner)
		}
		s.AcceptEachField = &b
	}

	if v, ok := m["fields"]; ok && v != nil {
		items, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: \"fields\" must be a list", ErrInvalidSigner)
		}
		for _, item := range items {
			fm, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: each field assignment must be a mapping", ErrInvalidSigner)
			}
			fileID, _ := fm["fileId"].(string)
			fieldID, _ := fm["fieldId"].(string)
			if fileID == "" || fieldID == "" {
				return nil, fmt.Errorf("%w: field assignments need fileId and fieldId", ErrInvalidSigner)
			}
			s.Fields = append(s.Fields, FieldAssignment{FileID: fileID, FieldID: fieldID})
		}
	}

	return s, nil
}
