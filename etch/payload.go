package etch

// PacketPayload is the serialized form of one packet, shaped exactly like the
// createEtchPacket request body. Field names and casing follow the remote
// schema and must not drift.
type PacketPayload struct {
	Name    string `json:"name"`
	IsDraft bool   `json:"isDraft"`
	IsTest  bool   `json:"isTest"`

	SignatureEmailSubject string `json:"signatureEmailSubject"`
	SignatureEmailBody    string `json:"signatureEmailBody,omitempty"`

	Signers []*Signer `json:"signers"`
	Files   []File    `json:"files"`

	// Data carries the pre-fill payloads, keyed by file alias.
	Data *PrefillData `json:"data,omitempty"`

	WebhookURL   string `json:"webhookURL,omitempty"`
	ReplyToName  string `json:"replyToName,omitempty"`
	ReplyToEmail string `json:"replyToEmail,omitempty"`
	MergePDFs    bool   `json:"mergePDFs,omitempty"`
}

// PrefillData nests per-file pre-fill payloads under the "payloads" key the
// remote schema expects.
type PrefillData struct {
	Payloads map[string]FillPayload `json:"payloads"`
}

// FillPayload is the pre-fill mapping for one file: field id to literal value.
type FillPayload struct {
	Data map[string]any `json:"data"`
}
