package etch

import "fmt"

// PacketOptions carries packet-level settings for NewPacketBuilder.
//
// Name and EmailSubject are required. The zero value of Live keeps the packet
// in test mode, which is what the remote service expects during development.
type PacketOptions struct {
	// Name is the display name of the packet.
	Name string

	// EmailSubject is the subject line of the signature request emails.
	EmailSubject string

	// EmailBody is the optional body of the signature request emails.
	EmailBody string

	// SignInSequence makes signers sign one after another in the order they
	// were added; when false all signers may sign in parallel.
	SignInSequence bool

	// Signers optionally seeds the packet; each entry goes through the same
	// validation as AddSigner.
	Signers []*Signer

	// Draft creates the packet without sending it out.
	Draft bool

	// Live creates a real packet. When false the packet is created in test
	// mode and no legally binding signatures are collected.
	Live bool

	// WebhookURL receives POST notifications for packet events.
	WebhookURL string

	// ReplyToName and ReplyToEmail override the reply-to header of signer
	// emails. The remote service requires both when either is set.
	ReplyToName  string
	ReplyToEmail string

	// MergePDFs merges all documents into one PDF in the finished packet.
	MergePDFs bool
}

// PacketBuilder accumulates the signers, files, and pre-fill data of one Etch
// packet and serializes them with Payload. Insertion order of signers and
// files is preserved into the serialized output.
//
// The builder never checks that aliases referenced by signer fields or
// pre-fill entries were actually added as files; the remote service validates
// cross-references on submission.
type PacketBuilder struct {
	opts     PacketOptions
	signers  []*Signer
	files    []File
	prefills []PrefillEntry
}

// PrefillEntry associates one pre-fill mapping with one file alias.
type PrefillEntry struct {
	FileID string
	Data   map[string]any
}

// NewPacketBuilder validates the packet-level configuration and returns an
// empty builder. Missing required fields fail with ErrConfig.
func NewPacketBuilder(opts PacketOptions) (*PacketBuilder, error) {
	if opts.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrConfig)
	}
	if opts.EmailSubject == "" {
		return nil, fmt.Errorf("%w: email subject is required", ErrConfig)
	}
	if (opts.ReplyToName == "") != (opts.ReplyToEmail == "") {
		return nil, fmt.Errorf("%w: replyToName and replyToEmail must be set together", ErrConfig)
	}

	b := &PacketBuilder{opts: opts}
	for _, s := range opts.Signers {
		if err := b.AddSigner(s); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// AddSigner validates and appends one signer. The builder stores its own copy:
// a missing id is filled with a generated one, a missing signer type defaults
// to email delivery, and in sequential mode a missing routing order becomes
// the next position in line.
func (b *PacketBuilder) AddSigner(signer *Signer) error {
	if signer == nil {
		return fmt.Errorf("%w: signer is nil", ErrInvalidSigner)
	}

	s := *signer
	if s.SignerType == "" {
		s.SignerType = SignerTypeEmail
	}
	if err := s.validate(); err != nil {
		return err
	}

	if s.ID == "" {
		s.ID = newSignerID()
	}
	if s.Fields == nil {
		s.Fields = []FieldAssignment{}
	}
	if b.opts.SignInSequence && s.RoutingOrder == 0 {
		s.RoutingOrder = b.nextRoutingOrder()
	}

	b.signers = append(b.signers, &s)
	return nil
}

// AddSignerMap normalizes a raw mapping into a Signer and adds it.
func (b *PacketBuilder) AddSignerMap(m map[string]any) error {
	s, err := SignerFromMap(m)
	if err != nil {
		return err
	}
	return b.AddSigner(s)
}

func (b *PacketBuilder) nextRoutingOrder() int {
	max := 0
	for _, s := range b.signers {
		if s.RoutingOrder > max {
			max = s.RoutingOrder
		}
	}
	return max + 1
}

// AddFile appends one file, upload or cast reference. Order only affects the
// remote display ordering. Duplicate aliases are not rejected here; the remote
// service reports them on submission. An upload without a mime type gets one
// guessed from its filename.
func (b *PacketBuilder) AddFile(file File) {
	if du, ok := file.(*DocumentUpload); ok && du.File.MimeType == "" {
		du.File.MimeType = guessMimeType(du.File.Filename)
	}
	b.files = append(b.files, file)
}

// AddPrefill associates a pre-fill mapping with a file alias. A file may
// receive multiple entries; they are shallow-merged in insertion order at
// serialization time. The alias is deliberately not checked against the added
// files.
func (b *PacketBuilder) AddPrefill(fileID string, data map[string]any) {
	b.prefills = append(b.prefills, PrefillEntry{FileID: fileID, Data: data})
}

// Payload serializes the accumulated state into the wire-ready packet shape.
// It is pure and idempotent: calling it repeatedly without intervening
// mutation yields identical output. Signer and file insertion order is
// preserved.
func (b *PacketBuilder) Payload() *PacketPayload {
	p := &PacketPayload{
		Name:                  b.opts.Name,
		IsDraft:               b.opts.Draft,
		IsTest:                !b.opts.Live,
		SignatureEmailSubject: b.opts.EmailSubject,
		SignatureEmailBody:    b.opts.EmailBody,
		Signers:               make([]*Signer, len(b.signers)),
		Files:                 make([]File, len(b.files)),
		WebhookURL:            b.opts.WebhookURL,
		ReplyToName:           b.opts.ReplyToName,
		ReplyToEmail:          b.opts.ReplyToEmail,
		MergePDFs:             b.opts.MergePDFs,
	}
	copy(p.Signers, b.signers)
	copy(p.Files, b.files)

	if len(b.prefills) > 0 {
		payloads := make(map[string]FillPayload, len(b.prefills))
		for _, entry := range b.prefills {
			merged, ok := payloads[entry.FileID]
			if !ok {
				merged = FillPayload{Data: make(map[string]any, len(entry.Data))}
				payloads[entry.FileID] = merged
			}
			for k, v := range entry.Data {
				merged.Data[k] = v
			}
		}
		p.Data = &PrefillData{Payloads: payloads}
	}

	return p
}
