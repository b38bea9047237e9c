package etch

import "errors"

var (
	// Packet-level configuration errors (missing name or email subject).
	ErrConfig = errors.New("invalid packet configuration")

	// Signer-level errors, raised at add time rather than at serialization.
	ErrInvalidSigner = errors.New("invalid signer")
)
