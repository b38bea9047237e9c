// Package etch assembles Etch packet payloads for the Anvil e-signature API.
//
// # Overview
//
// The package provides:
//  1. Payload shapes mirroring the remote createEtchPacket schema: Signer,
//     FieldAssignment, DocumentUpload, CastReference, Field, Rect, and the
//     per-file pre-fill entries.
//  2. A PacketBuilder that accumulates packet settings, signers, files, and
//     pre-fill data in insertion order and serializes them into a single
//     wire-ready PacketPayload.
//
// The builder is a plain accumulator: it performs no network or disk I/O and
// no cross-reference validation between file aliases. Aliases referenced by
// signer field assignments or pre-fill entries are checked by the remote
// service, not locally.
//
// # Error Handling
//
// Locally detectable problems (missing packet name, signer without an email,
// unknown signer type) fail fast at construction or accumulation time as
// sentinel errors matchable with errors.Is: ErrConfig, ErrInvalidSigner.
// Serialization itself never fails.
//
// Concurrency
//
// A PacketBuilder is owned by one caller context and is not safe for
// concurrent mutation.
package etch
