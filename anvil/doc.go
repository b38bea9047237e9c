// Package anvil is an HTTP client for the Anvil e-signature API.
//
// # Overview
//
// The package provides:
//  1. A Client constructed from explicit Credentials (an API key) and
//     functional options for base URL, HTTP client, logging, throttling, and
//     retries. No ambient/global state is consulted.
//  2. GraphQL operations: CreateEtchPacket, GetEtchPacket,
//     GenerateEtchSignURL, CurrentUser, GetCast, ListCasts, and a raw Do for
//     arbitrary queries.
//  3. REST operations returning raw bytes: FillPDF, GeneratePDF,
//     DownloadDocuments.
//
// # Error Handling
//
// Failures are typed so callers can tell "unreachable" from "rejected":
// network problems match ErrUnavailable with errors.Is, while remote
// rejections come back as *APIError, which additionally matches
// ErrUnauthorized (HTTP 401/403) or ErrValidation (schema or business-rule
// rejections, including GraphQL errors in 200 responses). Errors carry the
// name of the attempted operation and nothing else is added.
//
// Concurrency & Contexts
//
// A Client is safe for concurrent use. All operations accept context.Context
// and honor cancellation, including while waiting on the rate limiter or
// between retries.
package anvil
