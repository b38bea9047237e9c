package anvil

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/belfry/go-anvil/etch"
)

// etchPacketResponseQuery selects the fields returned for a packet by both
// the create mutation and the etchPacket query.
const etchPacketResponseQuery = `{
  eid
  name
  detailsURL
  documentGroup {
    eid
    status
    files
    signers {
      eid
      aliasId
      routingOrder
      name
      email
      status
      signActionType
    }
  }
}`

var createEtchPacketMutation = fmt.Sprintf(`
mutation CreateEtchPacket (
    $name: String,
    $files: [EtchFile!],
    $isDraft: Boolean,
    $isTest: Boolean,
    $mergePDFs: Boolean,
    $signatureEmailSubject: String,
    $signatureEmailBody: String,
    $signers: [JSON!],
    $webhookURL: String,
    $replyToName: String,
    $replyToEmail: String,
    $data: JSON,
  ) {
    createEtchPacket (
      name: $name,
      files: $files,
      isDraft: $isDraft,
      isTest: $isTest,
      mergePDFs: $mergePDFs,
      signatureEmailSubject: $signatureEmailSubject,
      signatureEmailBody: $signatureEmailBody,
      signers: $signers,
      webhookURL: $webhookURL,
      replyToName: $replyToName,
      replyToEmail: $replyToEmail,
      data: $data,
    ) %s
  }
`, etchPacketResponseQuery)

var getEtchPacketQuery = fmt.Sprintf(`
query GetEtchPacket ($eid: String!) {
  etchPacket (eid: $eid) %s
}
`, etchPacketResponseQuery)

const generateEtchSignURLMutation = `
mutation GenerateEtchSignURL ($signerEid: String!, $clientUserId: String!) {
  generateEtchSignURL (signerEid: $signerEid, clientUserId: $clientUserId)
}
`

// EtchPacketSigner is one signer of a created packet as reported by the
// remote service.
type EtchPacketSigner struct {
	Eid            string `json:"eid"`
	AliasID        string `json:"aliasId"`
	RoutingOrder   int    `json:"routingOrder"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Status         string `json:"status"`
	SignActionType string `json:"signActionType"`
}

// DocumentGroup is the set of documents generated for a packet.
type DocumentGroup struct {
	Eid     string             `json:"eid"`
	Status  string             `json:"status"`
	Files   json.RawMessage    `json:"files"`
	Signers []EtchPacketSigner `json:"signers"`
}

// EtchPacket identifies a created packet and its signers.
type EtchPacket struct {
	Eid           string         `json:"eid"`
	Name          string         `json:"name"`
	DetailsURL    string         `json:"detailsURL"`
	DocumentGroup *DocumentGroup `json:"documentGroup"`
}

// CreateEtchPacket submits one serialized packet and returns the created
// packet with its remote identifiers. The payload is sent as the mutation
// variables exactly as serialized; the builder performs no submission itself.
func (c *Client) CreateEtchPacket(ctx context.Context, payload *etch.PacketPayload) (*EtchPacket, error) {
	const op = "createEtchPacket"
	if payload == nil {
		return nil, fmt.Errorf("%s: payload is nil", op)
	}

	data, err := c.query(ctx, op, createEtchPacketMutation, payload)
	if err != nil {
		return nil, err
	}

	var out struct {
		CreateEtchPacket *EtchPacket `json:"createEtchPacket"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	if out.CreateEtchPacket == nil {
		return nil, fmt.Errorf("%s: empty response", op)
	}

	c.log.Info(ctx, "etch packet created", "eid", out.CreateEtchPacket.Eid, "name", out.CreateEtchPacket.Name)
	return out.CreateEtchPacket, nil
}

// GetEtchPacket fetches an existing packet by its eid.
func (c *Client) GetEtchPacket(ctx context.Context, eid string) (*EtchPacket, error) {
	const op = "getEtchPacket"

	data, err := c.query(ctx, op, getEtchPacketQuery, map[string]any{"eid": eid})
	if err != nil {
		return nil, err
	}

	var out struct {
		EtchPacket *EtchPacket `json:"etchPacket"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	if out.EtchPacket == nil {
		return nil, fmt.Errorf("%s: empty response", op)
	}
	return out.EtchPacket, nil
}

// GenerateEtchSignURL returns the hosted signing URL for one signer of an
// embedded-flow packet. clientUserID is the caller's identifier for the
// signing user.
func (c *Client) GenerateEtchSignURL(ctx context.Context, signerEid, clientUserID string) (string, error) {
	const op = "generateEtchSignURL"

	data, err := c.query(ctx, op, generateEtchSignURLMutation, map[string]any{
		"signerEid":    signerEid,
		"clientUserId": clientUserID,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		GenerateEtchSignURL string `json:"generateEtchSignURL"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", fmt.Errorf("%s: decode response: %w", op, err)
	}
	return out.GenerateEtchSignURL, nil
}
