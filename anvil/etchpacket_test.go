package anvil

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/belfry/go-anvil/etch"
)

func testPacketPayload(t *testing.T) *etch.PacketPayload {
	t.Helper()
	b, err := etch.NewPacketBuilder(etch.PacketOptions{
		Name:         "Packet Name",
		EmailSubject: "Please sign these forms",
	})
	require.NoError(t, err)

	require.NoError(t, b.AddSigner(&etch.Signer{
		Name:   "Jackie",
		Email:  "jackie@example.com",
		Fields: []etch.FieldAssignment{{FileID: "fileAlias", FieldID: "signOne"}},
	}))
	b.AddFile(etch.NewCastReference("fileAlias", "CAST_EID_GOES_HERE"))
	b.AddPrefill("fileAlias", map[string]any{"aTextFieldId": "This is pre-filled."})
	return b.Payload()
}

func TestCreateEtchPacket(t *testing.T) {
	var gotVars map[string]any

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Query, "mutation CreateEtchPacket")
		gotVars = req.Variables

		gqlOK(t, w, map[string]any{"createEtchPacket": map[string]any{
			"eid":        "pkt123",
			"name":       "Packet Name",
			"detailsURL": "https://app.useanvil.com/etch/pkt123",
			"documentGroup": map[string]any{
				"eid":    "dg456",
				"status": "sent",
				"signers": []any{map[string]any{
					"eid":          "sgn789",
					"aliasId":      "signer-1",
					"routingOrder": 1,
					"name":         "Jackie",
					"email":        "jackie@example.com",
					"status":       "sent",
				}},
			},
		}})
	}))

	packet, err := c.CreateEtchPacket(context.Background(), testPacketPayload(t))
	require.NoError(t, err)

	assert.Equal(t, "pkt123", packet.Eid)
	assert.Equal(t, "Packet Name", packet.Name)
	require.NotNil(t, packet.DocumentGroup)
	assert.Equal(t, "dg456", packet.DocumentGroup.Eid)
	require.Len(t, packet.DocumentGroup.Signers, 1)
	assert.Equal(t, "sgn789", packet.DocumentGroup.Signers[0].Eid)

	// The serialized payload travels as the mutation variables, untouched.
	assert.Equal(t, "Packet Name", gotVars["name"])
	assert.Equal(t, true, gotVars["isTest"])
	signers := gotVars["signers"].([]any)
	require.Len(t, signers, 1)
	files := gotVars["files"].([]any)
	require.Len(t, files, 1)
	assert.Equal(t, map[string]any{"id": "fileAlias", "castEid": "CAST_EID_GOES_HERE"}, files[0])
	data := gotVars["data"].(map[string]any)
	payloads := data["payloads"].(map[string]any)
	assert.Contains(t, payloads, "fileAlias")
}

func TestCreateEtchPacket_NilPayload(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := c.CreateEtchPacket(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "payload is nil")
}

func TestCreateEtchPacket_RemoteRejection(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"errors":[{"message":"duplicate file alias: fileAlias"}]}`))
	}))

	_, err := c.CreateEtchPacket(context.Background(), testPacketPayload(t))
	require.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "createEtchPacket")
	assert.Contains(t, err.Error(), "duplicate file alias")
}

func TestGetEtchPacket(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, map[string]any{"eid": "pkt123"}, req.Variables)

		gqlOK(t, w, map[string]any{"etchPacket": map[string]any{
			"eid": "pkt123", "name": "Packet Name",
		}})
	}))

	packet, err := c.GetEtchPacket(context.Background(), "pkt123")
	require.NoError(t, err)
	assert.Equal(t, "pkt123", packet.Eid)
}

func TestGenerateEtchSignURL(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Variables map[string]any `json:"variables"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sgn789", req.Variables["signerEid"])
		assert.Equal(t, "user-42", req.Variables["clientUserId"])

		gqlOK(t, w, map[string]any{"generateEtchSignURL": "https://app.useanvil.com/etch/sign/token"})
	}))

	u, err := c.GenerateEtchSignURL(context.Background(), "sgn789", "user-42")
	require.NoError(t, err)
	assert.Equal(t, "https://app.useanvil.com/etch/sign/token", u)
}
