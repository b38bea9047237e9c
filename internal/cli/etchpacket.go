package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/belfry/go-anvil/etch"
)

// packetFile is the on-disk shape of one file entry: a castEid marks a
// template reference, anything else is treated as a document upload.
type packetFile struct {
	ID      string       `json:"id"`
	CastEid string       `json:"castEid"`
	Title   string       `json:"title"`
	File    *etch.Upload `json:"file"`
	Fields  []etch.Field `json:"fields"`
}

// packetSpec is the on-disk shape consumed by create-etch-packet.
type packetSpec struct {
	Name                  string `json:"name"`
	SignatureEmailSubject string `json:"signatureEmailSubject"`
	SignatureEmailBody    string `json:"signatureEmailBody"`
	SignInSequence        bool   `json:"signInSequence"`
	IsDraft               bool   `json:"isDraft"`
	Live                  bool   `json:"live"`
	WebhookURL            string `json:"webhookURL"`
	ReplyToName           string `json:"replyToName"`
	ReplyToEmail          string `json:"replyToEmail"`
	MergePDFs             bool   `json:"mergePDFs"`

	Signers []map[string]any          `json:"signers"`
	Files   []packetFile              `json:"files"`
	Data    map[string]map[string]any `json:"data"`
}

func buildPacket(spec *packetSpec) (*etch.PacketBuilder, error) {
	b, err := etch.NewPacketBuilder(etch.PacketOptions{
		Name:           spec.Name,
		EmailSubject:   spec.SignatureEmailSubject,
		EmailBody:      spec.SignatureEmailBody,
		SignInSequence: spec.SignInSequence,
		Draft:          spec.IsDraft,
		Live:           spec.Live,
		WebhookURL:     spec.WebhookURL,
		ReplyToName:    spec.ReplyToName,
		ReplyToEmail:   spec.ReplyToEmail,
		MergePDFs:      spec.MergePDFs,
	})
	if err != nil {
		return nil, err
	}

	for _, signer := range spec.Signers {
		if err := b.AddSignerMap(signer); err != nil {
			return nil, err
		}
	}

	for _, f := range spec.Files {
		if f.CastEid != "" {
			b.AddFile(etch.NewCastReference(f.ID, f.CastEid))
			continue
		}
		upload := &etch.DocumentUpload{ID: f.ID, Title: f.Title, Fields: f.Fields}
		if f.File != nil {
			upload.File = *f.File
		}
		b.AddFile(upload)
	}

	for alias, data := range spec.Data {
		b.AddPrefill(alias, data)
	}
	return b, nil
}

func newCreateEtchPacketCmd(a *App) *cobra.Command {
	var infile string

	cmd := &cobra.Command{
		Use:   "create-etch-packet",
		Short: "Build and submit an Etch packet from a JSON description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(infile)
			if err != nil {
				return fmt.Errorf("reading %s: %w", infile, err)
			}

			var spec packetSpec
			if err := json.Unmarshal(raw, &spec); err != nil {
				return fmt.Errorf("parsing %s: %w", infile, err)
			}

			b, err := buildPacket(&spec)
			if err != nil {
				return err
			}

			packet, err := a.api.CreateEtchPacket(cmd.Context(), b.Payload())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), packet)
		},
	}

	cmd.Flags().StringVarP(&infile, "in", "i", "", "input JSON packet description")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
