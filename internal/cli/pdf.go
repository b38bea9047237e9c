package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/belfry/go-anvil/anvil"
)

func newGeneratePDFCmd(a *App) *cobra.Command {
	var infile, outfile string

	cmd := &cobra.Command{
		Use:   "generate-pdf",
		Short: "Render a PDF from a JSON payload of markdown or HTML content",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(infile)
			if err != nil {
				return fmt.Errorf("reading %s: %w", infile, err)
			}

			var payload anvil.GeneratePDFPayload
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("parsing %s: %w", infile, err)
			}

			pdf, err := a.api.GeneratePDF(cmd.Context(), &payload)
			if err != nil {
				return err
			}
			return writeOutput(outfile, pdf)
		},
	}

	cmd.Flags().StringVarP(&infile, "in", "i", "", "input JSON payload file")
	cmd.Flags().StringVarP(&outfile, "out", "o", "", "output PDF file")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newFillPDFCmd(a *App) *cobra.Command {
	var castEid, infile, outfile string

	cmd := &cobra.Command{
		Use:   "fill-pdf",
		Short: "Fill a PDF template's fields and download the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(infile)
			if err != nil {
				return fmt.Errorf("reading %s: %w", infile, err)
			}

			var payload anvil.FillPDFPayload
			if err := json.Unmarshal(raw, &payload); err != nil {
				return fmt.Errorf("parsing %s: %w", infile, err)
			}

			pdf, err := a.api.FillPDF(cmd.Context(), castEid, &payload)
			if err != nil {
				return err
			}
			return writeOutput(outfile, pdf)
		},
	}

	cmd.Flags().StringVarP(&castEid, "cast", "c", "", "eid of the template to fill")
	cmd.Flags().StringVarP(&infile, "in", "i", "", "input JSON payload file")
	cmd.Flags().StringVarP(&outfile, "out", "o", "", "output PDF file")
	_ = cmd.MarkFlagRequired("cast")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func newDownloadDocumentsCmd(a *App) *cobra.Command {
	var documentGroupEid, outfile string

	cmd := &cobra.Command{
		Use:   "download-documents",
		Short: "Download a document group's finished documents as a zip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			archive, err := a.api.DownloadDocuments(cmd.Context(), documentGroupEid)
			if err != nil {
				return err
			}
			return writeOutput(outfile, archive)
		},
	}

	cmd.Flags().StringVarP(&documentGroupEid, "document-group", "d", "", "eid of the document group")
	cmd.Flags().StringVarP(&outfile, "out", "o", "", "output zip file")
	_ = cmd.MarkFlagRequired("document-group")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func writeOutput(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
