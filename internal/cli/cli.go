// Package cli implements the anvil command-line client.
//
// It wires configuration, the API client, and a cobra command tree covering
// account inspection (current-user, cast), raw GraphQL execution (gql-query),
// PDF endpoints (generate-pdf, fill-pdf, download-documents), and Etch packet
// submission (create-etch-packet).
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/belfry/go-anvil/anvil"
	"github.com/belfry/go-anvil/etch"
	"github.com/belfry/go-anvil/internal/config"
	"github.com/belfry/go-anvil/internal/logging"
)

// API is the slice of the anvil client the CLI consumes. Declaring it here
// keeps commands testable against fakes.
type API interface {
	CurrentUser(ctx context.Context) (*anvil.User, error)
	GetCast(ctx context.Context, eid string) (*anvil.Cast, error)
	ListCasts(ctx context.Context) ([]anvil.Cast, error)
	Do(ctx context.Context, query string, variables any) (json.RawMessage, error)
	GeneratePDF(ctx context.Context, payload *anvil.GeneratePDFPayload) ([]byte, error)
	FillPDF(ctx context.Context, castEid string, payload *anvil.FillPDFPayload) ([]byte, error)
	DownloadDocuments(ctx context.Context, documentGroupEid string) ([]byte, error)
	CreateEtchPacket(ctx context.Context, payload *etch.PacketPayload) (*anvil.EtchPacket, error)
}

// newAPI is a test seam: tests replace it to run commands against a fake.
var newAPI = func(cfg *config.Config) (API, error) {
	var log logging.Logger = logging.Discard()
	if cfg.Debug {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
		log = logging.NewSlogLogger(slog.New(h))
	}
	return anvil.NewClient(anvil.Credentials{APIKey: cfg.APIKey},
		anvil.WithBaseURL(cfg.BaseURL),
		anvil.WithLogger(log),
	)
}

// App carries the resolved configuration and API client across commands.
type App struct {
	cfg *config.Config
	api API
}

// connect resolves the API key (prompting without echo when the environment
// does not provide one) and builds the API client once per invocation.
func (a *App) connect(cmd *cobra.Command) error {
	if a.api != nil {
		return nil
	}
	if a.cfg.APIKey == "" {
		key, err := readAPIKey(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		a.cfg.APIKey = strings.TrimSpace(string(key))
	}

	api, err := newAPI(a.cfg)
	if err != nil {
		return err
	}
	a.api = api
	return nil
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
