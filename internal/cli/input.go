package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// readAPIKey prompts for the API key and reads it from the terminal without
// echo, so the key never lands in shell history or scrollback.
func readAPIKey(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter your Anvil API key: "); err != nil {
		return nil, err
	}
	key, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(key)) == 0 {
		return nil, errors.New("an API key is required; set ANVIL_API_KEY or enter one at the prompt")
	}
	return key, nil
}
