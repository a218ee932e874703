// Package format renders token sequences for display. It consumes the
// scanner output read-only and sits outside the scanning core.
package format

import (
	"fmt"
	"io"

	"github.com/agenthands/nlex/pkg/lexer"
)

// Tokens writes one "Token: kind, Value: text" line per token.
func Tokens(w io.Writer, tokens []lexer.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintf(w, "Token: %s, Value: %s\n", tok.Kind, tok.Text); err != nil {
			return err
		}
	}
	return nil
}
