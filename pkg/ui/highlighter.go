package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/agenthands/nlex/pkg/lexer"
)

// Highlighter maps token kinds to terminal styles.
type Highlighter struct {
	styles map[lexer.Kind]lipgloss.Style
}

func NewHighlighter() *Highlighter {
	keywordStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF79C6")).
		Bold(true)

	identifierStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8BE9FD"))

	numberStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#BD93F9"))

	stringStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F1FA8C"))

	operatorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFB86C"))

	delimiterStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#F8F8F2"))

	unknownStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF5555")).
		Italic(true)

	return &Highlighter{
		styles: map[lexer.Kind]lipgloss.Style{
			lexer.KindKeyword:    keywordStyle,
			lexer.KindIdentifier: identifierStyle,
			lexer.KindInteger:    numberStyle,
			lexer.KindFloat:      numberStyle,
			lexer.KindString:     stringStyle,
			lexer.KindOperator:   operatorStyle,
			lexer.KindDelimiter:  delimiterStyle,
			lexer.KindUnknown:    unknownStyle,
		},
	}
}

// Render returns the token text styled for its kind.
func (h *Highlighter) Render(tok lexer.Token) string {
	if style, ok := h.styles[tok.Kind]; ok {
		return style.Render(tok.Text)
	}
	return tok.Text
}

// Tokens renders a token sequence as styled "kind, value" lines.
func (h *Highlighter) Tokens(tokens []lexer.Token) string {
	var b strings.Builder
	labelStyle := lipgloss.NewStyle().Foreground(textMuted).Width(12)
	for _, tok := range tokens {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render(tok.Kind.String()), h.Render(tok))
	}
	return b.String()
}

// Source renders the tokens joined on one line, each styled for its
// kind; whitespace between tokens is normalized to single spaces.
func (h *Highlighter) Source(tokens []lexer.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		parts = append(parts, h.Render(tok))
	}
	return strings.Join(parts, " ")
}
