package lexer_test

import (
	"strings"
	"testing"

	"github.com/agenthands/nlex/pkg/lexer"
)

func tokenize(src string) []lexer.Token {
	return lexer.NewScanner([]byte(src)).Tokenize()
}

func expectTokens(t *testing.T, src string, expected []lexer.Token) {
	t.Helper()
	tokens := tokenize(src)
	if len(tokens) != len(expected) {
		t.Fatalf("%q: expected %d tokens, got %d: %v", src, len(expected), len(tokens), tokens)
	}
	for i, exp := range expected {
		if tokens[i] != exp {
			t.Errorf("%q token %d: expected %v(%q), got %v(%q)",
				src, i, exp.Kind, exp.Text, tokens[i].Kind, tokens[i].Text)
		}
	}
}

func TestTokenizeDemoProgram(t *testing.T) {
	expectTokens(t, "int main() { return 0; }", []lexer.Token{
		{Kind: lexer.KindKeyword, Text: "int"},
		{Kind: lexer.KindIdentifier, Text: "main"},
		{Kind: lexer.KindDelimiter, Text: "("},
		{Kind: lexer.KindDelimiter, Text: ")"},
		{Kind: lexer.KindUnknown, Text: "{"},
		{Kind: lexer.KindKeyword, Text: "return"},
		{Kind: lexer.KindInteger, Text: "0"},
		{Kind: lexer.KindUnknown, Text: ";"},
		{Kind: lexer.KindUnknown, Text: "}"},
	})
}

func TestTokenizeEmpty(t *testing.T) {
	if tokens := tokenize(""); len(tokens) != 0 {
		t.Errorf("empty input: expected no tokens, got %v", tokens)
	}
	if tokens := tokenize(" \t\r\n  "); len(tokens) != 0 {
		t.Errorf("whitespace input: expected no tokens, got %v", tokens)
	}
}

func TestNumbersAndOperators(t *testing.T) {
	expectTokens(t, "3.14 + x1", []lexer.Token{
		{Kind: lexer.KindFloat, Text: "3.14"},
		{Kind: lexer.KindOperator, Text: "+"},
		{Kind: lexer.KindIdentifier, Text: "x1"},
	})
}

func TestNumberClassification(t *testing.T) {
	cases := []struct {
		src  string
		kind lexer.Kind
	}{
		{"7", lexer.KindInteger},
		{"42069", lexer.KindInteger},
		{"3.14", lexer.KindFloat},
		{"1.", lexer.KindFloat},
		{"1.2.3", lexer.KindFloat}, // dot arrangement is not validated
	}
	for _, c := range cases {
		expectTokens(t, c.src, []lexer.Token{{Kind: c.kind, Text: c.src}})
	}
}

func TestDelimitersNeverCombine(t *testing.T) {
	expectTokens(t, "a::b", []lexer.Token{
		{Kind: lexer.KindIdentifier, Text: "a"},
		{Kind: lexer.KindDelimiter, Text: ":"},
		{Kind: lexer.KindDelimiter, Text: ":"},
		{Kind: lexer.KindIdentifier, Text: "b"},
	})
}

func TestOperatorsNeverCombine(t *testing.T) {
	expectTokens(t, "a//b", []lexer.Token{
		{Kind: lexer.KindIdentifier, Text: "a"},
		{Kind: lexer.KindOperator, Text: "/"},
		{Kind: lexer.KindOperator, Text: "/"},
		{Kind: lexer.KindIdentifier, Text: "b"},
	})
}

func TestKeywordPrecedence(t *testing.T) {
	for _, kw := range []string{
		"int", "float", "string", "if", "else", "while", "for",
		"switch", "case", "default", "break", "continue", "return", "void",
	} {
		expectTokens(t, kw, []lexer.Token{{Kind: lexer.KindKeyword, Text: kw}})
	}
	// Near-misses stay identifiers: keywords match exactly, case-sensitively.
	for _, id := range []string{"ints", "If", "RETURN", "whilex", "x"} {
		expectTokens(t, id, []lexer.Token{{Kind: lexer.KindIdentifier, Text: id}})
	}
}

func TestUnknownFallback(t *testing.T) {
	for _, src := range []string{"@", "#", "$", ";", "{", "}", "=", ","} {
		expectTokens(t, src, []lexer.Token{{Kind: lexer.KindUnknown, Text: src}})
	}
}

func TestStringLiterals(t *testing.T) {
	expectTokens(t, `"hello world"`, []lexer.Token{
		{Kind: lexer.KindString, Text: `"hello world"`},
	})
	expectTokens(t, `x = "a \" b"`, []lexer.Token{
		{Kind: lexer.KindIdentifier, Text: "x"},
		{Kind: lexer.KindUnknown, Text: "="},
		{Kind: lexer.KindString, Text: `"a \" b"`},
	})
	// Unterminated literals run to the end of input; no error path.
	expectTokens(t, `"oops`, []lexer.Token{
		{Kind: lexer.KindString, Text: `"oops`},
	})
}

func TestDigitLeadsNumberNotWord(t *testing.T) {
	// A leading digit starts a number even though isAlpha would accept
	// it; letters after the digit run break into a separate word.
	expectTokens(t, "1x", []lexer.Token{
		{Kind: lexer.KindInteger, Text: "1"},
		{Kind: lexer.KindIdentifier, Text: "x"},
	})
}

func TestDeterminism(t *testing.T) {
	src := []byte(`for (i: 0) { "s\"t" 3.14 @ x1 % }`)
	first := lexer.NewScanner(src).Tokenize()
	second := lexer.NewScanner(src).Tokenize()
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("token %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestReconstruction(t *testing.T) {
	// Concatenating token texts in order gives back the input minus the
	// skipped whitespace. Inputs here keep whitespace out of string
	// literals so the stripped comparison stays exact.
	sources := []string{
		"int main() { return 0; }",
		"a::b + 3.14 @#$ [x1]",
		"   leading and trailing   ",
		"1.2.3...4",
	}
	for _, src := range sources {
		var b strings.Builder
		for _, tok := range tokenize(src) {
			b.WriteString(tok.Text)
		}
		stripped := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
				return -1
			}
			return r
		}, src)
		if b.String() != stripped {
			t.Errorf("%q: reconstructed %q, want %q", src, b.String(), stripped)
		}
	}
}

func TestTokensOutliveSource(t *testing.T) {
	src := []byte("int x")
	tokens := lexer.NewScanner(src).Tokenize()
	for i := range src {
		src[i] = '!'
	}
	expected := []string{"int", "x"}
	for i, tok := range tokens {
		if tok.Text != expected[i] {
			t.Errorf("token %d: text changed to %q after source was clobbered", i, tok.Text)
		}
	}
}

func TestReset(t *testing.T) {
	s := lexer.NewScanner([]byte("int"))
	if tokens := s.Tokenize(); len(tokens) != 1 || tokens[0].Kind != lexer.KindKeyword {
		t.Fatalf("first scan: unexpected tokens %v", tokens)
	}
	s.Reset([]byte("3.14"))
	tokens := s.Tokenize()
	if len(tokens) != 1 || tokens[0].Kind != lexer.KindFloat {
		t.Fatalf("after reset: unexpected tokens %v", tokens)
	}
}

func BenchmarkTokenize(b *testing.B) {
	src := []byte(strings.Repeat(`int main() { return "ok" + 3.14; } `, 64))
	s := lexer.NewScanner(src)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Reset(src)
		s.Tokenize()
	}
}
