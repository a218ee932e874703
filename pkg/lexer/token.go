package lexer

// Kind classifies a token. The set is closed: every token the scanner
// emits carries exactly one of these.
type Kind uint8

const (
	KindKeyword Kind = iota
	KindIdentifier
	KindInteger
	KindFloat
	KindString
	KindOperator
	KindDelimiter
	KindUnknown
)

var kindNames = [...]string{
	KindKeyword:    "keyword",
	KindIdentifier: "identifier",
	KindInteger:    "integer",
	KindFloat:      "float",
	KindString:     "string",
	KindOperator:   "operator",
	KindDelimiter:  "delimiter",
	KindUnknown:    "unknown",
}

// String returns the stable lowercase label for the kind. Out-of-range
// values map to "unknown".
func (k Kind) String() string {
	if int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Token is a classified fragment of source text. Text is an owned copy,
// so tokens stay valid after the source buffer is discarded.
type Token struct {
	Kind Kind
	Text string
}

// keywords maps reserved spellings to their kind. Built once at package
// init and never written afterwards; every scanner shares it.
var keywords = map[string]Kind{
	"int":      KindKeyword,
	"float":    KindKeyword,
	"string":   KindKeyword,
	"if":       KindKeyword,
	"else":     KindKeyword,
	"while":    KindKeyword,
	"for":      KindKeyword,
	"switch":   KindKeyword,
	"case":     KindKeyword,
	"default":  KindKeyword,
	"break":    KindKeyword,
	"continue": KindKeyword,
	"return":   KindKeyword,
	"void":     KindKeyword,
}

// IsKeyword reports whether the spelling is a reserved word.
func IsKeyword(word string) bool {
	_, ok := keywords[word]
	return ok
}
