package syntax

type tokenKind int

const (
	tokWord tokenKind = iota
	tokString
	tokPipe
	tokSemi
)

func (tk tokenKind) String() string {
	switch tk {
	case tokWord:
		return "WORD"
	case tokString:
		return "STRING"
	case tokPipe:
		return "PIPE"
	case tokSemi:
		return "SEMI"
	default:
		return "UNKNOWN"
	}
}

type token struct {
	kind tokenKind
	span Span
	text []byte
}

// lex splits src into tokens carrying absolute spans (src begins at byte
// offset base within the aggregated source). It never fails: unterminated
// quotes run to the end of input, which is the normal state of a buffer
// mid-keystroke.
func lex(src []byte, base int) []token {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++
		case c == '\n' || c == ';':
			toks = append(toks, token{kind: tokSemi, span: Span{base + i, base + i + 1}, text: src[i : i+1]})
			i++
		case c == '|':
			toks = append(toks, token{kind: tokPipe, span: Span{base + i, base + i + 1}, text: src[i : i+1]})
			i++
		case c == '#':
			for i < len(src) && src[i] != '\n' {
				i++
			}
		case c == '"' || c == '\'':
			start := i
			i++
			for i < len(src) && src[i] != c {
				i++
			}
			if i < len(src) {
				i++ // closing quote
			}
			toks = append(toks, token{kind: tokString, span: Span{base + start, base + i}, text: src[start:i]})
		default:
			start := i
			for i < len(src) && !isWordBreak(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokWord, span: Span{base + start, base + i}, text: src[start:i]})
		}
	}
	return toks
}

func isWordBreak(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ';', '|':
		return true
	}
	return false
}
