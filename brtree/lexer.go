package brtree

// lexer transforms bracket-tree source into a stream of tokens.
//
// The scanner is a small state machine: a quoting flag, an accumulating
// word buffer, and a mode that decides whether the next completed word is a
// KEYWORD (the word right after an opening bracket) or a WORD (everything
// else). The lexer itself never fails; structural problems surface in the
// parser.
type lexer struct {
	input   []byte
	word    []byte
	mode    tokenType // type given to the next completed word
	quoting bool
	toks    []token
}

func newLexer(input []byte) *lexer {
	return &lexer{input: input, mode: tokenKeyword}
}

// Tokenize scans the whole input and returns the token sequence.
func (l *lexer) Tokenize() []token {
	for _, ch := range l.input {
		switch {
		case ch == '"' && !l.quoting:
			l.quoting = true

		case ch == '"':
			// Closing quote. Emit the buffered text even when empty:
			// "" is a valid, empty word.
			l.quoting = false
			l.emitWord()

		case l.quoting:
			// Everything between quotes is taken verbatim, brackets
			// and whitespace included. There is no escape syntax.
			l.word = append(l.word, ch)

		case ch == '(':
			l.flushWord()
			l.toks = append(l.toks, token{Type: tokenOpen, Literal: "("})
			l.mode = tokenKeyword

		case ch == ')':
			l.flushWord()
			l.toks = append(l.toks, token{Type: tokenClose, Literal: ")"})
			l.mode = tokenWord

		case isSpace(ch):
			l.flushWord()

		default:
			l.word = append(l.word, ch)
		}
	}

	// An unterminated quote is not rejected; whatever was scanned becomes
	// the final word, same as a bare trailing word.
	l.flushWord()
	return l.toks
}

// emitWord emits the buffered word unconditionally and resets the mode.
func (l *lexer) emitWord() {
	l.toks = append(l.toks, token{Type: l.mode, Literal: string(l.word)})
	l.mode = tokenWord
	l.word = l.word[:0]
}

// flushWord emits the buffered word only if one is pending, so that runs of
// whitespace produce no tokens and '(' right after whitespace still expects
// a keyword.
func (l *lexer) flushWord() {
	if len(l.word) == 0 {
		return
	}
	l.emitWord()
}

func isSpace(ch byte) bool {
	switch ch {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
