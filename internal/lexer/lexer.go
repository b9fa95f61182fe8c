// Package lexer provides coda source code tokenization.
package lexer

import (
	"bytes"
	"unicode/utf8"

	"github.com/coda-lang/coda/internal/diag"
	"github.com/coda-lang/coda/internal/token"
)

// Lexer tokenizes coda source code. All scanning state lives in the Lexer,
// so independent units can be lexed concurrently with separate values.
type Lexer struct {
	src     []byte         // Source code, cut at the first NUL
	ch      byte           // Current character (0 at EOF)
	offset  int            // Offset of the next character
	pos     token.Position // Position of ch
	nextPos token.Position // Position of the next character

	errs diag.List
}

// New creates a new Lexer for the given source code. A NUL byte ends the
// input.
func New(src []byte) *Lexer {
	if i := bytes.IndexByte(src, 0); i >= 0 {
		src = src[:i]
	}
	l := &Lexer{
		src: src,
		nextPos: token.Position{
			Line:   1,
			Column: 1,
		},
	}
	l.next() // Initialize first character
	return l
}

// Token is a scanned token.
type Token struct {
	Kind token.Kind
	// Text is the identifier name, the digits of a number, or the decoded
	// value of a string or char literal. Empty for other kinds.
	Text string
	// Raw is the source spelling of names, literals and illegal input,
	// escapes included. Empty for other kinds.
	Raw    string
	Length int            // Byte length of the source spelling
	Pos    token.Position // First character
	End    token.Position // Just past the last character
}

// Span returns the source range of the token.
func (t Token) Span() token.Span {
	return token.Span{Start: t.Pos, End: t.End}
}

// Lex scans src to completion. The result always ends with exactly one EOF
// token; lexical errors do not stop the scan.
func Lex(src []byte) ([]Token, diag.List) {
	l := New(src)
	tokens := make([]Token, 0, len(l.src)/4+1)
	for {
		tok := l.Scan()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, l.Errors()
		}
	}
}

// Errors returns the lexical errors found so far.
func (l *Lexer) Errors() diag.List {
	return l.errs
}

// Scan scans and returns the next token. After the end of input every call
// returns EOF.
func (l *Lexer) Scan() Token {
	l.skipSpaceAndComments()
	start := l.pos
	kind, text := l.scan(start)
	tok := Token{
		Kind:   kind,
		Text:   text,
		Length: l.pos.Offset - start.Offset,
		Pos:    start,
		End:    l.pos,
	}
	if kind.IsLiteral() || kind == token.ILLEGAL {
		tok.Raw = string(l.src[start.Offset:l.pos.Offset])
	}
	return tok
}

func (l *Lexer) scan(start token.Position) (token.Kind, string) {
	if l.ch == 0 {
		return token.EOF, ""
	}

	ch := l.ch
	l.next()
	switch ch {
	case '(':
		return token.LPAREN, ""
	case ')':
		return token.RPAREN, ""
	case '{':
		return token.LBRACE, ""
	case '}':
		return token.RBRACE, ""
	case '[':
		return token.LBRACKET, ""
	case ']':
		return token.RBRACKET, ""
	case ';':
		return token.SEMICOLON, ""
	case ',':
		return token.COMMA, ""
	case '.':
		return token.DOT, ""
	case '?':
		return token.QUESTION, ""
	case '@':
		return token.AT, ""
	case '%':
		return token.MOD, ""
	case '^':
		return token.XOR, ""

	case ':':
		return l.switch2(token.COLON, ':', token.DOUBLECOLON), ""
	case '+':
		return l.switch2(token.ADD, '=', token.ADD_ASSIGN), ""
	case '-':
		return l.switch2(token.SUB, '=', token.SUB_ASSIGN), ""
	case '*':
		return l.switch2(token.MUL, '=', token.MUL_ASSIGN), ""
	case '/':
		return l.switch2(token.DIV, '=', token.DIV_ASSIGN), ""
	case '=':
		return l.switch2(token.ASSIGN, '=', token.EQL), ""
	case '!':
		return l.switch2(token.NOT, '=', token.NEQ), ""
	case '&':
		return l.switch2(token.AMP, '&', token.LAND), ""
	case '|':
		return l.switch2(token.OR, '|', token.LOR), ""

	case '<':
		if l.ch == '<' {
			l.next()
			return l.switch2(token.SHL, '=', token.SHL_ASSIGN), ""
		}
		return l.switch2(token.LSS, '=', token.LEQ), ""
	case '>':
		if l.ch == '>' {
			l.next()
			return l.switch2(token.SHR, '=', token.SHR_ASSIGN), ""
		}
		return l.switch2(token.GTR, '=', token.GEQ), ""

	case '"':
		return l.scanString(start)
	case '\'':
		return l.scanChar()
	}

	if isDigit(ch) {
		for isDigit(l.ch) {
			l.next()
		}
		return token.NUMBER, string(l.src[start.Offset:l.pos.Offset])
	}
	if isIdentStart(ch) {
		for isIdentContinue(l.ch) {
			l.next()
		}
		name := string(l.src[start.Offset:l.pos.Offset])
		kind := token.Lookup(name)
		if kind != token.IDENT {
			return kind, ""
		}
		return kind, name
	}

	if ch < utf8.RuneSelf {
		l.errs.Add(diag.Lexf(start, "unexpected character %q", ch))
	} else {
		l.errs.Add(diag.Lexf(start, "unexpected byte %#02x", ch))
	}
	return token.ILLEGAL, string(l.src[start.Offset:l.pos.Offset])
}

// switch2 consumes second and returns long if it is the current character,
// otherwise it returns short.
func (l *Lexer) switch2(short token.Kind, second byte, long token.Kind) token.Kind {
	if l.ch == second {
		l.next()
		return long
	}
	return short
}

func (l *Lexer) scanString(start token.Position) (token.Kind, string) {
	var sb []byte
	for l.ch != '"' {
		if l.ch == 0 {
			l.errs.Add(diag.Lexf(start, "unterminated string"))
			return token.ILLEGAL, string(sb)
		}
		if l.ch == '\\' {
			l.next()
			if l.ch == 0 {
				continue
			}
			sb = append(sb, unescape(l.ch))
			l.next()
			continue
		}
		sb = append(sb, l.ch)
		l.next()
	}
	l.next() // closing quote
	return token.STRING, string(sb)
}

// scanChar scans a character literal after its opening quote. The literal
// holds exactly one possibly escaped character; a multi-byte UTF-8 sequence
// counts as one.
func (l *Lexer) scanChar() (token.Kind, string) {
	var value string
	switch l.ch {
	case 0, '\n':
		l.errs.Add(diag.Lexf(l.pos, "unterminated char literal"))
		return token.ILLEGAL, ""
	case '\'':
		l.errs.Add(diag.Lexf(l.pos, "empty char literal"))
		l.next()
		return token.ILLEGAL, ""
	case '\\':
		l.next()
		if l.ch == 0 {
			l.errs.Add(diag.Lexf(l.pos, "unterminated char literal"))
			return token.ILLEGAL, ""
		}
		if l.ch >= utf8.RuneSelf {
			value = l.scanRune()
			break
		}
		value = string(rune(unescape(l.ch)))
		l.next()
	default:
		value = l.scanRune()
	}

	if l.ch == '\'' {
		l.next()
		return token.CHAR, value
	}

	// Report a literal like 'ab' once and skip to its closing quote when one
	// exists on the same line.
	pos := l.pos
	if l.ch != 0 && l.ch != '\n' {
		if i := bytes.IndexByte(l.src[l.offset-1:], '\''); i >= 0 &&
			bytes.IndexByte(l.src[l.offset-1:l.offset-1+i], '\n') < 0 {
			for l.ch != '\'' {
				l.next()
			}
			l.next()
			l.errs.Add(diag.Lexf(pos, "char literal has more than one character"))
			return token.ILLEGAL, value
		}
	}
	l.errs.Add(diag.Lexf(pos, "unterminated char literal"))
	return token.ILLEGAL, value
}

// scanRune consumes one UTF-8 encoded character and returns it. Invalid
// encodings are taken a byte at a time.
func (l *Lexer) scanRune() string {
	if l.ch < utf8.RuneSelf {
		ch := l.ch
		l.next()
		return string(ch)
	}
	_, size := utf8.DecodeRune(l.src[l.pos.Offset:])
	s := string(l.src[l.pos.Offset : l.pos.Offset+size])
	for range size {
		l.next()
	}
	return s
}

// unescape decodes the character after a backslash. Unknown escapes stand
// for the escaped character itself.
func unescape(ch byte) byte {
	switch ch {
	case 'n':
		return '\n'
	case 't':
		return '\t'
	case 'r':
		return '\r'
	case 'b':
		return '\b'
	default:
		return ch
	}
}

func (l *Lexer) skipSpaceAndComments() {
	for {
		switch {
		case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
			l.next()
		case l.ch == '/' && l.peek() == '/':
			for l.ch != 0 && l.ch != '\n' {
				l.next()
			}
		case l.ch == '/' && l.peek() == '*':
			l.skipBlockComment()
		default:
			return
		}
	}
}

// skipBlockComment skips a non-nesting /* */ comment.
func (l *Lexer) skipBlockComment() {
	start := l.pos
	l.next() // /
	l.next() // *
	for l.ch != 0 {
		if l.ch == '*' && l.peek() == '/' {
			l.next()
			l.next()
			return
		}
		l.next()
	}
	l.errs.Add(diag.Lexf(start, "unterminated block comment"))
}

// peek returns the character after ch without consuming anything.
func (l *Lexer) peek() byte {
	if l.offset >= len(l.src) {
		return 0
	}
	return l.src[l.offset]
}

// next advances to the following character. At the end of input ch becomes
// 0 and pos stays just past the last character.
func (l *Lexer) next() {
	l.pos = l.nextPos
	if l.offset >= len(l.src) {
		l.ch = 0
		return
	}

	l.ch = l.src[l.offset]
	l.offset++
	l.nextPos.Offset = l.offset
	if l.ch == '\n' {
		l.nextPos.Line++
		l.nextPos.Column = 1
	} else {
		l.nextPos.Column++
	}
}

// Helper functions

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
