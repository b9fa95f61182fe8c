// Package token defines lexical tokens for coda.
package token

import "strconv"

// Kind represents a lexical token type.
type Kind uint8

const (
	// Special tokens
	ILLEGAL Kind = iota // <illegal>
	EOF                 // EOF

	// Literals
	literalStart
	IDENT  // identifier
	NUMBER // number
	STRING // string literal
	CHAR   // char literal
	literalEnd

	// Operators and delimiters
	operatorStart
	LPAREN      // (
	RPAREN      // )
	LBRACE      // {
	RBRACE      // }
	LBRACKET    // [
	RBRACKET    // ]
	SEMICOLON   // ;
	COMMA       // ,
	DOT         // .
	COLON       // :
	DOUBLECOLON // ::
	AT          // @
	QUESTION    // ?

	ADD // +
	SUB // -
	MUL // *
	DIV // /
	MOD // %
	AMP // &
	XOR // ^
	OR  // |
	NOT // !
	SHL // <<
	SHR // >>

	ASSIGN     // =
	ADD_ASSIGN // +=
	SUB_ASSIGN // -=
	MUL_ASSIGN // *=
	DIV_ASSIGN // /=
	SHL_ASSIGN // <<=
	SHR_ASSIGN // >>=

	EQL     // ==
	NEQ     // !=
	LSS     // <
	LEQ     // <=
	GTR     // >
	GEQ     // >=
	LAND    // &&
	LOR     // ||
	operatorEnd

	// Keywords
	keywordStart
	MODULE   // module
	INCLUDE  // include
	FN       // fn
	RETURN   // return
	MUT      // mut
	IF       // if
	ELSE     // else
	FOR      // for
	WHILE    // while
	BREAK    // break
	CONTINUE // continue
	TRUE     // true
	FALSE    // false
	keywordEnd

	// Builtin type names
	builtinStart
	T_CHAR   // char
	T_STRING // string
	T_INT    // int
	T_INT8   // int8
	T_INT16  // int16
	T_INT32  // int32
	T_INT64  // int64
	T_UINT   // uint
	T_UINT8  // uint8
	T_UINT16 // uint16
	T_UINT32 // uint32
	T_UINT64 // uint64
	T_BOOL   // bool
	T_NULL   // null
	builtinEnd
)

var kindNames = [...]string{
	ILLEGAL: "<illegal>",
	EOF:     "EOF",

	IDENT:  "identifier",
	NUMBER: "number",
	STRING: "string literal",
	CHAR:   "char literal",

	LPAREN:      "(",
	RPAREN:      ")",
	LBRACE:      "{",
	RBRACE:      "}",
	LBRACKET:    "[",
	RBRACKET:    "]",
	SEMICOLON:   ";",
	COMMA:       ",",
	DOT:         ".",
	COLON:       ":",
	DOUBLECOLON: "::",
	AT:          "@",
	QUESTION:    "?",
	ADD:         "+",
	SUB:         "-",
	MUL:         "*",
	DIV:         "/",
	MOD:         "%",
	AMP:         "&",
	XOR:         "^",
	OR:          "|",
	NOT:         "!",
	SHL:         "<<",
	SHR:         ">>",
	ASSIGN:      "=",
	ADD_ASSIGN:  "+=",
	SUB_ASSIGN:  "-=",
	MUL_ASSIGN:  "*=",
	DIV_ASSIGN:  "/=",
	SHL_ASSIGN:  "<<=",
	SHR_ASSIGN:  ">>=",
	EQL:         "==",
	NEQ:         "!=",
	LSS:         "<",
	LEQ:         "<=",
	GTR:         ">",
	GEQ:         ">=",
	LAND:        "&&",
	LOR:         "||",

	MODULE:   "module",
	INCLUDE:  "include",
	FN:       "fn",
	RETURN:   "return",
	MUT:      "mut",
	IF:       "if",
	ELSE:     "else",
	FOR:      "for",
	WHILE:    "while",
	BREAK:    "break",
	CONTINUE: "continue",
	TRUE:     "true",
	FALSE:    "false",

	T_CHAR:   "char",
	T_STRING: "string",
	T_INT:    "int",
	T_INT8:   "int8",
	T_INT16:  "int16",
	T_INT32:  "int32",
	T_INT64:  "int64",
	T_UINT:   "uint",
	T_UINT8:  "uint8",
	T_UINT16: "uint16",
	T_UINT32: "uint32",
	T_UINT64: "uint64",
	T_BOOL:   "bool",
	T_NULL:   "null",
}

// String returns the source spelling of the token kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "token(" + strconv.Itoa(int(k)) + ")"
}

// IsLiteral returns true for identifiers and literal tokens.
func (k Kind) IsLiteral() bool {
	return k > literalStart && k < literalEnd
}

// IsOperator returns true if the token is an operator or delimiter.
func (k Kind) IsOperator() bool {
	return k > operatorStart && k < operatorEnd
}

// IsKeyword returns true if the token is a keyword.
func (k Kind) IsKeyword() bool {
	return k > keywordStart && k < keywordEnd
}

// IsBuiltinType returns true if the token names a builtin type.
// null counts as one: it is both a type name and a literal.
func (k Kind) IsBuiltinType() bool {
	return k > builtinStart && k < builtinEnd
}

// IsAssign returns true for = and the compound assignment operators.
func (k Kind) IsAssign() bool {
	switch k {
	case ASSIGN, ADD_ASSIGN, SUB_ASSIGN, MUL_ASSIGN, DIV_ASSIGN, SHL_ASSIGN, SHR_ASSIGN:
		return true
	}
	return false
}

// BuiltinName returns the canonical name of a builtin type token,
// or "" when k is not a builtin type.
func (k Kind) BuiltinName() string {
	if !k.IsBuiltinType() {
		return ""
	}
	return k.String()
}

// keywords maps keyword and builtin type spellings to their token kinds.
var keywords = map[string]Kind{
	"module":   MODULE,
	"include":  INCLUDE,
	"fn":       FN,
	"return":   RETURN,
	"mut":      MUT,
	"if":       IF,
	"else":     ELSE,
	"for":      FOR,
	"while":    WHILE,
	"break":    BREAK,
	"continue": CONTINUE,
	"true":     TRUE,
	"false":    FALSE,

	"char":   T_CHAR,
	"string": T_STRING,
	"int":    T_INT,
	"int8":   T_INT8,
	"int16":  T_INT16,
	"int32":  T_INT32,
	"int64":  T_INT64,
	"uint":   T_UINT,
	"uint8":  T_UINT8,
	"uint16": T_UINT16,
	"uint32": T_UINT32,
	"uint64": T_UINT64,
	"bool":   T_BOOL,
	"null":   T_NULL,
}

// Lookup returns the keyword or builtin type kind for ident, or IDENT.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return IDENT
}
